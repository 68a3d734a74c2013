package console

import "context"

// Print writes to the default console. See Console.Print.
func Print(a ...any) error { return Default().Print(a...) }

// Println writes a line to the default console. See Console.Println.
func Println(a ...any) error { return Default().Println(a...) }

// Debug writes a debug line to the default console. See Console.Debug.
func Debug(a ...any) error { return Default().Debug(a...) }

// Input reads a line from the default console. See Console.Input.
func Input(prompt string) (string, error) { return Default().Input(prompt) }

// Hold waits for a key press on the default console. See Console.Hold.
func Hold(message string) error { return Default().Hold(message) }

// Clear clears the default console. See Console.Clear.
func Clear(ctx context.Context) error { return Default().Clear(ctx) }
