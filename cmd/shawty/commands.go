package main

import (
	"sort"
	"strings"
)

// CwdCmd implements the 'cwd' command.
type CwdCmd struct{}

func (c *CwdCmd) Run(g *Global) error {
	dir, err := g.FS.Cwd()
	if err != nil {
		return err
	}
	return g.Console.Println(dir)
}

// LsCmd implements the 'ls' command.
type LsCmd struct {
	Path string `arg:"" optional:"" default:"." help:"Directory to list"`
}

func (l *LsCmd) Run(g *Global) error {
	entries, err := g.FS.ListDir(l.Path)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	g.Logger.Debug("directory listed", "path", l.Path, "entries", len(names))
	for _, name := range names {
		if err := g.Console.Println(name); err != nil {
			return err
		}
	}
	return nil
}

// MkdirCmd implements the 'mkdir' command.
type MkdirCmd struct {
	Path string `arg:"" help:"Directory to create"`
}

func (m *MkdirCmd) Run(g *Global) error {
	if err := g.FS.CreateDirAndCheck(m.Path); err != nil {
		return err
	}
	g.Logger.Debug("directory ready", "path", m.Path)
	return nil
}

// AskCmd implements the 'ask' command.
type AskCmd struct {
	Prompt string `arg:"" optional:"" help:"Prompt to print before reading"`
}

func (a *AskCmd) Run(g *Global) error {
	answer, err := g.Console.Input(a.Prompt)
	if err != nil {
		return err
	}
	return g.Console.Println(answer)
}

// HoldCmd implements the 'hold' command.
type HoldCmd struct {
	Message string `arg:"" optional:"" help:"Message to print instead of the default"`
}

func (h *HoldCmd) Run(g *Global) error {
	return g.Console.Hold(h.Message)
}

// DebugCmd implements the 'debug' command.
type DebugCmd struct {
	Message []string `arg:"" help:"Message words"`
}

func (d *DebugCmd) Run(g *Global) error {
	return g.Console.Debug(strings.Join(d.Message, " "))
}

// ClearCmd implements the 'clear' command.
type ClearCmd struct{}

func (c *ClearCmd) Run(g *Global) error {
	return g.Console.Clear(g.Context)
}
