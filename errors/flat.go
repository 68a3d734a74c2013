package errors

import (
	"fmt"
	"strings"
)

// ExampleError is a placeholder leaf for examples and tests.
type ExampleError struct{}

func (e *ExampleError) Error() string { return "this is an example error" }

// Kind returns KindExample.
func (e *ExampleError) Kind() Kind { return KindExample }

// WeirdError reports an internal-consistency violation: a primitive observed a
// state that should be impossible, and there is no underlying fault to chain.
type WeirdError struct {
	message string
}

func (e *WeirdError) Error() string { return "weird error: " + e.message }

// Kind returns KindWeird.
func (e *WeirdError) Kind() Kind { return KindWeird }

// Message describes the observed state.
func (e *WeirdError) Message() string { return e.message }

// Stage tells whether a command failed to start or failed while running.
type Stage string

const (
	// StageSpawning marks a failure while starting the process.
	StageSpawning Stage = "spawning"

	// StageExecuting marks a failure while waiting for the process to finish.
	StageExecuting Stage = "executing"
)

// CommandError reports an external command that could not be spawned or
// could not be waited on.
type CommandError struct {
	command string
	args    []string
	stage   Stage
	err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("error while %s command: '%s' with args [%s]%s",
		e.stage, e.command, strings.Join(e.args, ", "), causeSuffix(e.err))
}

// Kind returns KindCommand.
func (e *CommandError) Kind() Kind { return KindCommand }

// Command returns the program name.
func (e *CommandError) Command() string { return e.command }

// Args returns a copy of the argument list, excluding the program name.
func (e *CommandError) Args() []string { return append([]string(nil), e.args...) }

// Stage returns where the failure happened.
func (e *CommandError) Stage() Stage { return e.stage }

// Unwrap returns the underlying fault.
func (e *CommandError) Unwrap() error { return e.err }

func (e *CommandError) fields() map[string]interface{} {
	return map[string]interface{}{
		"command": e.command,
		"args":    e.Args(),
		"stage":   string(e.stage),
	}
}

// ConfigError reports a configuration setting that could not be parsed or was
// rejected by validation.
type ConfigError struct {
	key     string
	message string
	err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: '%s': %s%s", e.key, e.message, causeSuffix(e.err))
}

// Kind returns KindConfig.
func (e *ConfigError) Kind() Kind { return KindConfig }

// Key returns the setting, file or variable that was rejected.
func (e *ConfigError) Key() string { return e.key }

// Message explains the rejection.
func (e *ConfigError) Message() string { return e.message }

// Unwrap returns the underlying fault.
func (e *ConfigError) Unwrap() error { return e.err }

func (e *ConfigError) fields() map[string]interface{} {
	return map[string]interface{}{"key": e.key}
}

// Example returns the placeholder error.
func Example() *Error {
	leaf := &ExampleError{}
	return newError(KindExample, FamilyNone, leaf, leaf)
}

// Weird returns an internal-consistency violation with the given description.
//
// Example:
//
//	if !exists {
//	    return errors.Weirdf("directory still missing after creation: '%s'", path)
//	}
func Weird(message string) *Error {
	leaf := &WeirdError{message: message}
	return newError(KindWeird, FamilyNone, leaf, leaf)
}

// Weirdf returns an internal-consistency violation with a formatted description.
func Weirdf(format string, args ...interface{}) *Error {
	return Weird(fmt.Sprintf(format, args...))
}

// Command returns a command execution failure. The argument slice is copied.
func Command(command string, args []string, stage Stage, err error) *Error {
	leaf := &CommandError{
		command: command,
		args:    append([]string(nil), args...),
		stage:   stage,
		err:     err,
	}
	return newError(KindCommand, FamilyNone, leaf, leaf)
}

// Config returns a configuration failure for the named setting.
func Config(key, message string, err error) *Error {
	leaf := &ConfigError{key: key, message: message, err: err}
	return newError(KindConfig, FamilyNone, leaf, leaf)
}
