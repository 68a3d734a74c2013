// Package console provides print, input and terminal helpers that never panic.
//
// Every failure is returned as an *errors.Error: write faults as
// errors.KindWrite, read faults as errors.KindRead, flush faults as
// errors.KindFlush, and a failure to spawn or wait on the clear command as
// errors.KindCommand.
//
// The streams are injected so that tests, and programs that redirect their
// console, can supply their own:
//
//	var out bytes.Buffer
//	c := console.New(&out, strings.NewReader("alice\n"))
//	name, err := c.Input("Name: ")
//
// The package-level functions use Default, which is bound to os.Stdout and
// os.Stdin.
package console
