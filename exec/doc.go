// Package exec spawns external commands and classifies their failures.
//
// Command wraps os/exec and implements the Executor interface. Every failure
// is returned as an *errors.Error of kind errors.KindCommand that records the
// program, its arguments and the stage at which it failed:
//
//   - errors.StageSpawning: the process could not be started (missing binary,
//     permission denied, context already done)
//   - errors.StageExecuting: the process started but waiting on it failed
//     (context canceled, deadline exceeded, I/O copy failure)
//
// A non-zero exit status is not a failure. It is reported in Result.ExitCode
// and the caller decides what it means.
//
// # Basic Usage
//
//	exec := exec.New()
//	result, err := exec.Run("echo", "hello world")
//	if err != nil {
//		var cmdErr *errors.CommandError
//		if errors.As(err, &cmdErr) {
//			fmt.Println(cmdErr.Stage())
//		}
//		return err
//	}
//	fmt.Println(result.Stdout) // "hello world\n"
//
// # Configuration
//
// Options passed to New set global defaults. The fluent methods set local
// values for the next Run only, and local values win:
//
//	exec := exec.New(
//		exec.WithEnv(map[string]string{"GLOBAL_VAR": "value"}),
//		exec.WithInheritEnv(),
//	)
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	result, err := exec.
//		WithEnv(map[string]string{"LOCAL_VAR": "value"}).
//		WithContext(ctx).
//		Run("some-command")
//
// An executor is not safe for concurrent use. Give each goroutine its own
// Clone.
//
// # Interactive Commands
//
// Console programs such as cls or clear must see the real terminal. Interactive
// mode hands the configured streams to the child directly and skips capture:
//
//	result, err := exec.New(exec.WithInteractive()).Run("clear")
//
// # Command Wrappers
//
// A CommandWrapper prepends a fixed prefix to every Run:
//
//	shell := exec.NewWrapper(exec.New(), "cmd", "/c")
//	result, err := shell.Run("cls") // cmd /c cls
package exec
