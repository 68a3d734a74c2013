//go:build !windows

package console

import "github.com/Lev10x/shawty/exec"

var clearArgs = []string{"clear"}

func clearCommand(e exec.Executor) exec.Executor {
	return e
}
