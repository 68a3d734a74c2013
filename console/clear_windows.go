//go:build windows

package console

import "github.com/Lev10x/shawty/exec"

var clearArgs = []string{"cls"}

func clearCommand(e exec.Executor) exec.Executor {
	return exec.NewWrapper(e, "cmd", "/c")
}
