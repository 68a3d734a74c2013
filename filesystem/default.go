package filesystem

import (
	"io/fs"
	"sync"
)

var (
	localOnce sync.Once
	local     *FS
)

// Local returns the shared FS over the local disk.
func Local() *FS {
	localOnce.Do(func() {
		local = NewLocal()
	})
	return local
}

// Cwd returns the process working directory.
func Cwd() (string, error) {
	return Local().Cwd()
}

// ListDir lists the directory at path on the local disk.
func ListDir(path string) ([]fs.DirEntry, error) {
	return Local().ListDir(path)
}

// CreateDirAndCheck creates and verifies the directory at path on the local disk.
func CreateDirAndCheck(path string) error {
	return Local().CreateDirAndCheck(path)
}
