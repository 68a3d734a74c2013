// Package filesystem provides panic-free filesystem probing primitives
// backed by go-billy.
//
// Three operations are offered, each returning *errors.Error on failure:
//
//   - Cwd resolves the working directory (other I/O failure).
//   - ListDir lists a directory, dropping entries that vanish or cannot be
//     resolved while listing (read failure when the directory itself cannot
//     be read).
//   - CreateDirAndCheck creates a directory if nothing exists at the path and
//     verifies it afterwards (write failure, or an invariant violation when
//     the directory is still missing after a reported success).
//
// Usage:
//
//	// Local disk, relative paths resolved against the working directory
//	entries, err := filesystem.ListDir("testdata")
//
//	// In-memory, for tests
//	fsys := filesystem.NewMemory()
//	err := fsys.CreateDirAndCheck("/out")
//
// Any billy.Filesystem can be wrapped with New, which is how tests inject
// faults.
package filesystem
