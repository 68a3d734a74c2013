package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Lev10x/shawty/errors"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// Type represents the backend behind an FS.
type Type int

const (
	// TypeUnknown indicates a caller-supplied billy.Filesystem.
	TypeUnknown Type = iota
	// TypeLocal indicates the disk-backed filesystem.
	TypeLocal
	// TypeMemory indicates an in-memory filesystem.
	TypeMemory
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeLocal:
		return "local"
	case TypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// DefaultDirPerm is the permission used by CreateDirAndCheck.
const DefaultDirPerm fs.FileMode = 0o755

// FS runs the filesystem primitives over a billy.Filesystem.
// FS instances are safe for concurrent use when the wrapped filesystem is.
type FS struct {
	bfs   billy.Filesystem
	kind  Type
	getwd func() (string, error)
	perm  fs.FileMode
}

// Option configures an FS.
type Option func(*FS)

// WithGetwd replaces the function used to resolve the working directory.
func WithGetwd(fn func() (string, error)) Option {
	return func(f *FS) {
		f.getwd = fn
	}
}

// WithDirPerm sets the permission bits for directories created by
// CreateDirAndCheck.
func WithDirPerm(perm fs.FileMode) Option {
	return func(f *FS) {
		f.perm = perm
	}
}

// New wraps an existing billy.Filesystem. Paths are passed to it unchanged
// apart from normalization.
func New(bfs billy.Filesystem, opts ...Option) *FS {
	return newFS(bfs, TypeUnknown, func() (string, error) { return "/", nil }, opts)
}

// NewLocal creates an FS over the local disk rooted at "/". Relative paths
// are resolved against the process working directory.
func NewLocal(opts ...Option) *FS {
	return newFS(osfs.New("/"), TypeLocal, os.Getwd, opts)
}

// NewMemory creates an empty in-memory FS whose working directory is "/".
func NewMemory(opts ...Option) *FS {
	return newFS(memfs.New(), TypeMemory, func() (string, error) { return "/", nil }, opts)
}

func newFS(bfs billy.Filesystem, kind Type, getwd func() (string, error), opts []Option) *FS {
	f := &FS{
		bfs:   bfs,
		kind:  kind,
		getwd: getwd,
		perm:  DefaultDirPerm,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the backend type.
func (f *FS) Type() Type {
	return f.kind
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// resolve makes path absolute for the local backend and normalizes it.
func (f *FS) resolve(path string) (string, error) {
	if f.kind == TypeLocal && !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		path = abs
	}
	return normalize(path), nil
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }
func (d *dirEntry) String() string             { return fs.FormatDirEntry(d) }

// Cwd returns the current working directory.
func (f *FS) Cwd() (string, error) {
	dir, err := f.getwd()
	if err != nil {
		return "", errors.OtherIO("Failed to get cwd path, perhaps you don't have permission or it doesn't exist.", err)
	}
	return dir, nil
}

// ListDir returns the entries of the directory at path. Entries that can no
// longer be resolved after the directory is read are left out of the result.
func (f *FS) ListDir(path string) ([]fs.DirEntry, error) {
	p, err := f.resolve(path)
	if err != nil {
		return nil, errors.Read("Failed to read directory: "+path, err)
	}

	infos, err := f.bfs.ReadDir(p)
	if err != nil {
		return nil, errors.Read("Failed to read directory: "+path, err)
	}

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		fresh, err := f.bfs.Lstat(f.bfs.Join(p, info.Name()))
		if err != nil {
			continue
		}
		entries = append(entries, &dirEntry{info: fresh})
	}
	return entries, nil
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(path string) (bool, error) {
	p, err := f.resolve(path)
	if err != nil {
		return false, err
	}
	return f.exists(p)
}

func (f *FS) exists(p string) (bool, error) {
	_, err := f.bfs.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// CreateDirAndCheck creates the directory at path unless something already
// exists there, then verifies the directory is present. The parent must
// already exist. A creation fault is a write failure and a fault while
// verifying is an I/O failure. A directory that is cleanly reported missing
// after a successful create is an invariant violation.
func (f *FS) CreateDirAndCheck(path string) error {
	p, err := f.resolve(path)
	if err != nil {
		return errors.Write(fmt.Sprintf("Failed to create directory: '%s'", path), err)
	}

	if ok, _ := f.exists(p); ok {
		return nil
	}

	if err := f.mkdir(p); err != nil {
		return errors.Write(fmt.Sprintf("Failed to create directory: '%s'", path), err)
	}

	ok, err := f.exists(p)
	if err != nil {
		return errors.OtherIO(fmt.Sprintf("Failed to verify directory: '%s'", path), err)
	}
	if !ok {
		return errors.Weirdf("After creation with no error, the directory still not exist. Path: '%s'", path)
	}
	return nil
}

// mkdir creates a single directory. Unlike MkdirAll, it fails if the parent
// directory does not exist.
func (f *FS) mkdir(p string) error {
	parent := filepath.ToSlash(filepath.Dir(p))
	if parent != "." && parent != "/" {
		info, err := f.bfs.Stat(parent)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrInvalid}
		}
	}
	return f.bfs.MkdirAll(p, f.perm)
}
