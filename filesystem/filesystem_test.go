package filesystem_test

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/Lev10x/shawty/errors"
	"github.com/Lev10x/shawty/filesystem"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInjected = stderrors.New("injected fault")

// faultyFS wraps a billy.Filesystem and injects faults into selected calls.
type faultyFS struct {
	billy.Filesystem

	// lstatFail lists base names whose Lstat fails.
	lstatFail map[string]bool

	readDirErr  error
	mkdirErr    error
	mkdirNoop   bool
	mkdirCalled int

	// statErrAfterMkdir fails every Stat once MkdirAll has been called.
	statErrAfterMkdir error
}

func (f *faultyFS) Stat(name string) (os.FileInfo, error) {
	if f.statErrAfterMkdir != nil && f.mkdirCalled > 0 {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: f.statErrAfterMkdir}
	}
	return f.Filesystem.Stat(name)
}

func (f *faultyFS) Lstat(name string) (os.FileInfo, error) {
	if f.lstatFail[filepath.Base(name)] {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: errInjected}
	}
	return f.Filesystem.Lstat(name)
}

func (f *faultyFS) ReadDir(name string) ([]os.FileInfo, error) {
	if f.readDirErr != nil {
		return nil, f.readDirErr
	}
	return f.Filesystem.ReadDir(name)
}

func (f *faultyFS) MkdirAll(name string, perm os.FileMode) error {
	f.mkdirCalled++
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	if f.mkdirNoop {
		return nil
	}
	return f.Filesystem.MkdirAll(name, perm)
}

func names(entries []fs.DirEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func writeFile(t *testing.T, bfs billy.Filesystem, name string) {
	t.Helper()
	f, err := bfs.Create(name)
	require.NoError(t, err)
	_, err = f.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "local", filesystem.TypeLocal.String())
	assert.Equal(t, "memory", filesystem.TypeMemory.String())
	assert.Equal(t, "unknown", filesystem.TypeUnknown.String())
	assert.Equal(t, filesystem.TypeMemory, filesystem.NewMemory().Type())
	assert.Equal(t, filesystem.TypeLocal, filesystem.NewLocal().Type())
}

func TestCwd(t *testing.T) {
	got, err := filesystem.NewMemory().Cwd()
	require.NoError(t, err)
	assert.Equal(t, "/", got)

	want, err := os.Getwd()
	require.NoError(t, err)
	got, err = filesystem.Cwd()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCwd_Failure(t *testing.T) {
	fsys := filesystem.NewMemory(filesystem.WithGetwd(func() (string, error) {
		return "", fs.ErrPermission
	}))

	_, err := fsys.Cwd()
	require.Error(t, err)
	assert.Equal(t, errors.KindOtherIO, errors.GetKind(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "Failed to get cwd path")
}

func TestListDir_Empty(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.Unwrap().MkdirAll("/empty", 0o755))

	entries, err := fsys.ListDir("/empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListDir_Entries(t *testing.T) {
	fsys := filesystem.NewMemory()
	bfs := fsys.Unwrap()
	require.NoError(t, bfs.MkdirAll("/dir/sub", 0o755))
	writeFile(t, bfs, "/dir/a.txt")
	writeFile(t, bfs, "/dir/b.txt")

	entries, err := fsys.ListDir("/dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names(entries))

	for _, e := range entries {
		info, err := e.Info()
		require.NoError(t, err)
		assert.Equal(t, e.Name(), info.Name())
		assert.Equal(t, e.Name() == "sub", e.IsDir())
	}
}

func TestListDir_DropsUnresolvableEntries(t *testing.T) {
	mem := memfs.New()
	require.NoError(t, mem.MkdirAll("/dir", 0o755))
	for _, name := range []string{"ok1", "ok2", "bad1", "ok3", "bad2"} {
		writeFile(t, mem, "/dir/"+name)
	}
	faulty := &faultyFS{Filesystem: mem, lstatFail: map[string]bool{"bad1": true, "bad2": true}}

	entries, err := filesystem.New(faulty).ListDir("/dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"ok1", "ok2", "ok3"}, names(entries))
}

func TestListDir_Missing(t *testing.T) {
	_, err := filesystem.NewMemory().ListDir("/nope")
	require.Error(t, err)
	assert.Equal(t, errors.KindRead, errors.GetKind(err))
	assert.Equal(t, errors.FamilyIO, errors.GetFamily(err))
	assert.Contains(t, err.Error(), "Failed to read directory: /nope")
}

func TestListDir_ReadFailurePreservesCause(t *testing.T) {
	faulty := &faultyFS{Filesystem: memfs.New(), readDirErr: errInjected}

	_, err := filesystem.New(faulty).ListDir("/dir")
	require.Error(t, err)

	var readErr *errors.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Same(t, errInjected, readErr.Unwrap())
	assert.True(t, strings.HasSuffix(err.Error(), errInjected.Error()))
}

func TestCreateDirAndCheck_Idempotent(t *testing.T) {
	fsys := filesystem.NewMemory()

	require.NoError(t, fsys.CreateDirAndCheck("/out"))
	require.NoError(t, fsys.CreateDirAndCheck("/out"))

	ok, err := fsys.Exists("/out")
	require.NoError(t, err)
	assert.True(t, ok)

	info, err := fsys.Unwrap().Stat("/out")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateDirAndCheck_ExistingIsNoop(t *testing.T) {
	faulty := &faultyFS{Filesystem: memfs.New()}
	require.NoError(t, faulty.Filesystem.MkdirAll("/exists", 0o755))

	require.NoError(t, filesystem.New(faulty).CreateDirAndCheck("/exists"))
	assert.Zero(t, faulty.mkdirCalled)
}

func TestCreateDirAndCheck_MissingParent(t *testing.T) {
	fsys := filesystem.NewMemory()

	err := fsys.CreateDirAndCheck("/missing/child")
	require.Error(t, err)
	assert.Equal(t, errors.KindWrite, errors.GetKind(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "Failed to create directory: '/missing/child'")

	ok, err := fsys.Exists("/missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateDirAndCheck_WriteFailure(t *testing.T) {
	faulty := &faultyFS{Filesystem: memfs.New(), mkdirErr: fs.ErrPermission}

	err := filesystem.New(faulty).CreateDirAndCheck("/denied")
	require.Error(t, err)

	var writeErr *errors.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, fs.ErrPermission, writeErr.Unwrap())
	assert.False(t, errors.IsInvariantViolation(err))
}

func TestCreateDirAndCheck_StillMissing(t *testing.T) {
	faulty := &faultyFS{Filesystem: memfs.New(), mkdirNoop: true}

	err := filesystem.New(faulty).CreateDirAndCheck("/ghost")
	require.Error(t, err)
	assert.Equal(t, errors.KindWeird, errors.GetKind(err))
	assert.Equal(t, errors.FamilyNone, errors.GetFamily(err))
	assert.True(t, errors.IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "Path: '/ghost'")
	assert.Nil(t, stderrors.Unwrap(errors.From(err).Leaf()))
}

func TestCreateDirAndCheck_VerifyFailure(t *testing.T) {
	faulty := &faultyFS{Filesystem: memfs.New(), statErrAfterMkdir: fs.ErrPermission}

	err := filesystem.New(faulty).CreateDirAndCheck("/unverifiable")
	require.Error(t, err)
	assert.Equal(t, 1, faulty.mkdirCalled)
	assert.Equal(t, errors.KindOtherIO, errors.GetKind(err))
	assert.Equal(t, errors.FamilyIO, errors.GetFamily(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, errors.IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "Failed to verify directory: '/unverifiable'")
}

func TestLocal_RelativePaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, filesystem.CreateDirAndCheck("made"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "made", "f.txt"), []byte("x"), 0o600))

	entries, err := filesystem.ListDir("made")
	require.NoError(t, err)
	assert.Equal(t, []string{"f.txt"}, names(entries))

	info, err := os.Stat(filepath.Join(dir, "made"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
