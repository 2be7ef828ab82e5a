package physical

import (
	"os"

	"golang.org/x/sys/unix"
)

// osProvider is the subset of the os package this backend depends on,
// narrowed to an interface so tests can substitute a fake without touching
// the host filesystem.
type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Readlink(name string) (string, error)
	Getwd() (string, error)
}

// unixProvider is the subset of golang.org/x/sys/unix this backend depends
// on. Mirrors the split the rest of this ecosystem uses between os-level
// and unix-level operations.
type unixProvider interface {
	Access(path string, mode uint32) error
	Lstat(path string, stat *unix.Stat_t) error
	Mkdir(path string, mode uint32) error
	Rmdir(path string) error
	Unlink(path string) error
	Symlink(oldpath, newpath string) error
	Umask(mask int) int
}

type realOS struct{}

func (*realOS) Open(name string) (*os.File, error) { return os.Open(name) }

func (*realOS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (*realOS) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }
func (*realOS) Readlink(name string) (string, error)       { return os.Readlink(name) }
func (*realOS) Getwd() (string, error)                     { return os.Getwd() }

type realUnix struct{}

func (*realUnix) Access(path string, mode uint32) error { return unix.Access(path, mode) }
func (*realUnix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}
func (*realUnix) Mkdir(path string, mode uint32) error      { return unix.Mkdir(path, mode) }
func (*realUnix) Rmdir(path string) error                   { return unix.Rmdir(path) }
func (*realUnix) Unlink(path string) error                  { return unix.Unlink(path) }
func (*realUnix) Symlink(oldpath, newpath string) error     { return unix.Symlink(oldpath, newpath) }
func (*realUnix) Umask(mask int) int                        { return unix.Umask(mask) }
