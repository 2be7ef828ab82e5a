// Package physical implements the [vfs.Filesystem] contract against the
// host operating system using POSIX primitives (via golang.org/x/sys/unix),
// opportunistically using a native bulk-copy facility where the platform
// offers one.
package physical

import (
	"io"
	"math"
	"os"

	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/forgebuild/xcfs/internal/vfs"
)

// Backend implements [vfs.Filesystem] against the host filesystem.
type Backend struct {
	os   osProvider
	unix unixProvider
}

// New returns a [Backend] bound to the real host filesystem.
func New() *Backend {
	return &Backend{os: &realOS{}, unix: &realUnix{}}
}

var _ vfs.Filesystem = (*Backend)(nil)

// Probes.

func (b *Backend) Exists(path string) bool {
	return b.unix.Access(path, 0) == nil // F_OK is 0.
}

func (b *Backend) IsReadable(path string) bool {
	const readOK = 0o4 // unix.R_OK

	return b.unix.Access(path, readOK) == nil
}

func (b *Backend) IsWritable(path string) bool {
	const writeOK = 0o2 // unix.W_OK

	return b.unix.Access(path, writeOK) == nil
}

func (b *Backend) IsExecutable(path string) bool {
	const execOK = 0o1 // unix.X_OK

	return b.unix.Access(path, execOK) == nil
}

func (b *Backend) IsFile(path string) bool {
	return b.Type(path) == vfs.TypeFile
}

func (b *Backend) IsSymbolicLink(path string) bool {
	return b.Type(path) == vfs.TypeSymbolicLink
}

func (b *Backend) IsDirectory(path string) bool {
	return b.Type(path) == vfs.TypeDirectory
}

// Type lstats path and never follows a trailing symbolic link.
func (b *Backend) Type(path string) vfs.FileType {
	mode, ok := b.lstatMode(path)
	if !ok {
		return vfs.TypeAbsent
	}

	switch mode & modeTypeMask {
	case modeTypeDir:
		return vfs.TypeDirectory
	case modeTypeLnk:
		return vfs.TypeSymbolicLink
	case modeTypeReg:
		return vfs.TypeFile
	default:
		return vfs.TypeAbsent
	}
}

// File I/O.

// CreateFile is idempotent over an existing regular file.
func (b *Backend) CreateFile(path string) bool {
	switch b.Type(path) {
	case vfs.TypeFile:
		return true
	case vfs.TypeAbsent:
	default:
		return false
	}

	mode := defaultFileMode(b.unix)

	f, err := b.os.OpenFile(path, os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		return false
	}
	defer f.Close()

	return true
}

func (b *Backend) Read(path string, offset int64, length int64, hasLength bool) ([]byte, bool) {
	if b.Type(path) != vfs.TypeFile {
		return nil, false
	}

	f, err := b.os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, false
	}

	if offset < 0 || offset > size {
		return nil, false
	}

	readLen := size - offset
	if hasLength {
		if length < 0 || offset > math.MaxInt64-length {
			return nil, false
		}
		if offset+length > size {
			return nil, false
		}
		readLen = length
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, false
	}

	buf := make([]byte, readLen)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, false
	}

	return buf, true
}

// Write replaces an existing file's content, or creates a new file.
func (b *Backend) Write(contents []byte, path string) bool {
	switch b.Type(path) {
	case vfs.TypeFile, vfs.TypeAbsent:
	default:
		return false
	}

	mode := defaultFileMode(b.unix)

	f, err := b.os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return false
	}
	defer f.Close()

	if _, err := f.Write(contents); err != nil {
		return false
	}

	return true
}

func (b *Backend) RemoveFile(path string) bool {
	if b.Type(path) != vfs.TypeFile {
		return false
	}

	return b.unix.Unlink(path) == nil
}

// Symbolic links.

func (b *Backend) ReadSymbolicLink(path string) (string, bool) {
	if b.Type(path) != vfs.TypeSymbolicLink {
		return "", false
	}

	target, err := b.os.Readlink(path)
	if err != nil {
		return "", false
	}

	return target, true
}

func (b *Backend) WriteSymbolicLink(target string, path string) bool {
	if b.Type(path) != vfs.TypeAbsent {
		return false
	}

	return b.unix.Symlink(target, path) == nil
}

// RemoveSymbolicLink ensures path is not a link after the call: absence of
// path is treated as success, matching the preserved physical-backend
// idempotence rather than the stricter in-memory backend behavior.
func (b *Backend) RemoveSymbolicLink(path string) bool {
	switch b.Type(path) {
	case vfs.TypeAbsent:
		return true
	case vfs.TypeSymbolicLink:
		return b.unix.Unlink(path) == nil
	default:
		return false
	}
}

// Directories.

func (b *Backend) CreateDirectory(path string, recursive bool) bool {
	switch b.Type(path) {
	case vfs.TypeDirectory:
		return true
	case vfs.TypeAbsent:
	default:
		return false
	}

	mode := defaultDirMode(b.unix)

	if !recursive {
		parent := pathutil.GetDirectoryName(path)
		if !b.IsDirectory(parent) {
			return false
		}

		return b.unix.Mkdir(path, uint32(mode)) == nil
	}

	var missing []string

	cur := path
	for cur != "" && cur != "/" && b.Type(cur) == vfs.TypeAbsent {
		missing = append(missing, cur)

		parent := pathutil.GetDirectoryName(cur)
		if parent == cur {
			break
		}

		cur = parent
	}

	for i := len(missing) - 1; i >= 0; i-- {
		if err := b.unix.Mkdir(missing[i], uint32(mode)); err != nil && b.Type(missing[i]) != vfs.TypeDirectory {
			return false
		}
	}

	return b.Type(path) == vfs.TypeDirectory
}

func (b *Backend) ReadDirectory(path string, recursive bool, cb func(name string)) bool {
	if !b.IsDirectory(path) {
		return false
	}

	return b.readDirectoryRel(path, "", recursive, cb)
}

// readDirectoryRel reports the immediate children of absPath first (pass
// one), then rewinds the directory stream and recurses into subdirectories
// (pass two). This two-pass shape is deliberate: it mirrors the
// opendir/readdir/rewinddir/readdir contract this backend's design is
// pinned to, rather than buffering the whole subtree up front.
func (b *Backend) readDirectoryRel(absPath, relPrefix string, recursive bool, cb func(name string)) bool {
	f, err := b.os.Open(absPath)
	if err != nil {
		return false
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return false
	}

	for _, e := range entries {
		cb(joinRel(relPrefix, e.Name()))
	}

	if !recursive {
		return true
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false
	}

	entries, err = f.ReadDir(-1)
	if err != nil {
		return false
	}

	ok := true

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		childAbs := pathutil.Join(absPath, e.Name())
		childRel := joinRel(relPrefix, e.Name())

		if !b.readDirectoryRel(childAbs, childRel, true, cb) {
			ok = false
		}
	}

	return ok
}

func joinRel(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}

// RemoveDirectory follows a best-effort policy: it keeps deleting whatever
// it can and reports overall success only if every step succeeded.
func (b *Backend) RemoveDirectory(path string, recursive bool) bool {
	if !b.IsDirectory(path) {
		return false
	}

	if !recursive {
		entries, err := b.os.ReadDir(path)
		if err != nil || len(entries) > 0 {
			return false
		}

		return b.unix.Rmdir(path) == nil
	}

	ok := b.removeDirectoryContents(path)
	if b.unix.Rmdir(path) != nil {
		ok = false
	}

	return ok
}

func (b *Backend) removeDirectoryContents(path string) bool {
	entries, err := b.os.ReadDir(path)
	if err != nil {
		return false
	}

	ok := true

	for _, e := range entries {
		child := pathutil.Join(path, e.Name())

		switch b.Type(child) {
		case vfs.TypeDirectory:
			if !b.removeDirectoryContents(child) {
				ok = false
			}
			if b.unix.Rmdir(child) != nil {
				ok = false
			}
		case vfs.TypeFile, vfs.TypeSymbolicLink:
			if b.unix.Unlink(child) != nil {
				ok = false
			}
		default:
			ok = false
		}
	}

	return ok
}

// Resolution.

const maxSymlinkDepth = 40

// ResolvePath follows every symbolic link on path and returns the
// normalized absolute result. It is the only operation in the contract
// that follows links.
func (b *Backend) ResolvePath(path string) (string, bool) {
	abs := path
	if !pathutil.IsAbsolute(path) {
		cwd, err := b.os.Getwd()
		if err != nil {
			return "", false
		}

		abs = pathutil.Join(cwd, path)
	}

	resolved, ok := b.resolveComponents(pathutil.Normalize(abs), 0)
	if !ok {
		return "", false
	}

	return pathutil.Normalize(resolved), true
}

func (b *Backend) resolveComponents(path string, depth int) (string, bool) {
	if depth > maxSymlinkDepth {
		return "", false
	}

	cur := "/"

	for _, component := range pathutil.Split(path) {
		cur = pathutil.Join(cur, component)

		if b.Type(cur) == vfs.TypeSymbolicLink {
			target, ok := b.ReadSymbolicLink(cur)
			if !ok {
				return "", false
			}

			if !pathutil.IsAbsolute(target) {
				target = pathutil.Join(pathutil.GetDirectoryName(cur), target)
			}

			resolved, ok := b.resolveComponents(pathutil.Normalize(target), depth+1)
			if !ok {
				return "", false
			}

			cur = resolved
		} else if !b.Exists(cur) {
			return "", false
		}
	}

	return cur, true
}
