package vfs

import "github.com/forgebuild/xcfs/internal/pathutil"

// DefaultCopyFile copies src to dst by reading the whole file and writing it
// back out. Backends that can offer a faster bulk-copy primitive should
// still fall back to this when that primitive is unavailable or fails.
func DefaultCopyFile(fs Filesystem, src, dst string) bool {
	contents, ok := fs.Read(src, 0, 0, false)
	if !ok {
		return false
	}

	return fs.Write(contents, dst)
}

// DefaultCopySymbolicLink copies the link at src to dst by reading its
// target and recreating it verbatim.
func DefaultCopySymbolicLink(fs Filesystem, src, dst string) bool {
	target, ok := fs.ReadSymbolicLink(src)
	if !ok {
		return false
	}

	return fs.WriteSymbolicLink(target, dst)
}

// DefaultCopyDirectory recursively copies src to dst: it creates dst, then
// walks src breadth-within-a-directory-then-depth (the same order
// [Filesystem.ReadDirectory] uses) and copies each file or symbolic link it
// finds, creating intermediate directories as they are encountered.
func DefaultCopyDirectory(fs Filesystem, src, dst string) bool {
	if !fs.IsDirectory(src) {
		return false
	}
	if !fs.CreateDirectory(dst, true) {
		return false
	}

	ok := true

	fs.ReadDirectory(src, true, func(name string) {
		srcChild := pathutil.Join(src, name)
		dstChild := pathutil.Join(dst, name)

		switch fs.Type(srcChild) {
		case TypeDirectory:
			if !fs.CreateDirectory(dstChild, true) {
				ok = false
			}
		case TypeSymbolicLink:
			if !fs.CopySymbolicLink(srcChild, dstChild) {
				ok = false
			}
		case TypeFile:
			if !fs.CopyFile(srcChild, dstChild) {
				ok = false
			}
		default:
			ok = false
		}
	})

	return ok
}

// FindFile searches paths in order for an existing entry named name, and
// returns the first absolute match. It never follows symbolic links; that
// is a separate caller responsibility via [Filesystem.ResolvePath].
func FindFile(fs Filesystem, name string, paths []string) (string, bool) {
	for _, dir := range paths {
		candidate := pathutil.Join(dir, name)
		if fs.Exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// FindExecutable is [FindFile], additionally requiring the executable
// permission bit at the matching path.
func FindExecutable(fs Filesystem, name string, paths []string) (string, bool) {
	for _, dir := range paths {
		candidate := pathutil.Join(dir, name)
		if fs.Exists(candidate) && fs.IsExecutable(candidate) {
			return candidate, true
		}
	}

	return "", false
}
