package memfs

import (
	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/forgebuild/xcfs/internal/vfs"
)

// CopyFile, CopySymbolicLink and CopyDirectory have no native bulk-copy
// facility here; they fall straight through to the contract defaults.
func (b *Backend) CopyFile(src, dst string) bool {
	return vfs.DefaultCopyFile(b, src, dst)
}

func (b *Backend) CopySymbolicLink(src, dst string) bool {
	return vfs.DefaultCopySymbolicLink(b, src, dst)
}

func (b *Backend) CopyDirectory(src, dst string) bool {
	return vfs.DefaultCopyDirectory(b, src, dst)
}

// ResolvePath has no links to follow in this backend; it normalizes path
// and succeeds iff the result exists.
func (b *Backend) ResolvePath(path string) (string, bool) {
	norm := pathutil.Normalize(path)
	if !pathutil.IsAbsolute(norm) {
		return "", false
	}

	if !b.Exists(norm) {
		return "", false
	}

	return norm, true
}
