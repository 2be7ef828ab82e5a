package memfs

import "github.com/forgebuild/xcfs/internal/vfs"

func (b *Backend) Exists(path string) bool {
	b.RLock()
	defer b.RUnlock()

	_, _, leaf, reachable := b.resolve(path)

	return reachable && leaf != noHandle
}

// IsReadable, IsWritable and IsExecutable have no permission model in this
// backend; every entry that exists is readable, writable and executable.
func (b *Backend) IsReadable(path string) bool {
	return b.Exists(path)
}

func (b *Backend) IsWritable(path string) bool {
	return b.Exists(path)
}

func (b *Backend) IsExecutable(path string) bool {
	return b.Exists(path)
}

func (b *Backend) IsFile(path string) bool {
	return b.Type(path) == vfs.TypeFile
}

// IsSymbolicLink is always false; this backend carries no links.
func (b *Backend) IsSymbolicLink(path string) bool {
	return false
}

func (b *Backend) IsDirectory(path string) bool {
	return b.Type(path) == vfs.TypeDirectory
}

func (b *Backend) Type(path string) vfs.FileType {
	b.RLock()
	defer b.RUnlock()

	_, _, leaf, reachable := b.resolve(path)
	if !reachable || leaf == noHandle {
		return vfs.TypeAbsent
	}

	return b.nodes[leaf].typ
}
