package memfs

import (
	"math"

	"github.com/forgebuild/xcfs/internal/vfs"
)

// CreateFile is idempotent over an existing file and fails against any
// other existing type.
func (b *Backend) CreateFile(path string) bool {
	b.Lock()
	defer b.Unlock()

	parent, name, leaf, reachable := b.resolve(path)
	if !reachable {
		return false
	}

	if leaf != noHandle {
		return b.nodes[leaf].typ == vfs.TypeFile
	}

	child := b.newNode(name, vfs.TypeFile, parent)
	b.addChild(parent, child)

	return true
}

func (b *Backend) Read(path string, offset int64, length int64, hasLength bool) ([]byte, bool) {
	b.RLock()
	defer b.RUnlock()

	_, _, leaf, reachable := b.resolve(path)
	if !reachable || leaf == noHandle || b.nodes[leaf].typ != vfs.TypeFile {
		return nil, false
	}

	content := b.nodes[leaf].content
	size := int64(len(content))

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

	out := make([]byte, readLen)
	copy(out, content[offset:offset+readLen])

	return out, true
}

// Write creates a file at path if absent, or entirely replaces its content
// if it already exists as a file; it fails against any other existing
// type.
func (b *Backend) Write(contents []byte, path string) bool {
	b.Lock()
	defer b.Unlock()

	parent, name, leaf, reachable := b.resolve(path)
	if !reachable {
		return false
	}

	if leaf == noHandle {
		leaf = b.newNode(name, vfs.TypeFile, parent)
		b.addChild(parent, leaf)
	} else if b.nodes[leaf].typ != vfs.TypeFile {
		return false
	}

	stored := make([]byte, len(contents))
	copy(stored, contents)
	b.nodes[leaf].content = stored

	return true
}

func (b *Backend) RemoveFile(path string) bool {
	b.Lock()
	defer b.Unlock()

	_, _, leaf, reachable := b.resolve(path)
	if !reachable || leaf == noHandle || b.nodes[leaf].typ != vfs.TypeFile {
		return false
	}

	b.detach(leaf)

	return true
}

// ReadSymbolicLink, WriteSymbolicLink and RemoveSymbolicLink always fail;
// this backend is link-free by design.
func (b *Backend) ReadSymbolicLink(path string) (string, bool) {
	return "", false
}

func (b *Backend) WriteSymbolicLink(target string, path string) bool {
	return false
}

func (b *Backend) RemoveSymbolicLink(path string) bool {
	return false
}
