package memfs

import "github.com/forgebuild/xcfs/internal/vfs"

// InitialEntry describes one entry to seed into a [Backend] at
// construction, built with [File] or [Directory].
type InitialEntry interface {
	apply(b *Backend, parent handle)
}

type fileEntry struct {
	name    string
	content []byte
}

func (e fileEntry) apply(b *Backend, parent handle) {
	child := b.newNode(e.name, vfs.TypeFile, parent)
	b.nodes[child].content = append([]byte(nil), e.content...)
	b.addChild(parent, child)
}

// File builds an [InitialEntry] for a regular file with the given content.
func File(name string, content []byte) InitialEntry {
	return fileEntry{name: name, content: content}
}

type dirEntry struct {
	name     string
	children []InitialEntry
}

func (e dirEntry) apply(b *Backend, parent handle) {
	child := b.newNode(e.name, vfs.TypeDirectory, parent)
	b.addChild(parent, child)

	for _, c := range e.children {
		c.apply(b, child)
	}
}

// Directory builds an [InitialEntry] for a directory containing children.
func Directory(name string, children ...InitialEntry) InitialEntry {
	return dirEntry{name: name, children: children}
}
