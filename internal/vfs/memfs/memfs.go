// Package memfs implements the [vfs.Filesystem] contract entirely in
// memory. It holds no references to the host filesystem, carries no
// symbolic links, and exists to let consumers exercise the contract in
// tests without touching disk.
package memfs

import (
	"sync"

	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/forgebuild/xcfs/internal/vfs"
)

// handle indexes into Backend.nodes. The zero value is always the root; -1
// denotes "no node".
type handle int

const (
	rootHandle handle = 0
	noHandle   handle = -1
)

type node struct {
	name     string
	typ      vfs.FileType
	parent   handle
	children []handle
	content  []byte
}

// Backend is a single-rooted, in-memory tree of nodes addressed by stable
// handles rather than pointers, so a mutation of one node's children never
// invalidates a handle held elsewhere — the arena the design notes call for
// in place of the pointer-into-a-growing-vector shape of the source.
type Backend struct {
	sync.RWMutex

	nodes []node
}

var _ vfs.Filesystem = (*Backend)(nil)

// New builds a backend whose root is seeded with entries, as built by
// [File] and [Directory].
func New(entries ...InitialEntry) *Backend {
	b := &Backend{
		nodes: []node{{name: "/", typ: vfs.TypeDirectory, parent: noHandle}},
	}

	for _, e := range entries {
		e.apply(b, rootHandle)
	}

	return b
}

func (b *Backend) newNode(name string, typ vfs.FileType, parent handle) handle {
	b.nodes = append(b.nodes, node{name: name, typ: typ, parent: parent})

	return handle(len(b.nodes) - 1)
}

func (b *Backend) findChild(dir handle, name string) (handle, bool) {
	for _, c := range b.nodes[dir].children {
		if b.nodes[c].name == name {
			return c, true
		}
	}

	return noHandle, false
}

func (b *Backend) addChild(dir, child handle) {
	b.nodes[dir].children = append(b.nodes[dir].children, child)
}

// detach removes child from its parent's children list. The node itself is
// left in the arena, unreachable from root; nothing ever resolves to it
// again because resolution only ever walks from root through children.
func (b *Backend) detach(child handle) {
	parent := b.nodes[child].parent
	if parent == noHandle {
		return
	}

	siblings := b.nodes[parent].children
	for i, c := range siblings {
		if c == child {
			b.nodes[parent].children = append(siblings[:i], siblings[i+1:]...)

			return
		}
	}
}

// resolve walks path component by component from root. reachable reports
// whether every intermediate component was a directory that existed; leaf
// is noHandle when the final component itself is absent but everything up
// to it was reachable. parent/name describe where the leaf would be
// created if it does not exist.
func (b *Backend) resolve(path string) (parent handle, name string, leaf handle, reachable bool) {
	norm := pathutil.Normalize(path)
	if !pathutil.IsAbsolute(norm) {
		return noHandle, "", noHandle, false
	}

	comps := pathutil.Split(norm)
	if len(comps) == 0 {
		return noHandle, "", rootHandle, true
	}

	cur := rootHandle

	for i, c := range comps {
		if b.nodes[cur].typ != vfs.TypeDirectory {
			return noHandle, "", noHandle, false
		}

		child, found := b.findChild(cur, c)
		last := i == len(comps)-1

		if last {
			return cur, c, child, true
		}

		if !found {
			return noHandle, "", noHandle, false
		}

		cur = child
	}

	return noHandle, "", noHandle, false
}
