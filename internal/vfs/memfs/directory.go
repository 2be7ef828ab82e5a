package memfs

import (
	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/forgebuild/xcfs/internal/vfs"
)

// CreateDirectory non-recursively requires the immediate parent to already
// exist as a directory; recursively, it visits every component of path,
// creating whichever are missing, mirroring the walk protocol's
// "CreateDirectory visits every component" rule.
func (b *Backend) CreateDirectory(path string, recursive bool) bool {
	b.Lock()
	defer b.Unlock()

	if !recursive {
		parent, name, leaf, reachable := b.resolve(path)
		if !reachable {
			return false
		}

		if leaf != noHandle {
			return b.nodes[leaf].typ == vfs.TypeDirectory
		}

		child := b.newNode(name, vfs.TypeDirectory, parent)
		b.addChild(parent, child)

		return true
	}

	norm := pathutil.Normalize(path)
	if !pathutil.IsAbsolute(norm) {
		return false
	}

	cur := rootHandle

	for _, c := range pathutil.Split(norm) {
		if b.nodes[cur].typ != vfs.TypeDirectory {
			return false
		}

		child, found := b.findChild(cur, c)
		if !found {
			child = b.newNode(c, vfs.TypeDirectory, cur)
			b.addChild(cur, child)
		} else if b.nodes[child].typ != vfs.TypeDirectory {
			return false
		}

		cur = child
	}

	return true
}

// ReadDirectory reports the immediate children of path first, then
// recurses into the subdirectories among them. Unlike the physical
// backend, no rewind is needed: children are already materialized in the
// arena, so the "two scans" shape collapses to two passes over the same
// slice rather than two reads of the host directory stream. The names are
// collected under the read lock and cb is invoked after it is released, so
// cb may itself modify the backend (as [vfs.DefaultCopyDirectory] does).
func (b *Backend) ReadDirectory(path string, recursive bool, cb func(name string)) bool {
	b.RLock()

	_, _, leaf, reachable := b.resolve(path)
	if !reachable || leaf == noHandle || b.nodes[leaf].typ != vfs.TypeDirectory {
		b.RUnlock()

		return false
	}

	var names []string
	b.readDirectoryRel(leaf, "", recursive, func(name string) { names = append(names, name) })
	b.RUnlock()

	for _, name := range names {
		cb(name)
	}

	return true
}

func (b *Backend) readDirectoryRel(dir handle, relPrefix string, recursive bool, cb func(name string)) {
	children := b.nodes[dir].children

	for _, c := range children {
		cb(joinRel(relPrefix, b.nodes[c].name))
	}

	if !recursive {
		return
	}

	for _, c := range children {
		if b.nodes[c].typ != vfs.TypeDirectory {
			continue
		}

		b.readDirectoryRel(c, joinRel(relPrefix, b.nodes[c].name), true, cb)
	}
}

func joinRel(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}

// RemoveDirectory without recursion fails if path has any children; with
// recursion, it detaches path and its whole subtree in one structural
// operation rather than walking leaves individually.
func (b *Backend) RemoveDirectory(path string, recursive bool) bool {
	b.Lock()
	defer b.Unlock()

	_, _, leaf, reachable := b.resolve(path)
	if !reachable || leaf == noHandle || b.nodes[leaf].typ != vfs.TypeDirectory {
		return false
	}

	if !recursive && len(b.nodes[leaf].children) > 0 {
		return false
	}

	b.detach(leaf)

	return true
}
