package physical_test

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/forgebuild/xcfs/internal/vfs"
	"github.com/forgebuild/xcfs/internal/vfs/physical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*physical.Backend, string) {
	t.Helper()

	root := t.TempDir()

	return physical.New(), root
}

func TestBackend_FileRoundTrip(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	path := filepath.Join(root, "a.txt")

	require.True(t, b.CreateFile(path))
	assert.True(t, b.IsFile(path))
	assert.Equal(t, vfs.TypeFile, b.Type(path))

	require.True(t, b.Write([]byte("hello world"), path))

	contents, ok := b.Read(path, 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "hello world", string(contents))

	partial, ok := b.Read(path, 6, 5, true)
	require.True(t, ok)
	assert.Equal(t, "world", string(partial))

	require.True(t, b.RemoveFile(path))
	assert.False(t, b.Exists(path))
}

func TestBackend_ReadOutOfBounds(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	path := filepath.Join(root, "a.txt")

	require.True(t, b.Write([]byte("abc"), path))

	_, ok := b.Read(path, 0, 10, true)
	assert.False(t, ok)

	_, ok = b.Read(path, 4, 0, false)
	assert.False(t, ok)
}

func TestBackend_SymbolicLinkRoundTrip(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	target := filepath.Join(root, "target.txt")
	link := filepath.Join(root, "link.txt")

	require.True(t, b.Write([]byte("x"), target))
	require.True(t, b.WriteSymbolicLink(target, link))

	assert.Equal(t, vfs.TypeSymbolicLink, b.Type(link))

	got, ok := b.ReadSymbolicLink(link)
	require.True(t, ok)
	assert.Equal(t, target, got)

	require.True(t, b.RemoveSymbolicLink(link))
	assert.True(t, b.RemoveSymbolicLink(link), "removing an already-absent link is success")
}

func TestBackend_CreateDirectoryRecursive(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	nested := filepath.Join(root, "a", "b", "c")

	require.True(t, b.CreateDirectory(nested, true))
	assert.True(t, b.IsDirectory(nested))
	assert.True(t, b.IsDirectory(filepath.Join(root, "a", "b")))
}

func TestBackend_CreateDirectoryNonRecursiveRequiresParent(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	nested := filepath.Join(root, "a", "b")

	assert.False(t, b.CreateDirectory(nested, false))
	assert.False(t, b.Exists(nested))
}

func TestBackend_CreateDirectoryFailsWhenAncestorIsAFile(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	ancestor := filepath.Join(root, "a")
	nested := filepath.Join(ancestor, "b", "c")

	require.True(t, b.Write([]byte("not a directory"), ancestor))

	assert.False(t, b.CreateDirectory(nested, true))
	assert.False(t, b.Exists(filepath.Join(ancestor, "b")))
	assert.True(t, b.IsFile(ancestor), "the pre-existing file must be left untouched")
}

func TestBackend_ReadDirectoryOrder(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)

	require.True(t, b.CreateDirectory(filepath.Join(root, "sub"), true))
	require.True(t, b.Write([]byte("x"), filepath.Join(root, "top.txt")))
	require.True(t, b.Write([]byte("y"), filepath.Join(root, "sub", "nested.txt")))

	var names []string
	require.True(t, b.ReadDirectory(root, true, func(name string) {
		names = append(names, name)
	}))

	sort.Strings(names)
	assert.Equal(t, []string{"sub", "sub/nested.txt", "top.txt"}, names)
}

func TestBackend_RemoveDirectoryRecursive(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	sub := filepath.Join(root, "sub")

	require.True(t, b.CreateDirectory(sub, true))
	require.True(t, b.Write([]byte("x"), filepath.Join(sub, "f.txt")))

	require.True(t, b.RemoveDirectory(sub, true))
	assert.False(t, b.Exists(sub))
}

func TestBackend_RemoveDirectoryNonRecursiveRequiresEmpty(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	sub := filepath.Join(root, "sub")

	require.True(t, b.CreateDirectory(sub, true))
	require.True(t, b.Write([]byte("x"), filepath.Join(sub, "f.txt")))

	assert.False(t, b.RemoveDirectory(sub, false))
}

func TestBackend_ResolvePathFollowsSymlinks(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)

	require.True(t, b.CreateDirectory(filepath.Join(root, "real"), true))
	require.True(t, b.Write([]byte("x"), filepath.Join(root, "real", "f.txt")))
	require.True(t, b.WriteSymbolicLink(filepath.Join(root, "real"), filepath.Join(root, "link")))

	resolved, ok := b.ResolvePath(filepath.Join(root, "link", "f.txt"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "real", "f.txt"), resolved)
}

func TestBackend_CopyFile(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "dst.txt")

	require.True(t, b.Write([]byte("copy me"), src))
	require.True(t, b.CopyFile(src, dst))

	contents, ok := b.Read(dst, 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "copy me", string(contents))
}

func TestBackend_CopyDirectory(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")

	require.True(t, b.CreateDirectory(filepath.Join(src, "sub"), true))
	require.True(t, b.Write([]byte("a"), filepath.Join(src, "top.txt")))
	require.True(t, b.Write([]byte("b"), filepath.Join(src, "sub", "nested.txt")))

	require.True(t, b.CopyDirectory(src, dst))

	contents, ok := b.Read(filepath.Join(dst, "sub", "nested.txt"), 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "b", string(contents))
}

func TestBackend_WrongTypeGuards(t *testing.T) {
	t.Parallel()

	b, root := newTestBackend(t)
	dir := filepath.Join(root, "d")

	require.True(t, b.CreateDirectory(dir, true))

	assert.False(t, b.RemoveFile(dir))
	assert.False(t, b.Write([]byte("x"), dir))
	assert.False(t, b.CreateFile(dir))
}
