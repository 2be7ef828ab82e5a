package memfs_test

import (
	"sort"
	"testing"

	"github.com/forgebuild/xcfs/internal/vfs"
	"github.com/forgebuild/xcfs/internal/vfs/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Enumerate(t *testing.T) {
	t.Parallel()

	b := memfs.New(
		memfs.Directory("a",
			memfs.Directory("b", memfs.File("c.txt", []byte("hi"))),
			memfs.File("d.txt", []byte("x")),
		),
	)

	var names []string
	require.True(t, b.ReadDirectory("/a", true, func(name string) {
		names = append(names, name)
	}))

	sort.Strings(names)
	assert.Equal(t, []string{"b", "b/c.txt", "d.txt"}, names)
}

func TestBackend_ReplaceWrite(t *testing.T) {
	t.Parallel()

	b := memfs.New()

	require.True(t, b.Write([]byte{0x01}, "/f"))
	require.True(t, b.Write([]byte{0x02, 0x03}, "/f"))

	got, ok := b.Read("/f", 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, []byte{0x02, 0x03}, got)
}

func TestBackend_PartialRead(t *testing.T) {
	t.Parallel()

	b := memfs.New(memfs.File("p", []byte("abcdef")))

	got, ok := b.Read("/p", 2, 3, true)
	require.True(t, ok)
	assert.Equal(t, "cde", string(got))
}

func TestBackend_RecursiveCreate(t *testing.T) {
	t.Parallel()

	b := memfs.New()

	require.True(t, b.CreateDirectory("/x/y/z", true))
	assert.True(t, b.IsDirectory("/x"))
	assert.True(t, b.IsDirectory("/x/y"))
	assert.True(t, b.IsDirectory("/x/y/z"))
}

func TestBackend_RecursiveCreateIdempotent(t *testing.T) {
	t.Parallel()

	b := memfs.New()

	require.True(t, b.CreateDirectory("/x/y", true))
	require.True(t, b.CreateDirectory("/x/y", true))
	assert.True(t, b.IsDirectory("/x/y"))
}

func TestBackend_RecursiveRemove(t *testing.T) {
	t.Parallel()

	b := memfs.New(
		memfs.Directory("r",
			memfs.File("a", nil),
			memfs.Directory("b", memfs.File("c", nil)),
		),
	)

	require.True(t, b.RemoveDirectory("/r", true))
	assert.False(t, b.Exists("/r"))
}

func TestBackend_WrongTypeGuard(t *testing.T) {
	t.Parallel()

	b := memfs.New(memfs.Directory("d"))

	assert.False(t, b.CreateFile("/d"))
	assert.True(t, b.IsDirectory("/d"))
}

func TestBackend_RemoveNonEmptyDirectoryFails(t *testing.T) {
	t.Parallel()

	b := memfs.New(memfs.Directory("d", memfs.File("f", nil)))

	assert.False(t, b.RemoveDirectory("/d", false))
}

func TestBackend_ReadOutOfBounds(t *testing.T) {
	t.Parallel()

	b := memfs.New(memfs.File("p", []byte("abc")))

	_, ok := b.Read("/p", 0, 10, true)
	assert.False(t, ok)
}

func TestBackend_ResolvePathMatchesExistence(t *testing.T) {
	t.Parallel()

	b := memfs.New(memfs.File("p", []byte("x")))

	resolved, ok := b.ResolvePath("/p")
	require.True(t, ok)
	assert.Equal(t, "/p", resolved)

	_, ok = b.ResolvePath("/missing")
	assert.False(t, ok)
}

func TestBackend_SymbolicLinksAlwaysFail(t *testing.T) {
	t.Parallel()

	b := memfs.New()

	assert.False(t, b.WriteSymbolicLink("/x", "/link"))
	_, ok := b.ReadSymbolicLink("/link")
	assert.False(t, ok)
	assert.False(t, b.RemoveSymbolicLink("/link"))
}

func TestBackend_NonAbsolutePathFails(t *testing.T) {
	t.Parallel()

	b := memfs.New()

	assert.False(t, b.Exists("relative/path"))
	assert.False(t, b.CreateFile("relative"))
}

func TestBackend_CopyDirectory(t *testing.T) {
	t.Parallel()

	b := memfs.New(
		memfs.Directory("src",
			memfs.Directory("sub", memfs.File("nested.txt", []byte("b"))),
			memfs.File("top.txt", []byte("a")),
		),
	)

	require.True(t, b.CopyDirectory("/src", "/dst"))

	contents, ok := b.Read("/dst/sub/nested.txt", 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "b", string(contents))
}

func TestBackend_UniversalInvariantExistenceImpliesType(t *testing.T) {
	t.Parallel()

	b := memfs.New(memfs.File("f", []byte("x")), memfs.Directory("d"))

	for _, p := range []string{"/f", "/d"} {
		ok := b.IsFile(p) || b.IsSymbolicLink(p) || b.IsDirectory(p)
		assert.True(t, ok)
		assert.True(t, b.Exists(p))
	}

	assert.Equal(t, vfs.TypeFile, b.Type("/f"))
	assert.Equal(t, vfs.TypeDirectory, b.Type("/d"))
	assert.Equal(t, vfs.TypeAbsent, b.Type("/nope"))
}
