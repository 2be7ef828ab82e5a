package project_test

import (
	"context"
	"testing"

	"github.com/forgebuild/xcfs/internal/project"
	"github.com/forgebuild/xcfs/internal/vfs/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFilesBuildPhase_ProducesDestinationTreeAndManifest(t *testing.T) {
	t.Parallel()

	fs := memfs.New(
		memfs.Directory("src",
			memfs.File("a.txt", []byte("a")),
			memfs.Directory("res", memfs.File("b.txt", []byte("b"))),
		),
	)

	phase := &project.CopyFilesBuildPhase{
		PhaseName: "CopyFiles",
		Specs: []project.CopyFileSpec{
			{Source: "/src/a.txt", Destination: "/dst/a.txt"},
			{Source: "/src/res", Destination: "/dst/res"},
		},
	}

	require.NoError(t, phase.Run(context.Background(), fs))

	contents, ok := fs.Read("/dst/a.txt", 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "a", string(contents))

	nested, ok := fs.Read("/dst/res/b.txt", 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "b", string(nested))

	assert.Len(t, phase.Manifest, 2)
}

func TestCopyFilesBuildPhase_CollisionSkipsButContinues(t *testing.T) {
	t.Parallel()

	fs := memfs.New(
		memfs.File("a.txt", []byte("a")),
		memfs.File("b.txt", []byte("b")),
		memfs.File("existing.txt", []byte("old")),
	)

	phase := &project.CopyFilesBuildPhase{
		PhaseName: "CopyFiles",
		Specs: []project.CopyFileSpec{
			{Source: "/a.txt", Destination: "/existing.txt"},
			{Source: "/b.txt", Destination: "/new.txt"},
		},
	}

	require.NoError(t, phase.Run(context.Background(), fs))

	contents, ok := fs.Read("/existing.txt", 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "old", string(contents), "collision must not overwrite the existing destination")

	copied, ok := fs.Read("/new.txt", 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "b", string(copied))

	require.Len(t, phase.Manifest, 1)
	assert.Equal(t, "/b.txt", phase.Manifest[0].Source)
}

func TestCopyFilesBuildPhase_MissingSourceSkipsButContinues(t *testing.T) {
	t.Parallel()

	fs := memfs.New(memfs.File("a.txt", []byte("a")))

	phase := &project.CopyFilesBuildPhase{
		PhaseName: "CopyFiles",
		Specs: []project.CopyFileSpec{
			{Source: "/missing.txt", Destination: "/out-missing.txt"},
			{Source: "/a.txt", Destination: "/out.txt"},
		},
	}

	require.NoError(t, phase.Run(context.Background(), fs))

	assert.False(t, fs.Exists("/out-missing.txt"))

	copied, ok := fs.Read("/out.txt", 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, "a", string(copied))

	require.Len(t, phase.Manifest, 1)
	assert.Equal(t, "/a.txt", phase.Manifest[0].Source)

	progress := phase.Progress()
	assert.Equal(t, 2, progress.TotalItems)
	assert.Equal(t, 1, progress.SkippedItems)
	assert.Equal(t, 1, progress.SuccessItems)
}

func TestCopyFilesBuildPhase_ContextCancellation(t *testing.T) {
	t.Parallel()

	fs := memfs.New(memfs.File("a.txt", []byte("a")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	phase := &project.CopyFilesBuildPhase{
		PhaseName: "CopyFiles",
		Specs: []project.CopyFileSpec{
			{Source: "/a.txt", Destination: "/out.txt"},
		},
	}

	err := phase.Run(ctx, fs)
	assert.Error(t, err)
}
