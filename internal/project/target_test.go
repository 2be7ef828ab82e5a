package project_test

import (
	"testing"

	"github.com/forgebuild/xcfs/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTarget_CopyFilesPhase(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"name": "App",
		"buildPhases": []any{
			map[string]any{
				"type": "CopyFiles",
				"name": "CopyResources",
				"files": []any{
					map[string]any{"source": "/a.txt", "destination": "/out/a.txt"},
				},
			},
		},
	}

	target, ok := project.DecodeTarget(m)
	require.True(t, ok)
	assert.Equal(t, "App", target.Name)
	require.Len(t, target.Phases, 1)
	assert.Equal(t, "CopyResources", target.Phases[0].Name())
	assert.Equal(t, []string{"/a.txt"}, target.Phases[0].Inputs())
	assert.Equal(t, []string{"/out/a.txt"}, target.Phases[0].Outputs())
}

func TestDecodeTarget_RejectsUnknownPhaseType(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"name":        "App",
		"buildPhases": []any{map[string]any{"type": "ShellScript"}},
	}

	_, ok := project.DecodeTarget(m)
	assert.False(t, ok)
}

func TestDecodeTarget_RequiresName(t *testing.T) {
	t.Parallel()

	_, ok := project.DecodeTarget(map[string]any{})
	assert.False(t, ok)
}
