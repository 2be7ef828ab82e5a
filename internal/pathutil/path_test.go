package pathutil_test

import (
	"testing"

	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Root", "/", "/"},
		{"AlreadyNormal", "/a/b", "/a/b"},
		{"CollapsedSeparators", "/a//b///c", "/a/b/c"},
		{"DotSegments", "/a/./b/./c", "/a/b/c"},
		{"DotDotCancelsPrior", "/a/b/../c", "/a/c"},
		{"TrailingSeparatorStripped", "/a/b/", "/a/b"},
		{"LeadingDotDotDiscardedOnAbsolute", "/../a", "/a"},
		{"ExcessLeadingDotDotDiscarded", "/../../a", "/a"},
		{"RelativeDotDotPreservedAtStart", "../a", "../a"},
		{"RelativeDotDotCancelsPrior", "a/../b", "b"},
		{"RelativeCollapsesToDot", "a/..", "."},
		{"RelativeAllDots", ".", "."},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pathutil.Normalize(tc.in))
		})
	}
}

func TestGetDirectoryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", pathutil.GetDirectoryName("noseparator"))
	assert.Equal(t, "/", pathutil.GetDirectoryName("/foo"))
	assert.Equal(t, "/a/b", pathutil.GetDirectoryName("/a/b/c"))
	assert.Equal(t, "/", pathutil.GetDirectoryName("/"))
}

func TestGetBaseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "noseparator", pathutil.GetBaseName("noseparator"))
	assert.Equal(t, "c", pathutil.GetBaseName("/a/b/c"))
	assert.Equal(t, "", pathutil.GetBaseName("/"))
}

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	assert.True(t, pathutil.IsAbsolute("/a/b"))
	assert.False(t, pathutil.IsAbsolute("a/b"))
	assert.False(t, pathutil.IsAbsolute(""))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a/b/c", pathutil.Join("/a", "b", "c"))
	assert.Equal(t, "/a/c", pathutil.Join("/a/b", "..", "c"))
	assert.Equal(t, "/a", pathutil.Join("/a/", ""))
}

func TestSplit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, pathutil.Split("/a/b/c"))
	assert.Nil(t, pathutil.Split("/"))
	assert.Nil(t, pathutil.Split(""))
}
