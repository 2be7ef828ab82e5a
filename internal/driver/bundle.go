package driver

import (
	"github.com/forgebuild/xcfs/internal/pathutil"
	"github.com/forgebuild/xcfs/internal/project"
)

// BundleSpec is the resolved output shape a plain "assemble" invocation
// (one not driven by a decoded Target) produces: a bundle root and the
// resources copied into it by base name.
type BundleSpec struct {
	Root      string
	Resources []string
}

// Specs expands the bundle into the copy pairs a CopyFilesBuildPhase runs.
func (b BundleSpec) Specs() []project.CopyFileSpec {
	specs := make([]project.CopyFileSpec, 0, len(b.Resources))

	for _, r := range b.Resources {
		specs = append(specs, project.CopyFileSpec{
			Source:      r,
			Destination: pathutil.Join(b.Root, pathutil.GetBaseName(r)),
		})
	}

	return specs
}
