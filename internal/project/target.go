package project

// Target groups the build phases that together produce one product,
// roughly a target in an Xcode project. It is built by DecodeTarget from a
// pre-decoded property-list-shaped map rather than parsed directly from a
// property list; the property-list decoder itself is an external
// collaborator and is not implemented here.
type Target struct {
	Name   string
	Phases []BuildPhase
}

// DecodeTarget builds a Target from a map shaped like a decoded property
// list: a "name" string and a "buildPhases" list of phase maps. Only the
// "CopyFiles" phase type is understood; an unrecognized phase or a
// malformed entry fails the whole decode rather than silently dropping it,
// so callers can tell a fully-understood target apart from a partial one.
func DecodeTarget(m map[string]any) (Target, bool) {
	name, _ := m["name"].(string)
	if name == "" {
		return Target{}, false
	}

	t := Target{Name: name}

	rawPhases, _ := m["buildPhases"].([]any)
	for _, rp := range rawPhases {
		phaseMap, ok := rp.(map[string]any)
		if !ok {
			return Target{}, false
		}

		phase, ok := decodeBuildPhase(phaseMap)
		if !ok {
			return Target{}, false
		}

		t.Phases = append(t.Phases, phase)
	}

	return t, true
}

func decodeBuildPhase(m map[string]any) (BuildPhase, bool) {
	switch typ, _ := m["type"].(string); typ {
	case "CopyFiles":
		return decodeCopyFilesPhase(m)
	default:
		return nil, false
	}
}

func decodeCopyFilesPhase(m map[string]any) (BuildPhase, bool) {
	name, _ := m["name"].(string)
	if name == "" {
		name = "CopyFiles"
	}

	rawFiles, _ := m["files"].([]any)
	specs := make([]CopyFileSpec, 0, len(rawFiles))

	for _, rf := range rawFiles {
		fm, ok := rf.(map[string]any)
		if !ok {
			return nil, false
		}

		source, _ := fm["source"].(string)
		destination, _ := fm["destination"].(string)

		if source == "" || destination == "" {
			return nil, false
		}

		specs = append(specs, CopyFileSpec{Source: source, Destination: destination})
	}

	return &CopyFilesBuildPhase{PhaseName: name, Specs: specs}, true
}
