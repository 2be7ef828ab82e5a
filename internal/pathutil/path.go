// Package pathutil provides pure, filesystem-independent operations over
// slash-separated path strings: normalization, splitting, joining, and the
// absolute-path check. Nothing in this package touches the host filesystem.
package pathutil

import "strings"

const separator = "/"

// Normalize collapses repeated separators and resolves "." and ".." segments
// lexically. It never consults the filesystem. An absolute path cannot be
// resolved above root: a leading ".." is discarded rather than propagated.
// Normalize returns "" for an empty input.
func Normalize(path string) string {
	if path == "" {
		return ""
	}

	absolute := strings.HasPrefix(path, separator)

	segments := strings.Split(path, separator)
	out := make([]string, 0, len(segments))

	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
			} else if !absolute {
				out = append(out, seg)
			}
			// Absolute paths silently discard a ".." that would ascend above root.
		default:
			out = append(out, seg)
		}
	}

	joined := strings.Join(out, separator)

	switch {
	case absolute:
		return separator + joined
	case joined == "":
		return "."
	default:
		return joined
	}
}

// GetDirectoryName returns the longest prefix of path before its final
// separator, or "" if path contains no separator. When the only separator
// is the leading one ("/foo", "/"), it returns "/".
func GetDirectoryName(path string) string {
	idx := strings.LastIndex(path, separator)
	if idx < 0 {
		return ""
	}
	if idx == 0 {
		return separator
	}

	return path[:idx]
}

// GetBaseName returns the suffix of path after its final separator, or the
// whole input if path contains no separator.
func GetBaseName(path string) string {
	idx := strings.LastIndex(path, separator)
	if idx < 0 {
		return path
	}

	return path[idx+1:]
}

// IsAbsolute reports whether path begins with a separator.
func IsAbsolute(path string) bool {
	return strings.HasPrefix(path, separator)
}

// Join concatenates base with the given components using the separator,
// then normalizes the result.
func Join(base string, components ...string) string {
	parts := make([]string, 0, len(components)+1)
	parts = append(parts, strings.TrimSuffix(base, separator))
	parts = append(parts, components...)

	return Normalize(strings.Join(parts, separator))
}

// Split breaks a normalized absolute path into its non-empty components.
func Split(path string) []string {
	trimmed := strings.Trim(path, separator)
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, separator)
}
