// Package vfs defines the filesystem contract shared by every backend
// (physical, in-memory) and every consumer (project model, driver, asset
// tooling). Consumers depend only on the [Filesystem] interface and never
// reach for host I/O directly; that seam is what makes in-memory-backed
// testing possible throughout the rest of the toolchain.
package vfs

// FileType tags the kind of entry a path resolves to. The zero value is
// [TypeAbsent], which expresses "no entry" or "no known type".
type FileType int

const (
	// TypeAbsent means the path does not exist, or names something that is
	// none of the three known kinds (device, socket, pipe, ...).
	TypeAbsent FileType = iota
	// TypeFile is a regular file.
	TypeFile
	// TypeSymbolicLink is a symbolic link; type queries describe the link
	// itself and never follow it.
	TypeSymbolicLink
	// TypeDirectory is a directory.
	TypeDirectory
)

// String renders the type for logging.
func (t FileType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeSymbolicLink:
		return "symbolic-link"
	case TypeDirectory:
		return "directory"
	default:
		return "absent"
	}
}

// Entry describes one name reported by [Filesystem.ReadDirectory].
type Entry struct {
	// Name is relative to the enumeration root and uses "/" as a separator;
	// it never begins with "/" and is never "." or "..".
	Name string
	Type FileType
}

// Filesystem is the capability every higher layer depends on. Every
// operation returns a binary success/failure indication (an "ok" bool, or
// for operations that return a value, such as Read, an "ok" alongside the
// value; Type reports [TypeAbsent] instead): this layer does not surface a
// structured error taxonomy to callers, and backends do not log.
type Filesystem interface {
	// Probes.
	Exists(path string) bool
	IsReadable(path string) bool
	IsWritable(path string) bool
	IsExecutable(path string) bool
	IsFile(path string) bool
	IsSymbolicLink(path string) bool
	IsDirectory(path string) bool
	Type(path string) FileType

	// File I/O.
	CreateFile(path string) bool
	Read(path string, offset int64, length int64, hasLength bool) ([]byte, bool)
	Write(contents []byte, path string) bool
	RemoveFile(path string) bool

	// Symbolic links.
	ReadSymbolicLink(path string) (string, bool)
	WriteSymbolicLink(target string, path string) bool
	RemoveSymbolicLink(path string) bool

	// Directories.
	CreateDirectory(path string, recursive bool) bool
	ReadDirectory(path string, recursive bool, cb func(name string)) bool
	RemoveDirectory(path string, recursive bool) bool

	// Copy.
	CopyFile(src, dst string) bool
	CopySymbolicLink(src, dst string) bool
	CopyDirectory(src, dst string) bool

	// Resolution.
	ResolvePath(path string) (string, bool)
}
