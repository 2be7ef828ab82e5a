package physical

import (
	"os"

	"golang.org/x/sys/unix"
)

// File type bits out of unix.Stat_t.Mode, matching S_IFMT and friends. Kept
// local (rather than importing unix.S_IFDIR etc. at every call site) so the
// classification reads as one table.
const (
	modeTypeMask = unix.S_IFMT
	modeTypeDir  = unix.S_IFDIR
	modeTypeLnk  = unix.S_IFLNK
	modeTypeReg  = unix.S_IFREG
)

const (
	defaultFilePerm = 0o666
	defaultDirPerm  = 0o777
)

func (b *Backend) lstatMode(path string) (uint32, bool) {
	var stat unix.Stat_t

	if err := b.unix.Lstat(path, &stat); err != nil {
		return 0, false
	}

	return uint32(stat.Mode), true
}

// defaultFileMode and defaultDirMode apply the umask to the conventional
// 0666/0777 defaults by reading the process umask and immediately restoring
// it. This is inherently racy against concurrent goroutines that also touch
// the umask, a limitation documented rather than engineered around, since
// the umask is process-global POSIX state with no per-call override.
func defaultFileMode(u unixProvider) os.FileMode {
	old := u.Umask(0)
	u.Umask(old)

	return os.FileMode(defaultFilePerm &^ old)
}

func defaultDirMode(u unixProvider) os.FileMode {
	old := u.Umask(0)
	u.Umask(old)

	return os.FileMode(defaultDirPerm &^ old)
}
