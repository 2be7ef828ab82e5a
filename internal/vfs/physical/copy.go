package physical

import (
	"encoding/hex"
	"io"

	"github.com/forgebuild/xcfs/internal/vfs"
	"github.com/zeebo/blake3"
)

// CopyFile attempts the platform's native bulk-copy facility first (see
// bulkCopyFile, split per-GOOS), verifies the result against a blake3
// digest of both files, and falls back to a plain read/write copy if either
// step fails.
func (b *Backend) CopyFile(src, dst string) bool {
	if b.Type(src) != vfs.TypeFile {
		return false
	}

	switch b.Type(dst) {
	case vfs.TypeFile, vfs.TypeAbsent:
	default:
		return false
	}

	if b.Type(dst) == vfs.TypeFile {
		if !b.RemoveFile(dst) {
			return false
		}
	}

	if bulkCopyFile(src, dst) && b.verifyCopy(src, dst) {
		return true
	}

	b.unix.Unlink(dst) //nolint:errcheck // best-effort cleanup before the fallback retries.

	return vfs.DefaultCopyFile(b, src, dst)
}

func (b *Backend) CopySymbolicLink(src, dst string) bool {
	return vfs.DefaultCopySymbolicLink(b, src, dst)
}

func (b *Backend) CopyDirectory(src, dst string) bool {
	return vfs.DefaultCopyDirectory(b, src, dst)
}

func (b *Backend) verifyCopy(src, dst string) bool {
	srcSum, ok := b.hashFile(src)
	if !ok {
		return false
	}

	dstSum, ok := b.hashFile(dst)
	if !ok {
		return false
	}

	return srcSum == dstSum
}

func (b *Backend) hashFile(path string) (string, bool) {
	f, err := b.os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", false
	}

	return hex.EncodeToString(h.Sum(nil)), true
}
