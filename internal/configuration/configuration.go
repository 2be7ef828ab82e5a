// Package configuration reads driver-level overrides from an optional
// .env file, layered under compiled-in defaults.
package configuration

import (
	"errors"
	"os"
)

const (
	// KeyDestRoot overrides the bundle assembly destination.
	KeyDestRoot = "XCFS_DEST_ROOT"
	// KeySDKRoot overrides the SDK search root.
	KeySDKRoot = "XCFS_SDK_ROOT"
)

const (
	defaultDestRoot = "./build"
	defaultSDKRoot  = "/usr/share/xcfs/sdk"
)

// Handler resolves configuration keys against an env map read from disk,
// falling back to compiled-in defaults when a key is absent.
type Handler struct {
	provider genericProvider
	env      map[string]string
}

// NewHandler returns a Handler backed by a real .env reader.
func NewHandler() *Handler {
	return &Handler{provider: &godotenvProvider{}}
}

// Load reads filenames (in order; later files override earlier ones) into
// the handler's environment. A missing file is not an error: it just
// leaves the defaults in place.
func (h *Handler) Load(filenames ...string) error {
	env, err := h.provider.Read(filenames...)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	h.env = env

	return nil
}

func (h *Handler) lookup(key, fallback string) string {
	if v, ok := h.env[key]; ok && v != "" {
		return v
	}

	return fallback
}

// DestRoot returns the configured bundle assembly destination root.
func (h *Handler) DestRoot() string {
	return h.lookup(KeyDestRoot, defaultDestRoot)
}

// SDKRoot returns the configured SDK search root.
func (h *Handler) SDKRoot() string {
	return h.lookup(KeySDKRoot, defaultSDKRoot)
}
