package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/panoshell/panoshell/filesystem"
	"github.com/panoshell/panoshell/log"
)

// Backend is a backing storage strategy holding the whole root in a single slot.
type Backend interface {
	Name() string
	Load(ctx context.Context) (Root, error)
	Save(ctx context.Context, root Root) error
}

// BackendMode chooses a backing strategy.
type BackendMode string

const (
	BackendAuto      BackendMode = "auto"
	BackendExtension BackendMode = "extension"
	BackendLocal     BackendMode = "local"
)

// BackendModes lists the accepted modes.
func BackendModes() []string {
	return []string{string(BackendAuto), string(BackendExtension), string(BackendLocal)}
}

// ParseBackendMode validates a configured backend mode.
func ParseBackendMode(s string) (BackendMode, error) {
	switch mode := BackendMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case BackendAuto, BackendExtension, BackendLocal:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown backend %q", s)
	}
}

// BackendOptions configures SelectBackend.
type BackendOptions struct {
	Mode      BackendMode
	Namespace string
	// StorageDir holds extension storage; it must be creatable for auto mode to pick it.
	StorageDir string
	// LocalPath is the file emulating the local-origin string store.
	LocalPath string
}

// SelectBackend prefers durable extension storage and falls back to the local string store.
func SelectBackend(opts BackendOptions) Backend {
	local := func() Backend {
		return NewLocalBackend(NewFileLocalStorage(opts.LocalPath), opts.Namespace)
	}

	switch opts.Mode {
	case BackendLocal:
		return local()
	case BackendExtension:
		return NewExtensionBackend(opts.StorageDir, opts.Namespace)
	}

	if err := filesystem.API().MkdirAll(opts.StorageDir, os.ModePerm); err != nil {
		log.Warnf("extension storage unavailable at %s, using local fallback: %v", opts.StorageDir, err)
		return local()
	}
	return NewExtensionBackend(opts.StorageDir, opts.Namespace)
}
