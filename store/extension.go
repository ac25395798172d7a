package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/metafates/gache"
	"github.com/panoshell/panoshell/filesystem"
	"github.com/panoshell/panoshell/util"
)

// ExtensionBackend is the durable namespaced storage: one gache file per namespace.
type ExtensionBackend struct {
	namespace string
	cache     *gache.Cache[map[string]any]
}

// NewExtensionBackend stores the root under dir/<namespace>.json.
func NewExtensionBackend(dir, namespace string) *ExtensionBackend {
	return &ExtensionBackend{
		namespace: namespace,
		cache: gache.New[map[string]any](
			&gache.Options{
				Path:       filepath.Join(dir, fileName(namespace)),
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

func (e *ExtensionBackend) Name() string {
	return "extension"
}

func (e *ExtensionBackend) Load(ctx context.Context) (Root, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, expired, err := e.cache.Get()
	if err != nil {
		return nil, fmt.Errorf("extension storage %s: %w", e.namespace, err)
	}
	if expired || data == nil {
		return Root{}, nil
	}
	return AsRoot(data), nil
}

func (e *ExtensionBackend) Save(ctx context.Context, root Root) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.cache.Set(root.plain()); err != nil {
		return fmt.Errorf("extension storage %s: %w", e.namespace, err)
	}
	return nil
}

func fileName(namespace string) string {
	return util.SanitizeFilename(namespace) + ".json"
}
