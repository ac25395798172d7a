package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/panoshell/panoshell/filesystem"
	"github.com/panoshell/panoshell/log"
	"github.com/samber/mo"
)

// LocalStorage is a synchronous string key/value store scoped to one origin.
type LocalStorage interface {
	GetItem(key string) (mo.Option[string], error)
	SetItem(key, value string) error
}

// FileLocalStorage keeps its items as a JSON object in a single file.
type FileLocalStorage struct {
	path string
	mu   sync.Mutex
}

func NewFileLocalStorage(path string) *FileLocalStorage {
	return &FileLocalStorage{path: path}
}

func (f *FileLocalStorage) items() (map[string]string, error) {
	items := make(map[string]string)
	data, err := filesystem.API().ReadFile(f.path)
	if os.IsNotExist(err) {
		return items, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileLocalStorage) GetItem(key string) (mo.Option[string], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.items()
	if err != nil {
		return mo.None[string](), err
	}
	if v, ok := items[key]; ok {
		return mo.Some(v), nil
	}
	return mo.None[string](), nil
}

func (f *FileLocalStorage) SetItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.items()
	if err != nil {
		// A corrupt file is replaced rather than blocking every later write.
		items = make(map[string]string)
	}
	items[key] = value

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := filesystem.API().MkdirAll(filepath.Dir(f.path), os.ModePerm); err != nil {
		return err
	}
	return filesystem.API().WriteFile(f.path, data, 0o644)
}

// LocalBackend stores the root JSON-encoded under a fixed namespace key.
// Read failures look like an empty root and write failures are dropped.
type LocalBackend struct {
	storage   LocalStorage
	namespace string
}

func NewLocalBackend(storage LocalStorage, namespace string) *LocalBackend {
	return &LocalBackend{storage: storage, namespace: namespace}
}

func (l *LocalBackend) Name() string {
	return "local"
}

func (l *LocalBackend) Load(_ context.Context) (Root, error) {
	item, err := l.storage.GetItem(l.namespace)
	if err != nil {
		log.Warnf("local storage read %s: %v", l.namespace, err)
		return Root{}, nil
	}
	return DecodeRoot([]byte(item.OrEmpty())), nil
}

func (l *LocalBackend) Save(_ context.Context, root Root) error {
	data, err := json.Marshal(root)
	if err != nil {
		log.Warnf("local storage encode %s: %v", l.namespace, err)
		return nil
	}
	if err := l.storage.SetItem(l.namespace, string(data)); err != nil {
		log.Warnf("local storage write %s: %v", l.namespace, err)
	}
	return nil
}
