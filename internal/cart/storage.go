package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the durable key-value store backing one session's cart.
// Both operations are best-effort: the Store recovers from Load failures and
// tolerates Save failures.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStorage keeps the cart as a JSON document on disk, one file per
// session.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart file: %w", err)
	}
	return items, nil
}

func (f *FileStorage) Save(items []Item) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage used in tests and as a fallback when
// no durable medium is available.
type MemoryStorage struct {
	mu    sync.Mutex
	items []Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items, nil
}

func (m *MemoryStorage) Save(items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make([]Item, len(items))
	copy(m.items, items)
	return nil
}
