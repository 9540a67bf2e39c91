package cart

import (
	"path/filepath"
)

// Manager hands out session-scoped cart stores backed by per-session JSON
// files under dir. Each call constructs a fresh Store, which reloads the
// persisted cart; concurrent tabs on the same session are last-writer-wins.
type Manager struct {
	dir string
}

func NewManager(dataDir string) *Manager {
	return &Manager{dir: filepath.Join(dataDir, "carts")}
}

// ForSession returns the cart store for sessionID. The id must already be
// validated by the caller (the session middleware only issues UUIDs).
func (m *Manager) ForSession(sessionID string) *Store {
	return NewStore(NewFileStorage(filepath.Join(m.dir, sessionID+".json")))
}
