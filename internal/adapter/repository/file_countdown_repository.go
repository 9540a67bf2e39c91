package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ruya/internal/domain/entity"
	"ruya/internal/domain/repository"
	apperrors "ruya/pkg/errors"
)

// fileCountdownRepository keeps the countdown settings as a small JSON
// document on disk. A missing file yields the default countdown.
type fileCountdownRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileCountdownRepository(dataDir string) repository.CountdownRepository {
	return &fileCountdownRepository{path: filepath.Join(dataDir, "countdown.json")}
}

func (r *fileCountdownRepository) Get(ctx context.Context) (entity.Countdown, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entity.DefaultCountdown(), nil
		}
		return entity.Countdown{}, apperrors.Internal("Failed to read countdown settings", err)
	}

	var countdown entity.Countdown
	if err := json.Unmarshal(data, &countdown); err != nil {
		return entity.Countdown{}, apperrors.Internal("Failed to decode countdown settings", err)
	}
	return countdown, nil
}

func (r *fileCountdownRepository) Save(ctx context.Context, countdown entity.Countdown) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return apperrors.Internal("Failed to create data dir", fmt.Errorf("mkdir: %w", err))
	}

	data, err := json.MarshalIndent(countdown, "", "  ")
	if err != nil {
		return apperrors.Internal("Failed to encode countdown settings", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return apperrors.Internal("Failed to write countdown settings", err)
	}
	return nil
}
