package usecase

import (
	"context"
	"io"

	"ruya/pkg/errors"
)

// ImageStorage abstracts the bucket client so handlers can be tested without
// touching real cloud storage.
type ImageStorage interface {
	UploadFile(ctx context.Context, file io.Reader, fileType string) (string, error)
}

type UploadUseCase struct {
	storage ImageStorage
}

func NewUploadUseCase(storage ImageStorage) *UploadUseCase {
	return &UploadUseCase{
		storage: storage,
	}
}

// UploadImage stores an image and returns its public URL. When no storage
// backend is configured the endpoint degrades to a clear error instead of a
// panic at startup.
func (uc *UploadUseCase) UploadImage(ctx context.Context, file io.Reader, fileType string) (string, error) {
	if uc.storage == nil {
		return "", errors.Internal("Image storage is not configured", nil)
	}

	url, err := uc.storage.UploadFile(ctx, file, fileType)
	if err != nil {
		return "", errors.Internal("Failed to upload image", err)
	}
	return url, nil
}
