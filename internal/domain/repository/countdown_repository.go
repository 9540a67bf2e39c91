package repository

import (
	"context"

	"ruya/internal/domain/entity"
)

type CountdownRepository interface {
	Get(ctx context.Context) (entity.Countdown, error)
	Save(ctx context.Context, countdown entity.Countdown) error
}
