package usecase

import (
	"context"
	"time"

	"ruya/internal/domain/entity"
	"ruya/internal/domain/repository"
	"ruya/pkg/errors"
)

type CountdownUseCase struct {
	countdownRepo repository.CountdownRepository
}

func NewCountdownUseCase(countdownRepo repository.CountdownRepository) *CountdownUseCase {
	return &CountdownUseCase{
		countdownRepo: countdownRepo,
	}
}

func (uc *CountdownUseCase) GetCountdown(ctx context.Context) (entity.Countdown, error) {
	return uc.countdownRepo.Get(ctx)
}

func (uc *CountdownUseCase) UpdateCountdown(ctx context.Context, countdown entity.Countdown) (entity.Countdown, error) {
	if countdown.Title == "" {
		return entity.Countdown{}, errors.BadRequest("Title is required", nil)
	}
	if _, err := time.Parse("2006-01-02", countdown.TargetDate); err != nil {
		return entity.Countdown{}, errors.BadRequest("Invalid date format. Use YYYY-MM-DD", err)
	}
	if _, err := time.Parse("15:04", countdown.TargetTime); err != nil {
		return entity.Countdown{}, errors.BadRequest("Invalid time format. Use HH:MM", err)
	}

	if err := uc.countdownRepo.Save(ctx, countdown); err != nil {
		return entity.Countdown{}, err
	}
	return countdown, nil
}
