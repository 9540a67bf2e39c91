package handler

import (
	"github.com/labstack/echo/v4"

	"ruya/internal/domain/entity"
	"ruya/internal/usecase"
	"ruya/pkg/errors"
	"ruya/pkg/response"
)

type CountdownHandler struct {
	countdownUseCase *usecase.CountdownUseCase
}

func NewCountdownHandler(countdownUseCase *usecase.CountdownUseCase) *CountdownHandler {
	return &CountdownHandler{
		countdownUseCase: countdownUseCase,
	}
}

type countdownRequest struct {
	Title      string `json:"title" validate:"required"`
	TargetDate string `json:"target_date" validate:"required"`
	TargetTime string `json:"target_time" validate:"required"`
	Visible    bool   `json:"visible"`
}

func (h *CountdownHandler) GetCountdown(c echo.Context) error {
	countdown, err := h.countdownUseCase.GetCountdown(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, countdown)
}

func (h *CountdownHandler) UpdateCountdown(c echo.Context) error {
	var req countdownRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	countdown, err := h.countdownUseCase.UpdateCountdown(c.Request().Context(), entity.Countdown{
		Title:      req.Title,
		TargetDate: req.TargetDate,
		TargetTime: req.TargetTime,
		Visible:    req.Visible,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, countdown)
}
