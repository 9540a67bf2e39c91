package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"ruya/internal/usecase"
	"ruya/pkg/errors"
	"ruya/pkg/logger"
	"ruya/pkg/response"
)

type UploadHandler struct {
	uploadUseCase *usecase.UploadUseCase
	maxFileSize   int64
}

var uploadHandler *UploadHandler

func NewUploadHandler(uploadUseCase *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		maxFileSize:   5 * 1024 * 1024,
	}
}

func SetupUploadHandler(uploadUseCase *usecase.UploadUseCase) {
	uploadHandler = NewUploadHandler(uploadUseCase)
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

// UploadImage accepts a product image from a multipart form and returns the
// public URL where the image was stored.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image", err))
	}

	if file.Size > h.maxFileSize {
		logger.Warn("Rejected upload of %d bytes (max %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.uploadUseCase.UploadImage(c.Request().Context(), src, fileType)
	if err != nil {
		logger.Error("Image upload failed: %v", err)
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
