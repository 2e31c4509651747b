package usecase

import (
	"errors"
	"fmt"
	"strings"

	"diary/internal/domain/apperr"
	"diary/internal/domain/dto"
	minioRepository "diary/internal/domain/repository/minio"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Validation(field + " is required")
	}

	return nil
}

func validateUpload(upload *dto.Upload, maxSize int64) error {
	if upload == nil || upload.Body == nil {
		return apperr.Validation("image file is required")
	}

	if maxSize > 0 && upload.Size > maxSize {
		return apperr.Validation(fmt.Sprintf("image exceeds the %d byte limit", maxSize))
	}

	return nil
}

func blobError(err error) error {
	if errors.Is(err, minioRepository.ErrEmptyFile) {
		return apperr.Validation("image file is empty")
	}

	if errors.Is(err, minioRepository.ErrUnsupportedType) {
		return apperr.Validation("image file must be an image")
	}

	return apperr.Unavailable("failed to store image", err)
}
