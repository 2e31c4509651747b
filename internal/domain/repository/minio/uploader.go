package minio

import (
	"context"
	"errors"

	"diary/internal/domain/dto"
	"diary/internal/domain/entity"
)

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Uploader stores an image under a fresh name and returns its public URL.
type Uploader interface {
	UploadFile(ctx context.Context, owner string, file *dto.Upload) (entity.UploadResult, error)
}
