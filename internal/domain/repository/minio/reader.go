package minio

import (
	"context"
	"errors"
	"io"

	"diary/internal/domain/entity"
)

var ErrBlobNotFound = errors.New("blob not found")

type Reader interface {
	Open(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error)
}
