package usecase

import (
	"context"
	"errors"
	"io"

	"diary/internal/domain/apperr"
	"diary/internal/domain/entity"
	"diary/internal/domain/repository/minio"
)

type BlobGetter struct {
	reader minio.Reader
}

func NewBlobGetter(reader minio.Reader) *BlobGetter {
	return &BlobGetter{
		reader: reader,
	}
}

func (g *BlobGetter) GetBlob(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error) {
	body, info, err := g.reader.Open(ctx, name)
	if errors.Is(err, minio.ErrBlobNotFound) {
		return nil, entity.BlobInfo{}, apperr.NotFound("blob not found")
	}
	if err != nil {
		return nil, entity.BlobInfo{}, apperr.Unavailable("failed to read blob", err)
	}

	return body, info, nil
}
