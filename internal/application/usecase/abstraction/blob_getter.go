package abstraction

import (
	"context"
	"io"

	"diary/internal/domain/entity"
)

type BlobGetter interface {
	GetBlob(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error)
}
