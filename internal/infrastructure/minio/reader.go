package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"diary/internal/domain/entity"
	minioRepository "diary/internal/domain/repository/minio"
)

type Reader struct {
	client *Client
	cfg    ReaderConfig
}

func NewReader(client *Client, cfg ReaderConfig) *Reader {
	return &Reader{
		client: client,
		cfg:    cfg,
	}
}

// Open returns the object body. The timeout covers the whole read and is
// released when the returned reader is closed.
func (r *Reader) Open(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error) {
	if !validObjectName(name) {
		return nil, entity.BlobInfo{}, minioRepository.ErrBlobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)

	stat, err := r.client.MinioClient.StatObject(ctx, r.client.Bucket, name, minio.StatObjectOptions{})
	if err != nil {
		cancel()
		if isNoSuchKey(err) {
			return nil, entity.BlobInfo{}, minioRepository.ErrBlobNotFound
		}

		return nil, entity.BlobInfo{}, err
	}

	object, err := r.client.MinioClient.GetObject(ctx, r.client.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		cancel()

		return nil, entity.BlobInfo{}, err
	}

	return &objectReader{Object: object, cancel: cancel}, entity.BlobInfo{
		Type: stat.ContentType,
		Size: stat.Size,
	}, nil
}

type objectReader struct {
	*minio.Object
	cancel context.CancelFunc
}

func (o *objectReader) Close() error {
	defer o.cancel()

	return o.Object.Close()
}
