package minio

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"
)

type Remover struct {
	client *Client
	cfg    RemoverConfig
}

func NewRemover(client *Client, cfg RemoverConfig) *Remover {
	return &Remover{
		client: client,
		cfg:    cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, url string) error {
	object, err := r.client.ObjectName(url)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err = r.client.MinioClient.RemoveObject(ctx, r.client.Bucket, object, minio.RemoveObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			logger.Warn("blob already gone", "object", object)

			return nil
		}

		return err
	}

	return nil
}
