package minio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var errMalformedURL = errors.New("blob url does not belong to this store")

type Client struct {
	MinioClient *minio.Client
	Bucket      string
	BaseURL     string
}

// New builds the client and makes sure the configured bucket exists.
func New(cfg ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Millisecond)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &Client{
		MinioClient: client,
		Bucket:      cfg.Bucket,
		BaseURL:     strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// URL is the public address of an object.
func (c *Client) URL(object string) string {
	return c.BaseURL + "/" + object
}

// ObjectName maps a public URL back to the object it was built from.
func (c *Client) ObjectName(url string) (string, error) {
	name, ok := strings.CutPrefix(url, c.BaseURL+"/")
	if !ok || !validObjectName(name) {
		return "", errMalformedURL
	}

	return name, nil
}

func validObjectName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, "/\\")
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
