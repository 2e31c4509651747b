package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"diary/internal/domain/dto"
	"diary/internal/domain/entity"
	minioRepository "diary/internal/domain/repository/minio"
	"diary/pkg/utils"
)

// sniffLen is how many leading bytes are inspected to detect the content type.
const sniffLen = 3072

type Uploader struct {
	client *Client
	cfg    UploaderConfig
}

func NewUploader(client *Client, cfg UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

func (u *Uploader) UploadFile(ctx context.Context, owner string, file *dto.Upload) (entity.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return entity.UploadResult{}, fmt.Errorf("read error: %w", err)
	}
	if n == 0 {
		return entity.UploadResult{}, minioRepository.ErrEmptyFile
	}
	head = head[:n]

	detectedMIME := mimetype.Detect(head).String()
	// svg is markup and would be served from our own origin.
	if !strings.HasPrefix(detectedMIME, "image/") || detectedMIME == "image/svg+xml" {
		return entity.UploadResult{}, fmt.Errorf("%w: %s", minioRepository.ErrUnsupportedType, detectedMIME)
	}

	size := file.Size
	if size <= 0 {
		size = -1
	}

	object := objectName(owner, file.Filename, detectedMIME)
	info, err := u.client.MinioClient.PutObject(ctx, u.client.Bucket, object,
		io.MultiReader(bytes.NewReader(head), file.Body), size,
		minio.PutObjectOptions{
			ContentType: detectedMIME,
		})
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("put object: %w", err)
	}

	return entity.UploadResult{
		URL:    u.client.URL(object),
		Object: object,
		Bucket: u.client.Bucket,
		Type:   detectedMIME,
		Size:   info.Size,
	}, nil
}

// objectName is <owner>-<unix millis>-<uuid><ext>.
func objectName(owner, filename, mimeType string) string {
	return fmt.Sprintf("%s-%d-%s%s", safeOwner(owner), time.Now().UnixMilli(), uuid.NewString(),
		utils.FileExtension(filename, mimeType))
}

func safeOwner(owner string) string {
	var b strings.Builder
	for _, r := range owner {
		if r == '-' || r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "anonymous"
	}

	return b.String()
}
