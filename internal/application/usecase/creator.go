package usecase

import (
	"context"

	"diary/internal/domain/apperr"
	"diary/internal/domain/dto"
	"diary/internal/domain/model"
	"diary/internal/domain/repository/broker"
	"diary/internal/domain/repository/database"
	"diary/internal/domain/repository/minio"
)

type Creator struct {
	writer        database.Writer
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	publisher     broker.Publisher
	maxUploadSize int64
}

func NewCreator(writer database.Writer, minioUploader minio.Uploader, minioRemover minio.Remover,
	publisher broker.Publisher, maxUploadSize int64,
) *Creator {
	return &Creator{
		writer:        writer,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		publisher:     publisher,
		maxUploadSize: maxUploadSize,
	}
}

// Create stores the image, then the record. If the record cannot be written the
// image is removed again before the error is returned.
func (c *Creator) Create(ctx context.Context, uid string, req dto.CreateDiary) (*model.Diary, error) {
	if err := requireText("title", req.Title); err != nil {
		return nil, err
	}
	if err := requireText("content", req.Content); err != nil {
		return nil, err
	}
	if err := validateUpload(req.Image, c.maxUploadSize); err != nil {
		return nil, err
	}

	var undo compensation

	result, err := c.minioUploader.UploadFile(ctx, uid, req.Image)
	if err != nil {
		return nil, blobError(err)
	}
	undo.register("remove uploaded image", func(ctx context.Context) error {
		return c.minioRemover.Remove(ctx, result.URL)
	})

	diary := &model.Diary{
		OwnerID:  uid,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: result.URL,
		IsPublic: req.IsPublic,
	}

	if err := c.writer.Write(ctx, diary); err != nil {
		undo.run(ctx)

		return nil, apperr.Unavailable("couldn't save diary", err)
	}

	requestAnalysis(ctx, c.publisher, diary)

	return diary, nil
}
