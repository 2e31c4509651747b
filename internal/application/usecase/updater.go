package usecase

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"

	"diary/internal/domain/dto"
	"diary/internal/domain/model"
	"diary/internal/domain/repository/broker"
	"diary/internal/domain/repository/database"
	"diary/internal/domain/repository/minio"
)

type Updater struct {
	retriever     database.Retriever
	updater       database.Updater
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	publisher     broker.Publisher
	maxUploadSize int64
}

func NewUpdater(retriever database.Retriever, updater database.Updater, minioUploader minio.Uploader,
	minioRemover minio.Remover, publisher broker.Publisher, maxUploadSize int64,
) *Updater {
	return &Updater{
		retriever:     retriever,
		updater:       updater,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		publisher:     publisher,
		maxUploadSize: maxUploadSize,
	}
}

// Update applies only the supplied fields. A replacement image is stored before
// the record is repointed; the superseded image is removed once the record update
// has committed.
func (u *Updater) Update(ctx context.Context, uid, id string, req dto.UpdateDiary) (*model.Diary, error) {
	current, err := loadOwned(ctx, u.retriever, uid, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := requireText("title", *req.Title); err != nil {
			return nil, err
		}
	}
	if req.Content != nil {
		if err := requireText("content", *req.Content); err != nil {
			return nil, err
		}
	}
	if req.Image != nil {
		if err := validateUpload(req.Image, u.maxUploadSize); err != nil {
			return nil, err
		}
	}

	patch := dto.DiaryPatch{
		Title:    req.Title,
		Content:  req.Content,
		IsPublic: req.IsPublic,
	}

	var undo compensation

	if req.Image != nil {
		result, err := u.minioUploader.UploadFile(ctx, uid, req.Image)
		if err != nil {
			return nil, blobError(err)
		}
		undo.register("remove replacement image", func(ctx context.Context) error {
			return u.minioRemover.Remove(ctx, result.URL)
		})

		patch.ImageURL = &result.URL
		patch.ResetAnalysis = true
	}

	updated, err := u.updater.Update(ctx, id, patch)
	if err != nil {
		undo.run(ctx)

		return nil, storeError("Error updating diary", err)
	}

	if req.Image != nil {
		if current.ImageURL != "" && current.ImageURL != updated.ImageURL {
			if err := u.minioRemover.Remove(context.WithoutCancel(ctx), current.ImageURL); err != nil {
				logger.Error("failed to remove superseded image", "diary", id, "url", current.ImageURL, "err", err)
			}
		}

		requestAnalysis(ctx, u.publisher, updated)
	}

	return updated, nil
}
