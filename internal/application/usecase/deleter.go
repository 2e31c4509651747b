package usecase

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"

	"diary/internal/domain/apperr"
	"diary/internal/domain/repository/database"
	"diary/internal/domain/repository/minio"
)

// Deleter implements the Deleter abstraction.
type Deleter struct {
	dbRetriever  database.Retriever
	dbRemover    database.Remover
	minioRemover minio.Remover
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(dbRetriever database.Retriever, dbRemover database.Remover, minioRemover minio.Remover) *Deleter {
	return &Deleter{
		dbRetriever:  dbRetriever,
		dbRemover:    dbRemover,
		minioRemover: minioRemover,
	}
}

// Delete removes the record first. Removing the image afterwards is best effort:
// a failure is logged and never turns a successful delete into an error.
func (d *Deleter) Delete(ctx context.Context, uid, id string) error {
	diary, err := loadOwned(ctx, d.dbRetriever, uid, id)
	if err != nil {
		return err
	}

	if err := d.dbRemover.RemoveByID(ctx, id); err != nil {
		return apperr.Unavailable("Error deleting diary", err)
	}

	if diary.ImageURL != "" {
		if err := d.minioRemover.Remove(context.WithoutCancel(ctx), diary.ImageURL); err != nil {
			logger.Error("failed to remove image of deleted diary", "diary", id, "url", diary.ImageURL, "err", err)
		}
	}

	return nil
}
