package usecase

import (
	"context"
	"errors"

	"diary/internal/domain/apperr"
	"diary/internal/domain/model"
	"diary/internal/domain/repository/database"
)

const (
	reasonNotFound  = "Diary not found"
	reasonForbidden = "Forbidden: You do not own this diary"
)

// authorize is the single ownership rule for private reads and all mutations.
func authorize(diary *model.Diary, uid string) error {
	if !diary.OwnedBy(uid) {
		return apperr.Forbidden(reasonForbidden)
	}

	return nil
}

// loadOwned fetches a diary and checks that uid owns it.
func loadOwned(ctx context.Context, retriever database.Retriever, uid, id string) (*model.Diary, error) {
	diary, err := retriever.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("failed to fetch diary", err)
	}

	if err := authorize(diary, uid); err != nil {
		return nil, err
	}

	return diary, nil
}

func storeError(reason string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return apperr.NotFound(reasonNotFound)
	}

	return apperr.Unavailable(reason, err)
}
