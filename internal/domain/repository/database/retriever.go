package database

import (
	"context"
	"errors"

	"diary/internal/domain/model"
)

// ErrNotFound is returned when no diary matches the given id.
var ErrNotFound = errors.New("diary not found")

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Diary, error)
}
