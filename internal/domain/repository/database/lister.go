package database

import (
	"context"

	"diary/internal/domain/model"
)

// Lister defines the interface for listing diaries, most recent first.
type Lister interface {
	GetByOwner(ctx context.Context, ownerID string) ([]model.Diary, error)
	GetPublic(ctx context.Context) ([]model.Diary, error)
}
