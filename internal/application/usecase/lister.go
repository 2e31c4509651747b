package usecase

import (
	"context"

	"diary/internal/domain/apperr"
	"diary/internal/domain/model"
	"diary/internal/domain/repository/database"
)

// Lister implements the Lister abstraction for the owner and public listings.
type Lister struct {
	lister database.Lister
}

// NewLister creates a new Lister usecase.
func NewLister(lister database.Lister) *Lister {
	return &Lister{
		lister: lister,
	}
}

func (l *Lister) ListOwned(ctx context.Context, uid string) ([]model.Diary, error) {
	diaries, err := l.lister.GetByOwner(ctx, uid)
	if err != nil {
		return nil, apperr.Unavailable("Error fetching diaries", err)
	}

	return diaries, nil
}

func (l *Lister) ListPublic(ctx context.Context) ([]model.Diary, error) {
	diaries, err := l.lister.GetPublic(ctx)
	if err != nil {
		return nil, apperr.Unavailable("Error fetching public diaries", err)
	}

	return diaries, nil
}
