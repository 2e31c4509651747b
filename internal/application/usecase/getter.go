package usecase

import (
	"context"

	"diary/internal/domain/model"
	"diary/internal/domain/repository/database"
)

// Getter implements the Getter abstraction for the owner view of a diary.
type Getter struct {
	retriever database.Retriever
}

// NewGetter creates a new Getter usecase.
func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{
		retriever: retriever,
	}
}

// GetOwned does not special-case public diaries: this view feeds the edit form.
func (g *Getter) GetOwned(ctx context.Context, uid, id string) (*model.Diary, error) {
	return loadOwned(ctx, g.retriever, uid, id)
}
