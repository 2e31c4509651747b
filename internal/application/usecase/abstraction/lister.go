package abstraction

import (
	"context"

	"diary/internal/domain/model"
)

// Lister returns diaries most recent first.
type Lister interface {
	ListOwned(ctx context.Context, uid string) ([]model.Diary, error)
	ListPublic(ctx context.Context) ([]model.Diary, error)
}
