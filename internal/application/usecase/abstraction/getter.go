package abstraction

import (
	"context"

	"diary/internal/domain/model"
)

// Getter returns a diary to its owner only, public or not.
type Getter interface {
	GetOwned(ctx context.Context, uid, id string) (*model.Diary, error)
}
