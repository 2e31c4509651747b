package database

import (
	"context"

	"diary/internal/domain/model"
)

// Writer inserts a new diary, filling in its ID and timestamps.
type Writer interface {
	Write(ctx context.Context, diary *model.Diary) error
}
