package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"diary/internal/domain/model"
)

type DiaryWriter struct {
	db *Database
}

func NewDiaryWriter(db *Database) *DiaryWriter {
	return &DiaryWriter{db: db}
}

func (w *DiaryWriter) Write(ctx context.Context, diary *model.Diary) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	// mongo keeps millisecond precision; truncate so the returned value matches reads.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := *diary
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := w.db.collection().InsertOne(ctx, &doc); err != nil {
		return err
	}

	*diary = doc

	return nil
}
