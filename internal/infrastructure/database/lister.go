package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"diary/internal/domain/model"
)

type DiaryLister struct {
	db *Database
}

func NewDiaryLister(db *Database) *DiaryLister {
	return &DiaryLister{db: db}
}

func (l *DiaryLister) GetByOwner(ctx context.Context, ownerID string) ([]model.Diary, error) {
	return l.find(ctx, bson.M{"user": ownerID})
}

func (l *DiaryLister) GetPublic(ctx context.Context) ([]model.Diary, error) {
	return l.find(ctx, bson.M{"isPublic": true})
}

func (l *DiaryLister) find(ctx context.Context, filter bson.M) ([]model.Diary, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	// _id breaks ties between diaries written in the same millisecond.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := l.db.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	diaries := make([]model.Diary, 0)
	if err = cursor.All(ctx, &diaries); err != nil {
		return nil, err
	}

	return diaries, nil
}
