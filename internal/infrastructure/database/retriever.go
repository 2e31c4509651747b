package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"diary/internal/domain/model"
	"diary/internal/domain/repository/database"
)

type DiaryRetriever struct {
	db *Database
}

func NewDiaryRetriever(db *Database) *DiaryRetriever {
	return &DiaryRetriever{db: db}
}

// GetByID returns database.ErrNotFound for unknown and malformed ids alike.
func (r *DiaryRetriever) GetByID(ctx context.Context, id string) (*model.Diary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var diary model.Diary
	err = r.db.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&diary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &diary, nil
}
