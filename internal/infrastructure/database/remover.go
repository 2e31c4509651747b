package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DiaryRemover struct {
	db *Database
}

func NewDiaryRemover(db *Database) *DiaryRemover {
	return &DiaryRemover{db: db}
}

// RemoveByID deletes the diary if it exists; removing an absent id is a no-op.
func (r *DiaryRemover) RemoveByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil //nolint
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	_, err = r.db.collection().DeleteOne(ctx, bson.M{"_id": oid})

	return err
}
