package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"diary/internal/domain/dto"
	"diary/internal/domain/model"
	"diary/internal/domain/repository/database"
)

type DiaryUpdater struct {
	db *Database
}

func NewDiaryUpdater(db *Database) *DiaryUpdater {
	return &DiaryUpdater{db: db}
}

// Update applies the non-nil fields of patch and returns the stored result.
func (u *DiaryUpdater) Update(ctx context.Context, id string, patch dto.DiaryPatch) (*model.Diary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.IsPublic != nil {
		set["isPublic"] = *patch.IsPublic
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.ResetAnalysis {
		set["aiAnalysis"] = model.Analysis{}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var diary model.Diary
	err = u.db.collection().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&diary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &diary, nil
}

// SetAnalysis stores the analysis of imageURL. A diary whose image was replaced
// since the request was published does not match and yields ErrNotFound.
func (u *DiaryUpdater) SetAnalysis(ctx context.Context, id, imageURL string, analysis model.Analysis) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	res, err := u.db.collection().UpdateOne(ctx, bson.M{"_id": oid, "imageUrl": imageURL}, bson.M{"$set": bson.M{
		"aiAnalysis": analysis,
		"updatedAt":  time.Now().UTC().Truncate(time.Millisecond),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}

	return nil
}
