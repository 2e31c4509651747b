package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Diary is a titled note owned by a single user. OwnerID is serialized as "user",
// which is also what the public listing shows as the author.
type Diary struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OwnerID   string             `bson:"user"          json:"user"`
	Title     string             `bson:"title"         json:"title"`
	Content   string             `bson:"content"       json:"content"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsPublic  bool               `bson:"isPublic"      json:"isPublic"`
	Analysis  Analysis           `bson:"aiAnalysis"    json:"aiAnalysis"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// Analysis is filled in by the external image analysis worker.
type Analysis struct {
	Species *string `bson:"species" json:"species"`
	Action  *string `bson:"action"  json:"action"`
}

// OwnedBy reports whether uid may privately view or mutate d.
func (d *Diary) OwnedBy(uid string) bool {
	return uid != "" && d.OwnerID == uid
}
