package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DiaryCollection = "diaries"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

// Connect opens a client, pings it and makes sure the diary collection exists.
func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetServerSelectionTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initDiaryCollection(db); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, err
	}

	return db, nil
}

func (db *Database) collection() *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(DiaryCollection)
}

func initDiaryCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": DiaryCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	nullableString := bson.M{"bsonType": []string{"string", "null"}}
	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"user", "title", "content", "isPublic", "createdAt", "updatedAt"},
			"properties": bson.M{
				"user": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"title": bson.M{
					"bsonType":    "string",
					"minLength":   1,
					"description": "title is required",
				},
				"content": bson.M{
					"bsonType":    "string",
					"minLength":   1,
					"description": "content is required",
				},
				"imageUrl": bson.M{"bsonType": "string"},
				"isPublic": bson.M{"bsonType": "bool"},
				"aiAnalysis": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"species": nullableString,
						"action":  nullableString,
					},
				},
				"createdAt": bson.M{"bsonType": "date"},
				"updatedAt": bson.M{"bsonType": "date"},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, DiaryCollection, collOpts)
	if err != nil {
		return err
	}

	_, err = db.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "isPublic", Value: 1}, {Key: "createdAt", Value: -1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
