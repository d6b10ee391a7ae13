package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collCourses = "courses"
	collUsers   = "users"
)

// EnsureMongoIndexes 唯一索引兜底「先查后插」的并发竞争
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}
	if _, err := db.Collection(collCourses).Indexes().CreateOne(ctx, unique("name")); err != nil {
		return err
	}
	_, err := db.Collection(collUsers).Indexes().CreateOne(ctx, unique("email"))
	return err
}
