// Package mongorepo MongoDB 文档存储实现，ID 为 ObjectID 的十六进制字符串
package mongorepo

import (
	"context"
	"courseware_backend/internal/repository"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection      = "users"
	coursesCollection    = "courses"
	lecturesCollection   = "lectures"
	unitsCollection      = "units"
	progressesCollection = "progresses"
)

func New(db *mongo.Database) *repository.Repositories {
	return &repository.Repositories{
		User:     &userRepository{c: db.Collection(usersCollection)},
		Course:   &courseRepository{c: db.Collection(coursesCollection)},
		Lecture:  &lectureRepository{c: db.Collection(lecturesCollection)},
		Unit:     &unitRepository{c: db.Collection(unitsCollection)},
		Progress: &progressRepository{c: db.Collection(progressesCollection)},
	}
}

// EnsureIndexes 启动时创建查询用索引
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(progressesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "unit", Value: 1}, {Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "course", Value: 1}, {Key: "user", Value: 1}}},
	})
	return err
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return primitive.NewObjectID().Hex()
}

func byID(id string) bson.M {
	return bson.M{"_id": id}
}

func now() time.Time {
	// Mongo 只保存毫秒精度
	return time.Now().UTC().Truncate(time.Millisecond)
}

func findOne(ctx context.Context, c *mongo.Collection, filter interface{}, out interface{}, opts ...*options.FindOneOptions) error {
	err := c.FindOne(ctx, filter, opts...).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

func replace(ctx context.Context, c *mongo.Collection, id string, doc interface{}) error {
	res, err := c.ReplaceOne(ctx, byID(id), doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
