package mongorepo

import (
	"context"
	"courseware_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type progressRepository struct {
	c *mongo.Collection
}

func (r *progressRepository) Create(ctx context.Context, progress *model.Progress) error {
	progress.ID = newID(progress.ID)
	progress.Touch(now())
	_, err := r.c.InsertOne(ctx, progress)
	return err
}

func (r *progressRepository) FindByID(ctx context.Context, id string) (*model.Progress, error) {
	var progress model.Progress
	if err := findOne(ctx, r.c, byID(id), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Update(ctx context.Context, progress *model.Progress) error {
	progress.Touch(now())
	return replace(ctx, r.c, progress.ID, progress)
}

func (r *progressRepository) FindByUnitAndUser(ctx context.Context, unitID, userID string) (*model.Progress, error) {
	var progress model.Progress
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if err := findOne(ctx, r.c, bson.M{"unit": unitID, "user": userID}, &progress, opts); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) list(ctx context.Context, filter bson.M) ([]model.Progress, error) {
	cursor, err := r.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []model.Progress{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *progressRepository) ListByCourse(ctx context.Context, courseID string) ([]model.Progress, error) {
	return r.list(ctx, bson.M{"course": courseID})
}

func (r *progressRepository) ListByCourseAndUser(ctx context.Context, courseID, userID string) ([]model.Progress, error) {
	return r.list(ctx, bson.M{"course": courseID, "user": userID})
}
