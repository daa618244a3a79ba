package mongorepo

import (
	"context"
	"courseware_backend/internal/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type unitRepository struct {
	c *mongo.Collection
}

func (r *unitRepository) Create(ctx context.Context, unit *model.Unit) error {
	unit.ID = newID(unit.ID)
	unit.Touch(now())
	_, err := r.c.InsertOne(ctx, unit)
	return err
}

func (r *unitRepository) FindByID(ctx context.Context, id string) (*model.Unit, error) {
	var unit model.Unit
	if err := findOne(ctx, r.c, byID(id), &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) Save(ctx context.Context, unit *model.Unit) error {
	unit.Touch(now())
	return replace(ctx, r.c, unit.ID, unit)
}
