package mongorepo

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type courseRepository struct {
	c *mongo.Collection
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	course.ID = newID(course.ID)
	course.Touch(now())
	if course.Students == nil {
		course.Students = []string{}
	}
	_, err := r.c.InsertOne(ctx, course)
	return err
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := findOne(ctx, r.c, byID(id), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) updateStudents(ctx context.Context, courseID string, op bson.M) error {
	op["$set"] = bson.M{"updatedAt": now()}
	res, err := r.c.UpdateOne(ctx, byID(courseID), op)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *courseRepository) AddStudent(ctx context.Context, courseID, userID string) error {
	return r.updateStudents(ctx, courseID, bson.M{"$addToSet": bson.M{"students": userID}})
}

func (r *courseRepository) RemoveStudent(ctx context.Context, courseID, userID string) error {
	return r.updateStudents(ctx, courseID, bson.M{"$pull": bson.M{"students": userID}})
}

type lectureRepository struct {
	c *mongo.Collection
}

func (r *lectureRepository) Create(ctx context.Context, lecture *model.Lecture) error {
	lecture.ID = newID(lecture.ID)
	lecture.Touch(now())
	_, err := r.c.InsertOne(ctx, lecture)
	return err
}

func (r *lectureRepository) FindByID(ctx context.Context, id string) (*model.Lecture, error) {
	var lecture model.Lecture
	if err := findOne(ctx, r.c, byID(id), &lecture); err != nil {
		return nil, err
	}
	return &lecture, nil
}
