package memrepo

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"slices"
)

type courseRepository struct {
	db *DB
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	course.ID = newID(course.ID)
	course.Touch(r.db.now())
	r.db.courses[course.ID] = cloneCourse(course)
	return nil
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if c, ok := r.db.courses[id]; ok {
		return cloneCourse(c), nil
	}
	return nil, repository.ErrNotFound
}

func (r *courseRepository) AddStudent(ctx context.Context, courseID, userID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.courses[courseID]
	if !ok {
		return repository.ErrNotFound
	}
	if !slices.Contains(c.Students, userID) {
		c.Students = append(c.Students, userID)
		c.UpdatedAt = r.db.now()
	}
	return nil
}

func (r *courseRepository) RemoveStudent(ctx context.Context, courseID, userID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.courses[courseID]
	if !ok {
		return repository.ErrNotFound
	}
	c.Students = slices.DeleteFunc(c.Students, func(id string) bool { return id == userID })
	c.UpdatedAt = r.db.now()
	return nil
}

type lectureRepository struct {
	db *DB
}

func (r *lectureRepository) Create(ctx context.Context, lecture *model.Lecture) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	lecture.ID = newID(lecture.ID)
	lecture.Touch(r.db.now())
	cp := *lecture
	r.db.lectures[lecture.ID] = &cp
	return nil
}

func (r *lectureRepository) FindByID(ctx context.Context, id string) (*model.Lecture, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if l, ok := r.db.lectures[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}
