package memrepo

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"errors"
)

var errEmailTaken = errors.New("email already registered")

type userRepository struct {
	db *DB
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == user.Email {
			return errEmailTaken
		}
	}
	user.ID = newID(user.ID)
	user.Touch(r.db.now())
	cp := *user
	r.db.users[user.ID] = &cp
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if u, ok := r.db.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.db.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}
