package memrepo

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
)

type unitRepository struct {
	db *DB
}

func (r *unitRepository) Create(ctx context.Context, unit *model.Unit) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	unit.ID = newID(unit.ID)
	unit.Touch(r.db.now())
	r.db.units[unit.ID] = cloneUnit(unit)
	return nil
}

func (r *unitRepository) FindByID(ctx context.Context, id string) (*model.Unit, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if u, ok := r.db.units[id]; ok {
		return cloneUnit(u), nil
	}
	return nil, repository.ErrNotFound
}

func (r *unitRepository) Save(ctx context.Context, unit *model.Unit) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.units[unit.ID]; !ok {
		return repository.ErrNotFound
	}
	unit.Touch(r.db.now())
	r.db.units[unit.ID] = cloneUnit(unit)
	return nil
}
