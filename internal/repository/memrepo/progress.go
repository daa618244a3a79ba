package memrepo

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
)

type progressRepository struct {
	db *DB
}

func (r *progressRepository) Create(ctx context.Context, progress *model.Progress) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	progress.ID = newID(progress.ID)
	progress.Touch(r.db.now())
	r.db.progresses[progress.ID] = cloneProgress(progress)
	r.db.progressOrder = append(r.db.progressOrder, progress.ID)
	return nil
}

func (r *progressRepository) FindByID(ctx context.Context, id string) (*model.Progress, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if p, ok := r.db.progresses[id]; ok {
		return cloneProgress(p), nil
	}
	return nil, repository.ErrNotFound
}

func (r *progressRepository) Update(ctx context.Context, progress *model.Progress) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.progresses[progress.ID]; !ok {
		return repository.ErrNotFound
	}
	progress.Touch(r.db.now())
	r.db.progresses[progress.ID] = cloneProgress(progress)
	return nil
}

func (r *progressRepository) filter(keep func(*model.Progress) bool) []model.Progress {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]model.Progress, 0)
	for _, id := range r.db.progressOrder {
		if p := r.db.progresses[id]; keep(p) {
			out = append(out, *cloneProgress(p))
		}
	}
	return out
}

// FindByUnitAndUser 同一用户同一单元可能有多条记录，返回最早的一条
func (r *progressRepository) FindByUnitAndUser(ctx context.Context, unitID, userID string) (*model.Progress, error) {
	found := r.filter(func(p *model.Progress) bool { return p.Unit == unitID && p.User == userID })
	if len(found) == 0 {
		return nil, repository.ErrNotFound
	}
	return &found[0], nil
}

func (r *progressRepository) ListByCourse(ctx context.Context, courseID string) ([]model.Progress, error) {
	return r.filter(func(p *model.Progress) bool { return p.Course == courseID }), nil
}

func (r *progressRepository) ListByCourseAndUser(ctx context.Context, courseID, userID string) ([]model.Progress, error) {
	return r.filter(func(p *model.Progress) bool { return p.Course == courseID && p.User == userID }), nil
}
