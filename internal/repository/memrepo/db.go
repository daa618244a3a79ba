// Package memrepo 内存存储，用于测试和本地无数据库运行
package memrepo

import (
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"maps"
	"slices"
	"sync"
	"time"
)

type DB struct {
	mu         sync.RWMutex
	users      map[string]*model.User
	courses    map[string]*model.Course
	lectures   map[string]*model.Lecture
	units      map[string]*model.Unit
	progresses map[string]*model.Progress
	// 插入顺序，列表查询按此返回
	progressOrder []string

	now func() time.Time
}

func Open() *DB {
	return &DB{
		users:      make(map[string]*model.User),
		courses:    make(map[string]*model.Course),
		lectures:   make(map[string]*model.Lecture),
		units:      make(map[string]*model.Unit),
		progresses: make(map[string]*model.Progress),
		now:        time.Now,
	}
}

// Repositories 返回共享同一个 DB 的全部仓储
func (db *DB) Repositories() *repository.Repositories {
	return &repository.Repositories{
		User:     &userRepository{db: db},
		Course:   &courseRepository{db: db},
		Lecture:  &lectureRepository{db: db},
		Unit:     &unitRepository{db: db},
		Progress: &progressRepository{db: db},
	}
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return model.GenerateUUID()
}

func cloneCourse(c *model.Course) *model.Course {
	cp := *c
	cp.Students = slices.Clone(c.Students)
	return &cp
}

func cloneUnit(u *model.Unit) *model.Unit {
	cp := *u
	if u.Deadline != nil {
		d := *u.Deadline
		cp.Deadline = &d
	}
	return &cp
}

func cloneProgress(p *model.Progress) *model.Progress {
	cp := *p
	cp.Answers = maps.Clone(p.Answers)
	return &cp
}
