package service_test

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/service"
	"courseware_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDeadline(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	units := service.NewUnitService(e.repos)
	teacher := service.Actor{UserID: e.set.Teacher.ID, Role: model.Teacher}

	got, err := units.SetDeadline(ctx, teacher, e.set.CodeKata.ID, at(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(now.Add(time.Hour)))

	cleared, err := units.SetDeadline(ctx, teacher, e.set.CodeKata.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.Deadline)

	stored, err := units.Get(ctx, e.set.CodeKata.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Deadline)

	_, err = units.SetDeadline(ctx, e.student(), e.set.CodeKata.ID, at(time.Hour))
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = units.SetDeadline(ctx, teacher, "missing", at(time.Hour))
	assert.ErrorIs(t, err, util.ErrUnitNotFound)
}

func TestSetDeadlineDanglingLecture(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	orphan := &model.Unit{LectureID: "deleted-lecture", Name: "orphan", Type: model.UnitCodeKata, Progressable: true}
	require.NoError(t, e.repos.Unit.Create(ctx, orphan))

	units := service.NewUnitService(e.repos)
	admin := service.Actor{UserID: e.set.Admin.ID, Role: model.Admin}
	_, err := units.SetDeadline(ctx, admin, orphan.ID, at(time.Hour))
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	status, _, ok := util.Classify(err)
	require.True(t, ok)
	assert.Equal(t, 404, status)
}
