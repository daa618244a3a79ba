package service_test

import (
	"context"
	"courseware_backend/internal/config"
	"courseware_backend/internal/model"
	"courseware_backend/internal/service"
	"courseware_backend/internal/util"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T, e *env) (*service.CourseService, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := service.NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: dir})
	require.NoError(t, err)
	return service.NewCourseService(e.repos, storage), dir
}

func TestCourseStudentsManagement(t *testing.T) {
	e := setup(t)
	svc, _ := newCourseService(t, e)
	ctx := context.Background()
	teacher := service.Actor{UserID: e.set.Teacher.ID, Role: model.Teacher}

	students, err := svc.ListStudents(ctx, teacher, e.set.Course.ID)
	require.NoError(t, err)
	assert.Len(t, students, 2)

	_, err = svc.ListStudents(ctx, e.student(), e.set.Course.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	require.NoError(t, svc.AddStudent(ctx, teacher, e.set.Course.ID, e.set.Outsider.ID))
	err = svc.AddStudent(ctx, teacher, e.set.Course.ID, e.set.Teacher.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	err = svc.AddStudent(ctx, teacher, e.set.Course.ID, "missing")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	require.NoError(t, svc.RemoveStudent(ctx, teacher, e.set.Course.ID, e.set.OtherStudent.ID))
	err = svc.RemoveStudent(ctx, teacher, e.set.Course.ID, e.set.OtherStudent.ID)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	course, err := svc.Get(ctx, teacher, e.set.Course.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{e.set.Student.ID, e.set.Outsider.ID}, course.Students)

	_, err = svc.Get(ctx, service.Actor{UserID: e.set.OtherStudent.ID, Role: model.Student}, e.set.Course.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	_, err = svc.Get(ctx, teacher, "missing")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestRemovedStudentCannotWriteProgress(t *testing.T) {
	e := setup(t)
	svc, _ := newCourseService(t, e)
	ctx := context.Background()

	admin := service.Actor{UserID: e.set.Admin.ID, Role: model.Admin}
	require.NoError(t, svc.RemoveStudent(ctx, admin, e.set.Course.ID, e.set.Student.ID))

	_, err := e.svc.Create(ctx, e.student(), e.kata(true, ""))
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestExportProgress(t *testing.T) {
	e := setup(t)
	svc, dir := newCourseService(t, e)
	ctx := context.Background()

	created, err := e.svc.Create(ctx, e.student(), e.kata(true, "print(1)"))
	require.NoError(t, err)

	teacher := service.Actor{UserID: e.set.Teacher.ID, Role: model.Teacher}
	url, err := svc.ExportProgress(ctx, teacher, e.set.Course.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/exports/progress/"+e.set.Course.ID+"-"), url)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)

	var export struct {
		Course   string           `json:"course"`
		Progress []model.Progress `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, e.set.Course.ID, export.Course)
	require.Len(t, export.Progress, 1)
	assert.Equal(t, created.ID, export.Progress[0].ID)

	_, err = svc.ExportProgress(ctx, e.student(), e.set.Course.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}
