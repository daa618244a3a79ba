package memrepo

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository(t *testing.T) {
	ctx := context.Background()
	repos := Open().Repositories()

	first := &model.Progress{Course: "c1", Unit: "u1", User: "s1", Type: model.ProgressCodeKata}
	require.NoError(t, repos.Progress.Create(ctx, first))
	second := &model.Progress{Course: "c1", Unit: "u1", User: "s1", Type: model.ProgressCodeKata, Done: true}
	require.NoError(t, repos.Progress.Create(ctx, second))
	other := &model.Progress{Course: "c1", Unit: "u2", User: "s2", Type: model.ProgressTask}
	require.NoError(t, repos.Progress.Create(ctx, other))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	got, err := repos.Progress.FindByUnitAndUser(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	all, err := repos.Progress.ListByCourse(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{first.ID, second.ID, other.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repos.Progress.ListByCourseAndUser(ctx, "c1", "s2")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	empty, err := repos.Progress.ListByCourse(ctx, "none")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestProgressUpdate(t *testing.T) {
	ctx := context.Background()
	db := Open()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return clock }
	repos := db.Repositories()

	p := &model.Progress{Course: "c1", Unit: "u1", User: "s1", Type: model.ProgressCodeKata}
	require.NoError(t, repos.Progress.Create(ctx, p))

	clock = clock.Add(time.Hour)
	loaded, err := repos.Progress.FindByID(ctx, p.ID)
	require.NoError(t, err)
	loaded.Done = true
	require.NoError(t, repos.Progress.Update(ctx, loaded))

	stored, err := repos.Progress.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Done)
	assert.Equal(t, p.CreatedAt, stored.CreatedAt)
	assert.Equal(t, clock, stored.UpdatedAt)

	err = repos.Progress.Update(ctx, &model.Progress{Base: model.Base{ID: "missing"}})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Progress.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	repos := Open().Repositories()

	deadline := time.Now().Add(time.Hour)
	u := &model.Unit{Name: "kata", Type: model.UnitCodeKata, Deadline: &deadline}
	require.NoError(t, repos.Unit.Create(ctx, u))

	loaded, err := repos.Unit.FindByID(ctx, u.ID)
	require.NoError(t, err)
	*loaded.Deadline = deadline.Add(-2 * time.Hour)

	again, err := repos.Unit.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, again.Deadline.Equal(deadline))
}

func TestCourseStudents(t *testing.T) {
	ctx := context.Background()
	repos := Open().Repositories()

	c := &model.Course{Name: "Go", Students: []string{"s1"}}
	require.NoError(t, repos.Course.Create(ctx, c))

	require.NoError(t, repos.Course.AddStudent(ctx, c.ID, "s2"))
	require.NoError(t, repos.Course.AddStudent(ctx, c.ID, "s2"))
	require.NoError(t, repos.Course.RemoveStudent(ctx, c.ID, "s1"))

	got, err := repos.Course.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"s2"}, got.Students)

	assert.ErrorIs(t, repos.Course.AddStudent(ctx, "missing", "s1"), repository.ErrNotFound)
}

func TestUserEmailUnique(t *testing.T) {
	ctx := context.Background()
	repos := Open().Repositories()

	require.NoError(t, repos.User.Create(ctx, &model.User{Email: "a@example.com"}))
	assert.Error(t, repos.User.Create(ctx, &model.User{Email: "a@example.com"}))

	u, err := repos.User.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	users, err := repos.User.FindByIDs(ctx, []string{u.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
