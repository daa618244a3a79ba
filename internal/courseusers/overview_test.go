package courseusers

import (
	"context"
	"courseware_backend/internal/model"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prompt struct {
	role  model.UserRole
	email string
	kind  string
}

type fakeConfirmer struct {
	mu      sync.Mutex
	prompts []prompt
	answer  bool
	err     error
	block   bool
}

func (f *fakeConfirmer) ConfirmRemove(ctx context.Context, role model.UserRole, email, kind string) (bool, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt{role, email, kind})
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return false, ctx.Err()
	}
	return f.answer, f.err
}

func (f *fakeConfirmer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

var (
	alice = model.User{Base: model.Base{ID: "u1"}, Name: "Alice", Email: "alice@example.com", Role: model.Student}
	bob   = model.User{Base: model.Base{ID: "u2"}, Name: "Bob", Email: "bob@example.com", Role: model.Teacher}
)

func newOverview(c Confirmer) (*ListOverview, *[]string) {
	var emitted []string
	o := NewListOverview([]model.User{alice, bob}, c, func(id string) {
		emitted = append(emitted, id)
	})
	return o, &emitted
}

func TestRemoveUserWithoutSelection(t *testing.T) {
	c := &fakeConfirmer{answer: true}
	o, emitted := newOverview(c)

	_, ok := o.CurrentUser()
	assert.False(t, ok)

	assert.NotPanics(t, func() { o.RemoveUser(context.Background()) })
	assert.Zero(t, c.count())
	assert.Empty(t, *emitted)
}

func TestRemoveUserConfirmed(t *testing.T) {
	c := &fakeConfirmer{answer: true}
	o, emitted := newOverview(c)

	o.SetCurrentUser(alice)
	o.RemoveUser(context.Background())

	require.Equal(t, 1, c.count())
	assert.Equal(t, prompt{model.Student, "alice@example.com", ResourceCourse}, c.prompts[0])
	assert.Equal(t, []string{"u1"}, *emitted)
	// 列表由调用方维护
	assert.Len(t, o.Users(), 2)
}

func TestRemoveUserNotEmitted(t *testing.T) {
	cases := []struct {
		name string
		c    *fakeConfirmer
	}{
		{name: "declined", c: &fakeConfirmer{answer: false}},
		{name: "dialog error", c: &fakeConfirmer{answer: true, err: errors.New("closed")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, emitted := newOverview(tc.c)
			o.SetCurrentUser(bob)
			o.RemoveUser(context.Background())

			assert.Equal(t, 1, tc.c.count())
			assert.Empty(t, *emitted)

			current, ok := o.CurrentUser()
			require.True(t, ok)
			assert.Equal(t, "u2", current.ID)
		})
	}
}

func TestRemoveUserCancelled(t *testing.T) {
	c := &fakeConfirmer{block: true}
	o, emitted := newOverview(c)
	o.SetCurrentUser(alice)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	o.RemoveUser(ctx)

	assert.Empty(t, *emitted)
	_, ok := o.CurrentUser()
	assert.True(t, ok)
}

func TestSetCurrentUserLastWins(t *testing.T) {
	c := &fakeConfirmer{answer: true}
	o, emitted := newOverview(c)

	o.SetCurrentUser(alice)
	o.SetCurrentUser(bob)
	o.RemoveUser(context.Background())

	assert.Equal(t, []string{"u2"}, *emitted)
}

func TestSetCurrentUserOutsideList(t *testing.T) {
	c := &fakeConfirmer{answer: true}
	o, emitted := newOverview(c)

	stranger := model.User{Base: model.Base{ID: "u9"}, Email: "x@example.com", Role: model.Student}
	o.SetCurrentUser(stranger)
	o.RemoveUser(context.Background())

	assert.Equal(t, []string{"u9"}, *emitted)
}

func TestConfirmFunc(t *testing.T) {
	var got string
	o := NewListOverview(nil, ConfirmFunc(func(_ context.Context, _ model.UserRole, email, _ string) (bool, error) {
		got = email
		return true, nil
	}), nil)

	o.SetCurrentUser(alice)
	assert.NotPanics(t, func() { o.RemoveUser(context.Background()) })
	assert.Equal(t, "alice@example.com", got)
}
