package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnitClosed(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	cases := []struct {
		name     string
		deadline *time.Time
		want     bool
	}{
		{"no deadline", nil, false},
		{"future", at(time.Hour), false},
		{"exactly now", at(0), false},
		{"one nanosecond ago", at(-time.Nanosecond), true},
		{"past", at(-time.Hour), true},
	}
	for _, tc := range cases {
		u := &Unit{Deadline: tc.deadline}
		assert.Equal(t, tc.want, u.Closed(now), tc.name)
	}
}

func TestUnitProgressType(t *testing.T) {
	assert.Equal(t, ProgressCodeKata, (&Unit{Type: UnitCodeKata}).ProgressType())
	assert.Equal(t, ProgressTask, (&Unit{Type: UnitTask}).ProgressType())
	assert.Equal(t, ProgressFreeText, (&Unit{Type: UnitFreeText}).ProgressType())
	assert.Equal(t, ProgressType(""), (&Unit{Type: UnitVideo}).ProgressType())
	assert.False(t, ProgressType("").Valid())
}

func TestProgressApplyKeepsIdentity(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &Progress{Base: Base{ID: "p1", CreatedAt: created}, Code: "old"}
	p.Apply(&Progress{Base: Base{ID: "other"}, Done: true, Code: "new", Type: ProgressCodeKata})

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, created, p.CreatedAt)
	assert.True(t, p.Done)
	assert.Equal(t, "new", p.Code)
}

func TestCourseCanManage(t *testing.T) {
	c := &Course{TeacherID: "t1", Students: []string{"s1"}}

	assert.True(t, c.CanManage("t1", Teacher))
	assert.False(t, c.CanManage("t2", Teacher))
	assert.True(t, c.CanManage("anyone", Admin))
	assert.False(t, c.CanManage("s1", Student))
	assert.True(t, c.HasStudent("s1"))
	assert.False(t, c.HasStudent("s2"))
}
