package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusRejected, StatusPending, true},

		{StatusDraft, StatusApproved, false},
		{StatusDraft, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusPending, StatusDraft, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestStatusTransition(t *testing.T) {
	next, err := StatusPending.Transition(StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, next)

	next, err = StatusApproved.Transition(StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, StatusApproved, next, "failed transition keeps the current status")
}

func TestCountsForPayout(t *testing.T) {
	assert.True(t, StatusApproved.CountsForPayout())
	assert.False(t, StatusDraft.CountsForPayout())
	assert.False(t, StatusPending.CountsForPayout())
	assert.False(t, StatusRejected.CountsForPayout())
}
