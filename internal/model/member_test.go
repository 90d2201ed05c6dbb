package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemberVisibility(t *testing.T) {
	now := time.Now()

	pending := &Member{Username: "alice"}
	assert.True(t, pending.IsPending())
	assert.False(t, pending.IsPublic())

	validated := &Member{Username: "alice", DateValidate: &now}
	assert.True(t, validated.IsPublic())
	assert.False(t, validated.IsBanned())

	banned := &Member{Username: "alice", DateValidate: &now, DateDeleted: &now}
	assert.True(t, banned.IsBanned())
	assert.False(t, banned.IsPublic())
}

func TestSessionExpiresAt(t *testing.T) {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s := &Session{DateCreated: created}

	assert.Equal(t, created.Add(time.Hour), s.ExpiresAt(time.Hour))
}
