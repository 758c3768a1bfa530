package comment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommentStartsUnapproved(t *testing.T) {
	c := NewComment(uuid.New(), nil, uuid.New(), "Nice post!")

	assert.False(t, c.IsApproved)
	assert.True(t, c.IsActive)
}

func TestApproveIsIdempotent(t *testing.T) {
	c := NewComment(uuid.New(), nil, uuid.New(), "Nice post!")

	c.Approve()
	require.True(t, c.IsApproved)
	updated := c.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	c.Approve()

	assert.Equal(t, updated, c.UpdatedAt)
}

func TestRejectAfterApprove(t *testing.T) {
	c := NewComment(uuid.New(), nil, uuid.New(), "Nice post!")
	c.Approve()

	c.Reject()

	assert.False(t, c.IsApproved)
}

func TestDeactivateIsIdempotent(t *testing.T) {
	c := NewComment(uuid.New(), nil, uuid.New(), "Nice post!")

	c.Deactivate()
	require.False(t, c.IsActive)
	updated := c.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	c.Deactivate()

	assert.Equal(t, updated, c.UpdatedAt)
}
