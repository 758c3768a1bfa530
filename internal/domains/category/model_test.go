package category

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCategory(t *testing.T) {
	c := NewRootCategory("Programming", "programming", "All things code", 1)

	assert.Nil(t, c.ParentID)
	assert.True(t, c.IsActive)
	assert.Equal(t, "programming", c.Slug)
}

func TestNewChildCategory(t *testing.T) {
	parentID := uuid.New()
	c := NewChildCategory("Go", "go", "", 1, parentID)

	require.NotNil(t, c.ParentID)
	assert.Equal(t, parentID, *c.ParentID)
}

func TestMoveToRejectsSelfParent(t *testing.T) {
	c := NewRootCategory("Programming", "programming", "", 1)

	err := c.MoveTo(&c.ID)

	assert.ErrorIs(t, err, ErrSelfParent)
	assert.Nil(t, c.ParentID)
}

func TestMoveToRoot(t *testing.T) {
	parentID := uuid.New()
	c := NewChildCategory("Go", "go", "", 1, parentID)

	err := c.MoveTo(nil)

	require.NoError(t, err)
	assert.Nil(t, c.ParentID)
}

func TestActivateIsIdempotent(t *testing.T) {
	c := NewRootCategory("Programming", "programming", "", 1)
	updated := c.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	c.Activate()

	assert.Equal(t, updated, c.UpdatedAt, "activating an active category must not touch it")
}

func TestDeactivateTouchesOnlyOnTransition(t *testing.T) {
	c := NewRootCategory("Programming", "programming", "", 1)

	time.Sleep(5 * time.Millisecond)
	c.Deactivate()
	require.False(t, c.IsActive)
	updated := c.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	c.Deactivate()

	assert.Equal(t, updated, c.UpdatedAt)
}
