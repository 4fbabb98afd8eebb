package services_test

import (
	"testing"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionSession_Navigation(t *testing.T) {
	session := services.NewSubmissionSession(testCatalog[:3])

	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, uint(1), current.ID)
	assert.Equal(t, 33, session.Progress())
	assert.False(t, session.Previous())

	assert.True(t, session.Next())
	assert.True(t, session.Next())
	assert.False(t, session.Next())
	current, _ = session.Current()
	assert.Equal(t, uint(3), current.ID)
	assert.Equal(t, 100, session.Progress())

	assert.True(t, session.Previous())
	current, _ = session.Current()
	assert.Equal(t, uint(2), current.ID)
}

func TestSubmissionSession_RecordAndComplete(t *testing.T) {
	session := services.NewSubmissionSession(testCatalog[:3])

	require.NoError(t, session.Record(1, true))
	require.NoError(t, session.Record(3, false))
	assert.False(t, session.Complete())
	require.Len(t, session.Pending(), 1)
	assert.Equal(t, uint(2), session.Pending()[0].ID)

	_, err := session.Feedback(9, "sub")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Revisit and overwrite an earlier decision.
	require.NoError(t, session.Record(1, false))
	liked, ok := session.Decision(1)
	assert.True(t, ok)
	assert.False(t, liked)

	require.NoError(t, session.Record(2, true))
	assert.True(t, session.Complete())
	assert.Empty(t, session.Pending())

	rows, err := session.Feedback(9, "sub")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint(1), rows[0].VegetableID)
	assert.False(t, rows[0].IsLiked)
	assert.True(t, rows[1].IsLiked)
	assert.False(t, rows[2].IsLiked)
	for _, r := range rows {
		assert.Equal(t, uint(9), r.UserID)
		assert.Equal(t, "sub", r.SubmissionID)
	}
}

func TestSubmissionSession_RejectsUnknownVegetable(t *testing.T) {
	session := services.NewSubmissionSession(testCatalog[:2])
	err := session.Record(4, true)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSubmissionSession_Empty(t *testing.T) {
	session := services.NewSubmissionSession(nil)
	_, ok := session.Current()
	assert.False(t, ok)
	assert.False(t, session.Complete())
	assert.Zero(t, session.Progress())
	assert.False(t, session.Next())
}
