package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockedAt(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-2 * time.Minute)
	stale := now.Add(-15 * time.Minute)

	validatedAt := now.Add(-time.Hour)
	validated := &TaskEntity{Status: TaskCompleted, ValidationStatus: ValidationValidated, CompletedAt: &validatedAt}
	assert.True(t, validated.LockedAt(now))

	withinWindow := &TaskEntity{Status: TaskCompleted, ValidationStatus: ValidationPending, CompletedAt: &fresh}
	assert.False(t, withinWindow.LockedAt(now))

	pastWindow := &TaskEntity{Status: TaskCompleted, ValidationStatus: ValidationPending, CompletedAt: &stale}
	assert.True(t, pastWindow.LockedAt(now))

	// Exactly at the boundary still counts as inside the window
	boundary := now.Add(-ReviewGraceWindow)
	atBoundary := &TaskEntity{Status: TaskCompleted, ValidationStatus: ValidationPending, CompletedAt: &boundary}
	assert.False(t, atBoundary.LockedAt(now))

	inProgress := &TaskEntity{Status: TaskInProgress, ValidationStatus: ValidationNone}
	assert.False(t, inProgress.LockedAt(now))

	rejected := &TaskEntity{Status: TaskInProgress, ValidationStatus: ValidationRejected}
	assert.False(t, rejected.LockedAt(now))
}

func TestAwaitingReview(t *testing.T) {
	assert.True(t, (&TaskEntity{Status: TaskCompleted, ValidationStatus: ValidationPending}).AwaitingReview())
	assert.False(t, (&TaskEntity{Status: TaskCompleted, ValidationStatus: ValidationValidated}).AwaitingReview())
	assert.False(t, (&TaskEntity{Status: TaskInProgress, ValidationStatus: ValidationPending}).AwaitingReview())
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, 0, TaskPriority("Unknown").Rank())
}
