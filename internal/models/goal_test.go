package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoal(target, saved float64) *Goal {
	return &Goal{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Laptop fund",
		Target:   decimal.NewFromFloat(target),
		Saved:    decimal.NewFromFloat(saved),
		Deadline: time.Now().AddDate(0, 6, 0),
		Status:   GoalStatusActive,
	}
}

func TestGoalContribute_Success(t *testing.T) {
	goal := newTestGoal(100, 0)

	achieved, err := goal.Contribute(decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.False(t, achieved)
	assert.True(t, goal.Saved.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, GoalStatusActive, goal.Status)
}

func TestGoalContribute_ReachingTargetAchieves(t *testing.T) {
	goal := newTestGoal(100, 80)

	achieved, err := goal.Contribute(decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.True(t, achieved)
	assert.True(t, goal.Saved.Equal(goal.Target))
	assert.Equal(t, GoalStatusAchieved, goal.Status)

	// Achieved is terminal: even a tiny follow-up contribution is rejected
	_, err = goal.Contribute(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrGoalAchieved)
	assert.True(t, goal.Saved.Equal(goal.Target))
}

func TestGoalContribute_ExceedsTargetRejectedOutright(t *testing.T) {
	goal := newTestGoal(100, 80)

	achieved, err := goal.Contribute(decimal.NewFromInt(21))
	assert.ErrorIs(t, err, ErrExceedsTarget)
	assert.False(t, achieved)

	// Rejection leaves no partial application behind
	assert.True(t, goal.Saved.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, GoalStatusActive, goal.Status)
}

func TestGoalContribute_NonPositiveAmount(t *testing.T) {
	goal := newTestGoal(100, 10)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := goal.Contribute(amount)
		assert.ErrorIs(t, err, ErrInvalidContribution)
		assert.True(t, goal.Saved.Equal(decimal.NewFromInt(10)))
	}
}

func TestGoalContribute_InvariantHoldsAcrossSequence(t *testing.T) {
	goal := newTestGoal(50, 0)

	steps := []float64{10, 15.5, 24.5}
	for _, step := range steps {
		_, err := goal.Contribute(decimal.NewFromFloat(step))
		require.NoError(t, err)
		assert.False(t, goal.Saved.IsNegative())
		assert.False(t, goal.Saved.GreaterThan(goal.Target))
	}

	assert.True(t, goal.IsAchieved())
}

func TestGoalValidate(t *testing.T) {
	goal := newTestGoal(100, 0)
	require.NoError(t, goal.Validate())

	invalidTarget := newTestGoal(100, 0)
	invalidTarget.Target = decimal.Zero
	assert.ErrorIs(t, invalidTarget.Validate(), ErrInvalidTarget)

	overSaved := newTestGoal(100, 0)
	overSaved.Saved = decimal.NewFromInt(101)
	assert.Error(t, overSaved.Validate())

	badStatus := newTestGoal(100, 0)
	badStatus.Status = "paused"
	assert.ErrorIs(t, badStatus.Validate(), ErrInvalidGoalStatus)
}

func TestGoalProgress(t *testing.T) {
	goal := newTestGoal(200, 50)
	assert.True(t, goal.Progress().Equal(decimal.NewFromInt(25)))
}
