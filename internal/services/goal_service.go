package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type goalService struct {
	goalRepo repositories.GoalRepositoryInterface
	metrics  MetricsRecorderInterface
}

// NewGoalService creates a new goal service
func NewGoalService(
	goalRepo repositories.GoalRepositoryInterface,
	metrics MetricsRecorderInterface,
) GoalServiceInterface {
	return &goalService{
		goalRepo: goalRepo,
		metrics:  metrics,
	}
}

// CreateGoal creates a new savings goal. Goals always start active with
// nothing saved.
func (s *goalService) CreateGoal(ownerID uuid.UUID, name string, target decimal.Decimal, deadline time.Time) (*models.Goal, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("owner ID is required")
	}
	if !target.IsPositive() {
		return nil, models.ErrInvalidTarget
	}

	goal := &models.Goal{
		OwnerID:  ownerID,
		Name:     name,
		Target:   target,
		Saved:    decimal.Zero,
		Deadline: deadline,
		Status:   models.GoalStatusActive,
	}

	if err := s.goalRepo.Create(goal); err != nil {
		slog.Error("failed to create goal",
			"owner_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.metrics.IncrementCounter("goal.created", nil)

	slog.Info("savings goal created",
		"owner_id", ownerID,
		"goal_id", goal.ID,
		"target", goal.Target.String())

	return goal, nil
}

// GetGoal retrieves a single goal scoped to its owner
func (s *goalService) GetGoal(ownerID, id uuid.UUID) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(ownerID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, err
		}
		slog.Error("failed to get goal",
			"owner_id", ownerID,
			"goal_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// ListGoals retrieves all of an owner's goals
func (s *goalService) ListGoals(ownerID uuid.UUID) ([]models.Goal, error) {
	goals, err := s.goalRepo.ListByOwner(ownerID)
	if err != nil {
		slog.Error("failed to list goals",
			"owner_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// Contribute applies a contribution to a goal. The check and the write run
// inside one database transaction, so the contribution either applies in
// full or leaves the goal untouched; overshooting contributions are
// rejected, never clamped. The bool return reports whether this
// contribution completed the goal.
func (s *goalService) Contribute(ownerID, goalID uuid.UUID, amount decimal.Decimal) (*models.Goal, bool, error) {
	goal, achieved, err := s.goalRepo.ApplyContribution(ownerID, goalID, amount)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrGoalNotFound):
			return nil, false, err
		case errors.Is(err, models.ErrInvalidContribution),
			errors.Is(err, models.ErrExceedsTarget),
			errors.Is(err, models.ErrGoalAchieved):
			s.metrics.IncrementCounter("goal.contribution", map[string]string{"outcome": "rejected"})
			slog.Warn("goal contribution rejected",
				"owner_id", ownerID,
				"goal_id", goalID,
				"amount", amount.String(),
				"reason", err.Error())
			return nil, false, err
		default:
			slog.Error("failed to apply goal contribution",
				"owner_id", ownerID,
				"goal_id", goalID,
				"error", err)
			return nil, false, fmt.Errorf("failed to apply contribution: %w", err)
		}
	}

	s.metrics.IncrementCounter("goal.contribution", map[string]string{"outcome": "applied"})

	if achieved {
		s.metrics.IncrementCounter("goal.achieved", nil)
		slog.Info("savings goal achieved",
			"owner_id", ownerID,
			"goal_id", goalID,
			"target", goal.Target.String())
	} else {
		slog.Info("goal contribution applied",
			"owner_id", ownerID,
			"goal_id", goalID,
			"amount", amount.String(),
			"saved", goal.Saved.String())
	}

	return goal, achieved, nil
}

// DeleteGoal removes a goal. Deletion is allowed in any state, achieved
// goals included.
func (s *goalService) DeleteGoal(ownerID, id uuid.UUID) error {
	if err := s.goalRepo.Delete(ownerID, id); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return err
		}
		slog.Error("failed to delete goal",
			"owner_id", ownerID,
			"goal_id", id,
			"error", err)
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	slog.Info("savings goal deleted",
		"owner_id", ownerID,
		"goal_id", id)

	return nil
}
