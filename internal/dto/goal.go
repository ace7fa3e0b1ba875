package dto

import (
	"finance-tracker/internal/models"
)

// Goal Request DTOs

// CreateGoalRequest represents the request payload for creating a savings goal
type CreateGoalRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Target   string `json:"target" validate:"required,positive_amount"`
	Deadline string `json:"deadline" validate:"required"`
}

// ContributeRequest represents the request payload for contributing to a goal
type ContributeRequest struct {
	Amount string `json:"amount" validate:"required,positive_amount"`
}

// Goal Response DTOs

// GoalResponse represents a single goal in API responses
type GoalResponse struct {
	*models.Goal
	Progress string `json:"progress"`
}

// GoalListResponse represents all of a user's goals
type GoalListResponse struct {
	Goals []models.Goal `json:"goals"`
	Total int           `json:"total"`
}

// ContributionResponse reports the result of a contribution, flagging when
// this contribution completed the goal
type ContributionResponse struct {
	Goal     *models.Goal `json:"goal"`
	Achieved bool         `json:"achieved"`
	Message  string       `json:"message,omitempty"`
}
