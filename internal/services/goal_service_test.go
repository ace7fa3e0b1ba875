package services

import (
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// GoalServiceSuite defines the test suite for GoalServiceInterface
type GoalServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	goalRepo *repository_mocks.MockGoalRepositoryInterface
	service  GoalServiceInterface
	ownerID  uuid.UUID
	goalID   uuid.UUID
	deadline time.Time
}

func (s *GoalServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.goalRepo = repository_mocks.NewMockGoalRepositoryInterface(s.ctrl)
	s.service = NewGoalService(s.goalRepo, NewNoopMetrics())
	s.ownerID = uuid.New()
	s.goalID = uuid.New()
	s.deadline = time.Now().AddDate(1, 0, 0)
}

func (s *GoalServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGoalServiceSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceSuite))
}

func (s *GoalServiceSuite) TestCreateGoal_Success() {
	s.goalRepo.EXPECT().Create(gomock.Any()).Return(nil)

	goal, err := s.service.CreateGoal(s.ownerID, "Holiday fund", decimal.NewFromInt(1000), s.deadline)
	s.NoError(err)
	s.Require().NotNil(goal)
	s.Equal(s.ownerID, goal.OwnerID)
	s.Equal(models.GoalStatusActive, goal.Status)
	s.True(goal.Saved.IsZero())
}

func (s *GoalServiceSuite) TestCreateGoal_NonPositiveTarget() {
	for _, target := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		goal, err := s.service.CreateGoal(s.ownerID, "Holiday fund", target, s.deadline)
		s.ErrorIs(err, models.ErrInvalidTarget)
		s.Nil(goal)
	}
}

func (s *GoalServiceSuite) TestCreateGoal_NilOwner() {
	goal, err := s.service.CreateGoal(uuid.Nil, "Holiday fund", decimal.NewFromInt(100), s.deadline)
	s.Error(err)
	s.Nil(goal)
}

func (s *GoalServiceSuite) TestContribute_Applied() {
	amount := decimal.NewFromInt(50)
	updated := &models.Goal{
		ID:      s.goalID,
		OwnerID: s.ownerID,
		Name:    "Holiday fund",
		Target:  decimal.NewFromInt(1000),
		Saved:   decimal.NewFromInt(50),
		Status:  models.GoalStatusActive,
	}

	s.goalRepo.EXPECT().
		ApplyContribution(s.ownerID, s.goalID, amount).
		Return(updated, false, nil)

	goal, achieved, err := s.service.Contribute(s.ownerID, s.goalID, amount)
	s.NoError(err)
	s.False(achieved)
	s.True(goal.Saved.Equal(decimal.NewFromInt(50)))
}

func (s *GoalServiceSuite) TestContribute_CompletesGoal() {
	amount := decimal.NewFromInt(20)
	updated := &models.Goal{
		ID:      s.goalID,
		OwnerID: s.ownerID,
		Name:    "Holiday fund",
		Target:  decimal.NewFromInt(100),
		Saved:   decimal.NewFromInt(100),
		Status:  models.GoalStatusAchieved,
	}

	s.goalRepo.EXPECT().
		ApplyContribution(s.ownerID, s.goalID, amount).
		Return(updated, true, nil)

	goal, achieved, err := s.service.Contribute(s.ownerID, s.goalID, amount)
	s.NoError(err)
	s.True(achieved)
	s.Equal(models.GoalStatusAchieved, goal.Status)
}

func (s *GoalServiceSuite) TestContribute_RejectionsPassThrough() {
	for _, want := range []error{
		models.ErrInvalidContribution,
		models.ErrExceedsTarget,
		models.ErrGoalAchieved,
	} {
		s.goalRepo.EXPECT().
			ApplyContribution(s.ownerID, s.goalID, gomock.Any()).
			Return(nil, false, want)

		goal, achieved, err := s.service.Contribute(s.ownerID, s.goalID, decimal.NewFromInt(10))
		s.ErrorIs(err, want)
		s.False(achieved)
		s.Nil(goal)
	}
}

func (s *GoalServiceSuite) TestContribute_NotFound() {
	s.goalRepo.EXPECT().
		ApplyContribution(s.ownerID, s.goalID, gomock.Any()).
		Return(nil, false, repositories.ErrGoalNotFound)

	goal, _, err := s.service.Contribute(s.ownerID, s.goalID, decimal.NewFromInt(10))
	s.ErrorIs(err, repositories.ErrGoalNotFound)
	s.Nil(goal)
}

func (s *GoalServiceSuite) TestListGoals() {
	goals := []models.Goal{
		{ID: uuid.New(), OwnerID: s.ownerID, Name: "Holiday fund"},
		{ID: uuid.New(), OwnerID: s.ownerID, Name: "Emergency fund"},
	}
	s.goalRepo.EXPECT().ListByOwner(s.ownerID).Return(goals, nil)

	got, err := s.service.ListGoals(s.ownerID)
	s.NoError(err)
	s.Len(got, 2)
}

func (s *GoalServiceSuite) TestDeleteGoal_AnyState() {
	s.goalRepo.EXPECT().Delete(s.ownerID, s.goalID).Return(nil)
	s.NoError(s.service.DeleteGoal(s.ownerID, s.goalID))
}

func (s *GoalServiceSuite) TestDeleteGoal_NotFound() {
	s.goalRepo.EXPECT().Delete(s.ownerID, s.goalID).Return(repositories.ErrGoalNotFound)
	s.ErrorIs(s.service.DeleteGoal(s.ownerID, s.goalID), repositories.ErrGoalNotFound)
}
