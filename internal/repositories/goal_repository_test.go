package repositories

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GoalRepositoryTestSuite is the test suite for the goal repository
type GoalRepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    GoalRepositoryInterface
	ownerID uuid.UUID
}

// SetupTest runs before each test
func (s *GoalRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Goal{}, &models.User{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewGoalRepository(db)
	s.ownerID = uuid.New()
}

// TearDownTest runs after each test
func (s *GoalRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestGoalRepositoryTestSuite runs the test suite
func TestGoalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GoalRepositoryTestSuite))
}

func (s *GoalRepositoryTestSuite) createTestGoal(target float64) *models.Goal {
	goal := &models.Goal{
		OwnerID:  s.ownerID,
		Name:     gofakeit.ProductName(),
		Target:   decimal.NewFromFloat(target),
		Deadline: time.Now().AddDate(0, 3, 0),
	}
	require.NoError(s.T(), s.repo.Create(goal))
	return goal
}

func (s *GoalRepositoryTestSuite) TestCreate_DefaultsToActiveWithZeroSaved() {
	goal := s.createTestGoal(250)

	assert.NotEqual(s.T(), uuid.Nil, goal.ID)
	assert.Equal(s.T(), models.GoalStatusActive, goal.Status)
	assert.True(s.T(), goal.Saved.IsZero())
}

func (s *GoalRepositoryTestSuite) TestGetByID_ScopedToOwner() {
	goal := s.createTestGoal(100)

	found, err := s.repo.GetByID(s.ownerID, goal.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), goal.ID, found.ID)

	_, err = s.repo.GetByID(uuid.New(), goal.ID)
	assert.ErrorIs(s.T(), err, ErrGoalNotFound)
}

func (s *GoalRepositoryTestSuite) TestApplyContribution_Success() {
	goal := s.createTestGoal(100)

	updated, achieved, err := s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.NewFromInt(60))
	require.NoError(s.T(), err)
	assert.False(s.T(), achieved)
	assert.True(s.T(), updated.Saved.Equal(decimal.NewFromInt(60)))
	assert.Equal(s.T(), models.GoalStatusActive, updated.Status)
}

func (s *GoalRepositoryTestSuite) TestApplyContribution_Achievement() {
	goal := s.createTestGoal(100)

	_, _, err := s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.NewFromInt(80))
	require.NoError(s.T(), err)

	updated, achieved, err := s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.NewFromInt(20))
	require.NoError(s.T(), err)
	assert.True(s.T(), achieved)
	assert.Equal(s.T(), models.GoalStatusAchieved, updated.Status)

	// Terminal state: further contributions are rejected
	_, _, err = s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.NewFromInt(1))
	assert.ErrorIs(s.T(), err, models.ErrGoalAchieved)
}

func (s *GoalRepositoryTestSuite) TestApplyContribution_ExceedsTargetLeavesGoalUntouched() {
	goal := s.createTestGoal(100)

	_, _, err := s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.NewFromInt(80))
	require.NoError(s.T(), err)

	_, _, err = s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.NewFromInt(21))
	assert.ErrorIs(s.T(), err, models.ErrExceedsTarget)

	stored, err := s.repo.GetByID(s.ownerID, goal.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), stored.Saved.Equal(decimal.NewFromInt(80)))
	assert.Equal(s.T(), models.GoalStatusActive, stored.Status)
}

func (s *GoalRepositoryTestSuite) TestApplyContribution_InvalidAmount() {
	goal := s.createTestGoal(100)

	_, _, err := s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.Zero)
	assert.ErrorIs(s.T(), err, models.ErrInvalidContribution)
}

func (s *GoalRepositoryTestSuite) TestApplyContribution_NotFound() {
	_, _, err := s.repo.ApplyContribution(s.ownerID, uuid.New(), decimal.NewFromInt(10))
	assert.ErrorIs(s.T(), err, ErrGoalNotFound)
}

func (s *GoalRepositoryTestSuite) TestListByOwner_OrderedByDeadline() {
	late := s.createTestGoal(100)
	late.Deadline = time.Now().AddDate(1, 0, 0)
	require.NoError(s.T(), s.db.Save(late).Error)

	early := s.createTestGoal(50)
	early.Deadline = time.Now().AddDate(0, 1, 0)
	require.NoError(s.T(), s.db.Save(early).Error)

	goals, err := s.repo.ListByOwner(s.ownerID)
	require.NoError(s.T(), err)
	require.Len(s.T(), goals, 2)
	assert.Equal(s.T(), early.ID, goals[0].ID)
	assert.Equal(s.T(), late.ID, goals[1].ID)
}

func (s *GoalRepositoryTestSuite) TestDelete_AnyState() {
	goal := s.createTestGoal(10)

	_, achieved, err := s.repo.ApplyContribution(s.ownerID, goal.ID, decimal.NewFromInt(10))
	require.NoError(s.T(), err)
	require.True(s.T(), achieved)

	require.NoError(s.T(), s.repo.Delete(s.ownerID, goal.ID))

	_, err = s.repo.GetByID(s.ownerID, goal.ID)
	assert.ErrorIs(s.T(), err, ErrGoalNotFound)
}

func (s *GoalRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ownerID, uuid.New())
	assert.ErrorIs(s.T(), err, ErrGoalNotFound)
}
