package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// InsightsServiceSuite defines the test suite for InsightsServiceInterface
type InsightsServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         InsightsServiceInterface
	ownerID         uuid.UUID
	rangeStart      time.Time
	rangeEnd        time.Time
}

func (s *InsightsServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewInsightsService(s.transactionRepo, NewNoopMetrics())
	s.ownerID = uuid.New()
	s.rangeStart = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	s.rangeEnd = time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC)
}

func (s *InsightsServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInsightsServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceSuite))
}

func (s *InsightsServiceSuite) fixtureTransactions() []models.Transaction {
	return []models.Transaction{
		makeTransaction(3, models.CategoryFood, 20),
		makeTransaction(10, models.CategoryFood, 30),
	}
}

func (s *InsightsServiceSuite) TestComputeInsights_Success() {
	s.transactionRepo.EXPECT().
		GetByDateRange(s.ownerID, s.rangeStart, s.rangeEnd).
		Return(s.fixtureTransactions(), nil)

	insights, err := s.service.ComputeInsights(s.ownerID, s.rangeStart, s.rangeEnd)
	s.NoError(err)
	s.Require().NotNil(insights)
	s.Equal(s.ownerID, insights.OwnerID)
	s.Equal(2, insights.TransactionCount)
	s.Equal(models.CategoryFood, insights.HighestSpendingCategory)
	s.True(insights.DailyAverageSpending.Equal(decimal.NewFromInt(25)))
}

// Recomputing over the same snapshot must serialize to identical bytes;
// nothing in the result may depend on when it was computed.
func (s *InsightsServiceSuite) TestComputeInsights_Idempotent() {
	transactions := s.fixtureTransactions()
	s.transactionRepo.EXPECT().
		GetByDateRange(s.ownerID, s.rangeStart, s.rangeEnd).
		Return(transactions, nil).
		Times(2)

	first, err := s.service.ComputeInsights(s.ownerID, s.rangeStart, s.rangeEnd)
	s.Require().NoError(err)
	second, err := s.service.ComputeInsights(s.ownerID, s.rangeStart, s.rangeEnd)
	s.Require().NoError(err)

	firstJSON, err := json.Marshal(first)
	s.Require().NoError(err)
	secondJSON, err := json.Marshal(second)
	s.Require().NoError(err)
	s.Equal(firstJSON, secondJSON)
}

func (s *InsightsServiceSuite) TestComputeInsights_EmptySnapshot() {
	s.transactionRepo.EXPECT().
		GetByDateRange(s.ownerID, s.rangeStart, s.rangeEnd).
		Return([]models.Transaction{}, nil)

	insights, err := s.service.ComputeInsights(s.ownerID, s.rangeStart, s.rangeEnd)
	s.NoError(err)
	s.Zero(insights.TransactionCount)
	s.Empty(insights.CategoryTotals)
	s.Nil(insights.LargestTransaction)
}

func (s *InsightsServiceSuite) TestComputeInsights_InvertedRange() {
	insights, err := s.service.ComputeInsights(s.ownerID, s.rangeEnd, s.rangeStart)
	s.ErrorIs(err, ErrInvalidDateRange)
	s.Nil(insights)
}

func (s *InsightsServiceSuite) TestComputeInsights_NilOwner() {
	insights, err := s.service.ComputeInsights(uuid.Nil, s.rangeStart, s.rangeEnd)
	s.Error(err)
	s.Nil(insights)
}

func (s *InsightsServiceSuite) TestComputeInsights_RepoError() {
	s.transactionRepo.EXPECT().
		GetByDateRange(s.ownerID, s.rangeStart, s.rangeEnd).
		Return(nil, errors.New("connection reset"))

	insights, err := s.service.ComputeInsights(s.ownerID, s.rangeStart, s.rangeEnd)
	s.Error(err)
	s.Nil(insights)
}
