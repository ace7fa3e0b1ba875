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

type BudgetServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	budgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         BudgetServiceInterface
	ownerID         uuid.UUID
	now             time.Time
}

func (s *BudgetServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewBudgetService(s.budgetRepo, s.transactionRepo)
	s.ownerID = uuid.New()
	s.now = time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
}

func (s *BudgetServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}

func (s *BudgetServiceSuite) TestGetBudget_NotConfigured() {
	s.budgetRepo.EXPECT().GetByOwner(s.ownerID).Return(nil, repositories.ErrBudgetNotFound)

	budget, err := s.service.GetBudget(s.ownerID)
	s.ErrorIs(err, repositories.ErrBudgetNotFound)
	s.Nil(budget)
}

func (s *BudgetServiceSuite) TestUpsertBudget_RecalculatesRemaining() {
	budget := &models.Budget{
		OwnerID:     s.ownerID,
		TotalBudget: decimal.NewFromInt(1000),
		Categories: models.BudgetCategoryList{
			{
				Name:      models.CategoryFood,
				Allocated: decimal.NewFromInt(300),
				Spent:     decimal.NewFromInt(120),
				// Stale client value that must be overwritten
				Remaining: decimal.NewFromInt(999),
			},
		},
	}

	s.budgetRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(b *models.Budget) error {
		s.True(b.Categories[0].Remaining.Equal(decimal.NewFromInt(180)))
		s.True(b.Spent.Equal(decimal.NewFromInt(120)))
		return nil
	})
	s.budgetRepo.EXPECT().GetByOwner(s.ownerID).Return(budget, nil)

	saved, err := s.service.UpsertBudget(budget)
	s.NoError(err)
	s.NotNil(saved)
}

func (s *BudgetServiceSuite) TestUpsertBudget_RejectsNegativeTotal() {
	budget := &models.Budget{
		OwnerID:     s.ownerID,
		TotalBudget: decimal.NewFromInt(-1),
	}

	saved, err := s.service.UpsertBudget(budget)
	s.ErrorIs(err, models.ErrNegativeBudget)
	s.Nil(saved)
}

func (s *BudgetServiceSuite) TestSyncSpending_CountsCompletedOnly() {
	budget := &models.Budget{
		OwnerID:     s.ownerID,
		TotalBudget: decimal.NewFromInt(1000),
		Categories: models.BudgetCategoryList{
			{Name: models.CategoryFood, Allocated: decimal.NewFromInt(300)},
		},
	}

	completed := makeTransaction(3, models.CategoryFood, 40)
	pending := makeTransaction(5, models.CategoryFood, 60)
	pending.Status = models.TransactionStatusPending

	s.budgetRepo.EXPECT().GetByOwner(s.ownerID).Return(budget, nil)
	s.transactionRepo.EXPECT().
		GetByDateRange(s.ownerID, gomock.Any(), gomock.Any()).
		Return([]models.Transaction{completed, pending}, nil)
	s.budgetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	synced, err := s.service.SyncSpending(s.ownerID, s.now)
	s.NoError(err)
	s.True(synced.Categories[0].Spent.Equal(decimal.NewFromInt(40)))
	s.True(synced.Spent.Equal(decimal.NewFromInt(40)))
}

func (s *BudgetServiceSuite) TestSyncSpending_NoBudget() {
	s.budgetRepo.EXPECT().GetByOwner(s.ownerID).Return(nil, repositories.ErrBudgetNotFound)

	synced, err := s.service.SyncSpending(s.ownerID, s.now)
	s.ErrorIs(err, repositories.ErrBudgetNotFound)
	s.Nil(synced)
}
