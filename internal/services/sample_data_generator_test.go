package services

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SampleDataGeneratorSuite struct {
	suite.Suite
	generator SampleDataGeneratorInterface
	ownerID   uuid.UUID
	start     time.Time
	end       time.Time
}

func (s *SampleDataGeneratorSuite) SetupTest() {
	s.generator = NewSampleDataGenerator()
	s.ownerID = uuid.New()
	s.start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
}

func TestSampleDataGeneratorSuite(t *testing.T) {
	suite.Run(t, new(SampleDataGeneratorSuite))
}

func (s *SampleDataGeneratorSuite) TestGenerateAmount_WithinCategoryRange() {
	for _, category := range models.AllCategories() {
		for i := 0; i < 20; i++ {
			amount := s.generator.GenerateAmount(category)
			s.True(amount.IsPositive(), "category %s produced %s", category, amount)
		}
	}
}

func (s *SampleDataGeneratorSuite) TestGenerateTimestamp_WithinRange() {
	for i := 0; i < 50; i++ {
		ts := s.generator.GenerateTimestamp(s.start, s.end)
		s.False(ts.Before(s.start.Truncate(hoursInDay * time.Hour)))
		s.False(ts.After(s.end.Add(hoursInDay * time.Hour)))
	}
}

func (s *SampleDataGeneratorSuite) TestGenerateMonthlyPayments_RepeatAcrossMonths() {
	transactions := s.generator.GenerateMonthlyPayments(s.ownerID, s.start, s.end)
	require.NotEmpty(s.T(), transactions)

	// Three full months of five fixed bills each
	assert.Len(s.T(), transactions, 15)

	for _, tx := range transactions {
		s.Equal(s.ownerID, tx.OwnerID)
		s.NoError(tx.Validate())
	}

	// The fixed pairs must register as recurring in the insights output
	snapshot := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		snapshot[i] = *tx
	}
	keys := detectRecurringKeys(snapshot)
	assert.Len(s.T(), keys, len(monthlyPayments))
}

func (s *SampleDataGeneratorSuite) TestGenerateDailyPurchases_CountAndValidity() {
	transactions := s.generator.GenerateDailyPurchases(s.ownerID, s.start, s.end, 40)

	require.Len(s.T(), transactions, 40)
	for _, tx := range transactions {
		s.Equal(s.ownerID, tx.OwnerID)
		s.NoError(tx.Validate())
		s.True(models.IsValidCategory(tx.Category))
	}
}

func (s *SampleDataGeneratorSuite) TestGenerateHistory_SortedByDate() {
	transactions := s.generator.GenerateHistory(s.ownerID, s.start, s.end, 30)

	require.NotEmpty(s.T(), transactions)
	for i := 1; i < len(transactions); i++ {
		s.False(transactions[i].Date.Before(transactions[i-1].Date))
	}
}
