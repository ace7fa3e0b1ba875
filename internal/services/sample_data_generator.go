package services

import (
	"math/rand"
	"sort"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type sampleDataGenerator struct {
	rng *rand.Rand
}

const (
	hoursInDay      = 24
	spendHourStart  = 7
	spendHourEnd    = 23
	monthlyBillHour = 9
	pendingShare    = 0.08
	cashShare       = 0.30
)

// monthlyPayment is a fixed (category, amount) pair billed once a month.
// Repeating the exact amount across months is what makes these show up as
// recurring keys in the insights output.
type monthlyPayment struct {
	description string
	category    string
	amount      float64
	day         int
}

var monthlyPayments = []monthlyPayment{
	{"Monthly rent", models.CategoryRent, 850.00, 1},
	{"Gym membership", models.CategoryEntertainment, 29.99, 3},
	{"Streaming subscription", models.CategoryEntertainment, 9.99, 15},
	{"Commuter rail pass", models.CategoryTravel, 120.00, 5},
	{"Cloud storage", models.CategoryMiscellaneous, 1.99, 20},
}

// descriptionPools holds realistic purchase descriptions per category
var descriptionPools = map[string][]string{
	models.CategoryFood: {
		"Grocery shop", "Lunch out", "Coffee", "Takeaway dinner",
		"Weekly food shop", "Bakery", "Corner shop snacks",
	},
	models.CategoryRent: {
		"Rent top-up", "Utilities share",
	},
	models.CategoryEntertainment: {
		"Cinema tickets", "Concert", "Books", "Video game",
		"Pub night", "Museum entry",
	},
	models.CategoryTravel: {
		"Train ticket", "Bus fare", "Taxi", "Petrol",
		"Weekend trip", "Airport transfer",
	},
	models.CategoryMiscellaneous: {
		"Pharmacy", "Haircut", "Stationery", "Gift",
		"Phone accessories", "Dry cleaning",
	},
}

// NewSampleDataGenerator creates a new sample data generator
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataGenerator{
		rng: rand.New(source),
	}
}

// GenerateAmount generates a realistic amount for a category
func (g *sampleDataGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.amountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *sampleDataGenerator) amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryFood:          {3.00, 90.00},
		models.CategoryRent:          {20.00, 150.00},
		models.CategoryEntertainment: {5.00, 75.00},
		models.CategoryTravel:        {2.50, 200.00},
		models.CategoryMiscellaneous: {4.00, 60.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 5.00, 50.00
}

// GenerateTimestamp generates a random timestamp within the date range,
// clamped to waking hours
func (g *sampleDataGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return startDate
	}
	randomDuration := time.Duration(g.rng.Int63n(int64(diff)))
	timestamp := startDate.Add(randomDuration)

	hour := spendHourStart + g.rng.Intn(spendHourEnd-spendHourStart)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	return time.Date(
		timestamp.Year(),
		timestamp.Month(),
		timestamp.Day(),
		hour,
		minute,
		second,
		0,
		time.UTC,
	)
}

// GenerateMonthlyPayments generates the fixed monthly bills for every month
// touched by the date range
func (g *sampleDataGenerator) GenerateMonthlyPayments(ownerID uuid.UUID, startDate, endDate time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)

	month := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(endDate) {
		for _, payment := range monthlyPayments {
			billDate := time.Date(month.Year(), month.Month(), payment.day, monthlyBillHour, 0, 0, 0, time.UTC)
			if billDate.Before(startDate) || billDate.After(endDate) {
				continue
			}

			transactions = append(transactions, &models.Transaction{
				ID:            uuid.New(),
				OwnerID:       ownerID,
				Date:          billDate,
				Amount:        decimal.NewFromFloat(payment.amount),
				Category:      payment.category,
				PaymentMethod: models.PaymentMethodCard,
				Description:   payment.description,
				Status:        models.TransactionStatusCompleted,
				CreatedAt:     billDate,
				UpdatedAt:     billDate,
			})
		}
		month = month.AddDate(0, 1, 0)
	}

	return transactions
}

// GenerateDailyPurchases generates count ad-hoc purchases spread over the
// date range
func (g *sampleDataGenerator) GenerateDailyPurchases(ownerID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)

	categories := models.AllCategories()
	for i := 0; i < count; i++ {
		category := categories[g.rng.Intn(len(categories))]
		timestamp := g.GenerateTimestamp(startDate, endDate)

		transactions = append(transactions, &models.Transaction{
			ID:            uuid.New(),
			OwnerID:       ownerID,
			Date:          timestamp,
			Amount:        g.GenerateAmount(category),
			Category:      category,
			PaymentMethod: g.generatePaymentMethod(),
			Description:   g.generateDescription(category),
			Status:        g.generateStatus(),
			CreatedAt:     timestamp,
			UpdatedAt:     timestamp,
		})
	}

	return transactions
}

// GenerateHistory generates a complete seeding set: the fixed monthly
// payments plus count ad-hoc purchases, sorted by date
func (g *sampleDataGenerator) GenerateHistory(ownerID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	transactions := g.GenerateMonthlyPayments(ownerID, startDate, endDate)
	transactions = append(transactions, g.GenerateDailyPurchases(ownerID, startDate, endDate, count)...)

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	return transactions
}

func (g *sampleDataGenerator) generateDescription(category string) string {
	pool := descriptionPools[category]
	if len(pool) == 0 {
		return "Purchase"
	}
	return pool[g.rng.Intn(len(pool))]
}

func (g *sampleDataGenerator) generatePaymentMethod() string {
	if g.rng.Float64() < cashShare {
		return models.PaymentMethodCash
	}
	return models.PaymentMethodCard
}

func (g *sampleDataGenerator) generateStatus() string {
	if g.rng.Float64() < pendingShare {
		return models.TransactionStatusPending
	}
	return models.TransactionStatusCompleted
}
