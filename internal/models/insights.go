package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingPoint is one day's total spend within a month. Derived, never
// persisted; days without transactions are omitted entirely.
type SpendingPoint struct {
	Day    int             `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryTotal is the summed spend for one category over the queried window
type CategoryTotal struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// RecurringKey marks a (category, amount) pair observed in two or more
// distinct calendar months, the signal used to flag subscription-like
// payments.
type RecurringKey struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SpendingInsights is the full aggregation result for one user's snapshot.
// It is a pure function of the input transactions: the same snapshot always
// serializes to identical bytes, so there is deliberately no generated-at
// timestamp here.
type SpendingInsights struct {
	OwnerID                 uuid.UUID       `json:"owner_id"`
	CategoryTotals          []CategoryTotal `json:"category_totals"`
	DailyTrend              []SpendingPoint `json:"daily_trend"`
	HighestSpendingCategory string          `json:"highest_spending_category,omitempty"`
	LowestSpendingCategory  string          `json:"lowest_spending_category,omitempty"`
	DailyAverageSpending    decimal.Decimal `json:"daily_average_spending"`
	LargestTransaction      *Transaction    `json:"largest_transaction,omitempty"`
	RecurringKeys           []RecurringKey  `json:"recurring_keys"`
	TransactionCount        int             `json:"transaction_count"`
}

// TotalSpend sums every category total
func (si *SpendingInsights) TotalSpend() decimal.Decimal {
	total := decimal.Zero
	for _, ct := range si.CategoryTotals {
		total = total.Add(ct.Value)
	}
	return total
}

// CategoryTotalFor returns the total for one category and whether the
// category was present in the snapshot at all.
func (si *SpendingInsights) CategoryTotalFor(category string) (decimal.Decimal, bool) {
	for _, ct := range si.CategoryTotals {
		if ct.Category == category {
			return ct.Value, true
		}
	}
	return decimal.Zero, false
}
