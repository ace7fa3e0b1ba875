package services

import (
	"sort"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The aggregation helpers below are pure functions over a transaction
// snapshot. They never mutate their input and carry full decimal precision;
// rounding happens only where amounts are rendered for display.

// calculateCategoryTotals sums spend per category in the stable category
// order. Categories with no transactions in the snapshot are omitted rather
// than reported as zero.
func calculateCategoryTotals(transactions []models.Transaction) []models.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	totals := make([]models.CategoryTotal, 0, len(sums))
	for _, category := range models.AllCategories() {
		if sum, ok := sums[category]; ok {
			totals = append(totals, models.CategoryTotal{
				Category: category,
				Value:    sum,
			})
		}
	}
	return totals
}

// calculateDailyTrend sums spend per day-of-month, ascending by day. Days
// without spend do not appear.
func calculateDailyTrend(transactions []models.Transaction) []models.SpendingPoint {
	sums := make(map[int]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		day := t.Date.Day()
		sums[day] = sums[day].Add(t.Amount)
	}

	days := make([]int, 0, len(sums))
	for day := range sums {
		days = append(days, day)
	}
	sort.Ints(days)

	trend := make([]models.SpendingPoint, 0, len(days))
	for _, day := range days {
		trend = append(trend, models.SpendingPoint{
			Day:    day,
			Amount: sums[day],
		})
	}
	return trend
}

// highestSpendingCategory returns the category with the largest total. Ties
// resolve to the category appearing first in the stable enumeration order,
// which the strict > comparison over an ordered slice guarantees.
func highestSpendingCategory(totals []models.CategoryTotal) string {
	if len(totals) == 0 {
		return ""
	}

	best := totals[0]
	for _, ct := range totals[1:] {
		if ct.Value.GreaterThan(best.Value) {
			best = ct
		}
	}
	return best.Category
}

// lowestSpendingCategory mirrors highestSpendingCategory with a strict <
// comparison, so ties also resolve to the earlier category.
func lowestSpendingCategory(totals []models.CategoryTotal) string {
	if len(totals) == 0 {
		return ""
	}

	best := totals[0]
	for _, ct := range totals[1:] {
		if ct.Value.LessThan(best.Value) {
			best = ct
		}
	}
	return best.Category
}

// dailyAverageSpending divides total spend by the number of distinct days
// with at least one transaction. Inactive days do not dilute the average.
func dailyAverageSpending(transactions []models.Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	activeDays := make(map[string]struct{})
	for i := range transactions {
		t := &transactions[i]
		total = total.Add(t.Amount)
		activeDays[t.Date.Format("2006-01-02")] = struct{}{}
	}

	return total.Div(decimal.NewFromInt(int64(len(activeDays))))
}

// largestTransaction returns the transaction with the greatest amount, or
// nil for an empty snapshot. Amount ties resolve to the earliest date.
func largestTransaction(transactions []models.Transaction) *models.Transaction {
	if len(transactions) == 0 {
		return nil
	}

	largest := &transactions[0]
	for i := range transactions[1:] {
		t := &transactions[i+1]
		if t.Amount.GreaterThan(largest.Amount) {
			largest = t
			continue
		}
		if t.Amount.Equal(largest.Amount) && t.Date.Before(largest.Date) {
			largest = t
		}
	}

	out := *largest
	return &out
}

// buildSpendingInsights assembles the full aggregation result for one
// owner's snapshot
func buildSpendingInsights(ownerID uuid.UUID, transactions []models.Transaction) *models.SpendingInsights {
	totals := calculateCategoryTotals(transactions)

	return &models.SpendingInsights{
		OwnerID:                 ownerID,
		CategoryTotals:          totals,
		DailyTrend:              calculateDailyTrend(transactions),
		HighestSpendingCategory: highestSpendingCategory(totals),
		LowestSpendingCategory:  lowestSpendingCategory(totals),
		DailyAverageSpending:    dailyAverageSpending(transactions),
		LargestTransaction:      largestTransaction(transactions),
		RecurringKeys:           detectRecurringKeys(transactions),
		TransactionCount:        len(transactions),
	}
}
