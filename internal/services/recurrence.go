package services

import (
	"sort"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// pairKey identifies a (category, amount) pair. Amounts are keyed by their
// two-decimal rendering, matching the storage scale, because decimal values
// that compare Equal can still differ in internal representation.
type pairKey struct {
	category string
	amount   string
}

type monthKey struct {
	year  int
	month int
}

type pairMonths struct {
	amount decimal.Decimal
	months map[monthKey]struct{}
}

// detectRecurringKeys finds (category, amount) pairs observed in two or more
// distinct calendar months of the snapshot. Month identity includes the
// year, so January of consecutive years counts as two months. Two payments
// inside the same month do not make a pair recurring.
//
// The result is sorted by category enumeration order, then ascending amount,
// so identical snapshots always produce identical output. Detection runs
// fresh on every call; nothing is cached across requests.
func detectRecurringKeys(transactions []models.Transaction) []models.RecurringKey {
	pairs := make(map[pairKey]*pairMonths)

	for i := range transactions {
		t := &transactions[i]
		key := pairKey{category: t.Category, amount: t.Amount.StringFixed(2)}
		if pairs[key] == nil {
			pairs[key] = &pairMonths{
				amount: t.Amount,
				months: make(map[monthKey]struct{}),
			}
		}
		pairs[key].months[monthKey{year: t.Date.Year(), month: int(t.Date.Month())}] = struct{}{}
	}

	recurring := make([]models.RecurringKey, 0)
	for key, pm := range pairs {
		if len(pm.months) >= 2 {
			recurring = append(recurring, models.RecurringKey{
				Category: key.category,
				Amount:   pm.amount,
			})
		}
	}

	sort.Slice(recurring, func(i, j int) bool {
		ri, rj := models.CategoryRank(recurring[i].Category), models.CategoryRank(recurring[j].Category)
		if ri != rj {
			return ri < rj
		}
		return recurring[i].Amount.LessThan(recurring[j].Amount)
	})

	return recurring
}
