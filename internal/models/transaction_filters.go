package models

import "time"

// TransactionFilters narrows a transaction listing. Zero values mean
// "no filter"; Search matches the description case-insensitively.
type TransactionFilters struct {
	Category      string
	PaymentMethod string
	Status        string
	Search        string
	StartDate     *time.Time
	EndDate       *time.Time
}

// IsEmpty returns true when no filter is set
func (f TransactionFilters) IsEmpty() bool {
	return f.Category == "" && f.PaymentMethod == "" && f.Status == "" &&
		f.Search == "" && f.StartDate == nil && f.EndDate == nil
}
