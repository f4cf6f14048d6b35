package domain

import (
	"strings"
	"time"
)

// SortField selects the column transactions are ordered by.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortOrder selects the direction transactions are ordered in.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// TransactionFilter holds the criteria for listing a user's transactions.
// UserID is mandatory; every other criterion is optional and combined by AND.
type TransactionFilter struct {
	UserID          string
	TransactionType *TransactionType
	CategoryID      *int64
	PaymentMethod   *PaymentMethod
	StartDate       *time.Time
	EndDate         *time.Time
	MinAmount       *int64
	MaxAmount       *int64
	SearchQuery     *string
	SortBy          SortField
	SortOrder       SortOrder
	Skip            int
	Limit           int
}

// Normalize returns a copy of the filter with defaults applied and degenerate
// criteria dropped:
//   - amount bounds of zero or less behave as unset
//   - an empty or all-whitespace search query behaves as unset
//   - the end date is widened to 23:59:59 of its calendar day, making the
//     whole day inclusive
//   - an unrecognized sort field falls back to date ordering
//   - limit defaults to DefaultListLimit and is capped at MaxListLimit
func (f TransactionFilter) Normalize() TransactionFilter {
	if f.MinAmount != nil && *f.MinAmount <= 0 {
		f.MinAmount = nil
	}
	if f.MaxAmount != nil && *f.MaxAmount <= 0 {
		f.MaxAmount = nil
	}
	if f.SearchQuery != nil {
		q := strings.TrimSpace(*f.SearchQuery)
		if q == "" {
			f.SearchQuery = nil
		} else {
			f.SearchQuery = &q
		}
	}
	if f.EndDate != nil {
		e := endOfDay(*f.EndDate)
		f.EndDate = &e
	}
	if f.SortBy != SortByAmount {
		f.SortBy = SortByDate
	}
	if f.SortOrder != SortAsc {
		f.SortOrder = SortDesc
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	return f
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// FilterClause is a single boolean condition on a transaction. A filter is the
// conjunction of its clauses; each clause is evaluable on its own so it can be
// tested independently of any storage backend.
type FilterClause interface {
	Matches(t Transaction) bool
}

// Clauses expands a normalized filter into its clause list, the owner clause
// first. Callers should normalize the filter before expanding it.
func (f TransactionFilter) Clauses() []FilterClause {
	clauses := []FilterClause{OwnerClause{UserID: f.UserID}}
	if f.TransactionType != nil {
		clauses = append(clauses, TypeClause{Type: *f.TransactionType})
	}
	if f.CategoryID != nil {
		clauses = append(clauses, CategoryClause{CategoryID: *f.CategoryID})
	}
	if f.PaymentMethod != nil {
		clauses = append(clauses, PaymentMethodClause{Method: *f.PaymentMethod})
	}
	if f.StartDate != nil {
		clauses = append(clauses, DateFromClause{From: *f.StartDate})
	}
	if f.EndDate != nil {
		clauses = append(clauses, DateUntilClause{Until: *f.EndDate})
	}
	if f.MinAmount != nil {
		clauses = append(clauses, MinAmountClause{Min: *f.MinAmount})
	}
	if f.MaxAmount != nil {
		clauses = append(clauses, MaxAmountClause{Max: *f.MaxAmount})
	}
	if f.SearchQuery != nil {
		clauses = append(clauses, SearchClause{Query: *f.SearchQuery})
	}
	return clauses
}

// Matches reports whether the transaction satisfies every clause of the filter.
func (f TransactionFilter) Matches(t Transaction) bool {
	for _, c := range f.Clauses() {
		if !c.Matches(t) {
			return false
		}
	}
	return true
}

// OwnerClause scopes results to a single user. It is never optional.
type OwnerClause struct {
	UserID string
}

func (c OwnerClause) Matches(t Transaction) bool {
	return t.UserID == c.UserID
}

// TypeClause matches transactions of an exact type.
type TypeClause struct {
	Type TransactionType
}

func (c TypeClause) Matches(t Transaction) bool {
	return t.TransactionType == c.Type
}

// CategoryClause matches transactions in an exact category.
type CategoryClause struct {
	CategoryID int64
}

func (c CategoryClause) Matches(t Transaction) bool {
	return t.CategoryID == c.CategoryID
}

// PaymentMethodClause matches transactions paid with an exact method.
// Transactions without a payment method never match.
type PaymentMethodClause struct {
	Method PaymentMethod
}

func (c PaymentMethodClause) Matches(t Transaction) bool {
	return t.PaymentMethod != nil && *t.PaymentMethod == c.Method
}

// DateFromClause matches transactions dated at or after From.
type DateFromClause struct {
	From time.Time
}

func (c DateFromClause) Matches(t Transaction) bool {
	return !t.TransactionDate.Before(c.From)
}

// DateUntilClause matches transactions dated at or before Until.
type DateUntilClause struct {
	Until time.Time
}

func (c DateUntilClause) Matches(t Transaction) bool {
	return !t.TransactionDate.After(c.Until)
}

// MinAmountClause matches transactions with amount >= Min.
type MinAmountClause struct {
	Min int64
}

func (c MinAmountClause) Matches(t Transaction) bool {
	return t.Amount >= c.Min
}

// MaxAmountClause matches transactions with amount <= Max.
type MaxAmountClause struct {
	Max int64
}

func (c MaxAmountClause) Matches(t Transaction) bool {
	return t.Amount <= c.Max
}

// SearchClause matches transactions whose description contains the query,
// case-insensitively. Transactions without a description never match.
type SearchClause struct {
	Query string
}

func (c SearchClause) Matches(t Transaction) bool {
	if t.Description == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*t.Description), strings.ToLower(c.Query))
}
