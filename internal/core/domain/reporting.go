package domain

import (
	"sort"
	"time"
)

// CategorySpending is one row of the category spending report: total expenses
// grouped under a single category.
type CategorySpending struct {
	CategoryID       int64  `json:"categoryID"`
	CategoryName     string `json:"categoryName"`
	TotalAmount      int64  `json:"totalAmount"`
	TransactionCount int64  `json:"transactionCount"`
}

// YearMonth identifies one calendar month. Comparison is lexicographic on
// (Year, Month).
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the calendar month of t in UTC. Transaction dates are
// stored in UTC, so bucketing is always done against the stored timestamp.
func YearMonthOf(t time.Time) YearMonth {
	u := t.UTC()
	return YearMonth{Year: u.Year(), Month: u.Month()}
}

// Before reports whether ym is an earlier month than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// MonthlyTrend aggregates one calendar month of a user's activity.
type MonthlyTrend struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Net     int64 `json:"net"` // income - expense
}

// BuildMonthlyTrends buckets transactions by UTC calendar month, keeps the
// `months` most recent buckets that contain at least one transaction, and
// returns them in ascending chronological order. Months without any activity
// are not synthesized as zero rows, so the result covers the last N *active*
// months, not the last N calendar months.
func BuildMonthlyTrends(transactions []Transaction, months int) []MonthlyTrend {
	type bucket struct {
		income  int64
		expense int64
	}
	buckets := map[YearMonth]*bucket{}
	for _, txn := range transactions {
		ym := YearMonthOf(txn.TransactionDate)
		b, ok := buckets[ym]
		if !ok {
			b = &bucket{}
			buckets[ym] = b
		}
		switch txn.TransactionType {
		case Income:
			b.income += txn.Amount
		case Expense:
			b.expense += txn.Amount
		}
	}

	keys := make([]YearMonth, 0, len(buckets))
	for ym := range buckets {
		keys = append(keys, ym)
	}
	// Most recent first, then truncate to the requested window.
	sort.Slice(keys, func(i, j int) bool { return keys[j].Before(keys[i]) })
	if months > 0 && len(keys) > months {
		keys = keys[:months]
	}

	trends := make([]MonthlyTrend, 0, len(keys))
	// Reverse back to ascending chronological order for output.
	for i := len(keys) - 1; i >= 0; i-- {
		ym := keys[i]
		b := buckets[ym]
		trends = append(trends, MonthlyTrend{
			Year:    ym.Year,
			Month:   int(ym.Month),
			Income:  b.income,
			Expense: b.expense,
			Net:     b.income - b.expense,
		})
	}
	return trends
}
