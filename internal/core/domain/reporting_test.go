package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

func txnAt(year int, month time.Month, day int, txnType domain.TransactionType, amount int64) domain.Transaction {
	return domain.Transaction{
		UserID:          "u1",
		TransactionType: txnType,
		Amount:          amount,
		TransactionDate: time.Date(year, month, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildMonthlyTrends_BucketsAndNets(t *testing.T) {
	txns := []domain.Transaction{
		txnAt(2025, time.January, 5, domain.Income, 300000),
		txnAt(2025, time.January, 20, domain.Expense, 120000),
		txnAt(2025, time.January, 25, domain.Expense, 30000),
		txnAt(2025, time.February, 1, domain.Income, 300000),
	}

	trends := domain.BuildMonthlyTrends(txns, 6)

	assert.Equal(t, []domain.MonthlyTrend{
		{Year: 2025, Month: 1, Income: 300000, Expense: 150000, Net: 150000},
		{Year: 2025, Month: 2, Income: 300000, Expense: 0, Net: 300000},
	}, trends)
}

func TestBuildMonthlyTrends_SkipsEmptyMonths(t *testing.T) {
	// Activity in January and March only: no zero row is synthesized for February.
	txns := []domain.Transaction{
		txnAt(2025, time.January, 10, domain.Expense, 5000),
		txnAt(2025, time.March, 10, domain.Expense, 7000),
	}

	trends := domain.BuildMonthlyTrends(txns, 6)

	assert.Len(t, trends, 2)
	assert.Equal(t, 1, trends[0].Month)
	assert.Equal(t, 3, trends[1].Month)
}

func TestBuildMonthlyTrends_KeepsMostRecentActiveMonths(t *testing.T) {
	txns := []domain.Transaction{
		txnAt(2024, time.November, 1, domain.Expense, 100),
		txnAt(2024, time.December, 1, domain.Expense, 200),
		txnAt(2025, time.January, 1, domain.Expense, 300),
		txnAt(2025, time.February, 1, domain.Expense, 400),
	}

	trends := domain.BuildMonthlyTrends(txns, 2)

	// The two most recent active months, oldest first.
	assert.Equal(t, []domain.MonthlyTrend{
		{Year: 2025, Month: 1, Income: 0, Expense: 300, Net: -300},
		{Year: 2025, Month: 2, Income: 0, Expense: 400, Net: -400},
	}, trends)
}

func TestBuildMonthlyTrends_YearBoundaryOrdering(t *testing.T) {
	txns := []domain.Transaction{
		txnAt(2025, time.January, 2, domain.Income, 100),
		txnAt(2024, time.December, 2, domain.Income, 100),
	}

	trends := domain.BuildMonthlyTrends(txns, 6)

	assert.Equal(t, 2024, trends[0].Year)
	assert.Equal(t, 12, trends[0].Month)
	assert.Equal(t, 2025, trends[1].Year)
	assert.Equal(t, 1, trends[1].Month)
}

func TestBuildMonthlyTrends_BucketsByUTC(t *testing.T) {
	// 23:00 on Jan 31 in UTC+3 is 20:00 Jan 31 UTC; 01:00 on Feb 1 in UTC+3
	// is 22:00 Jan 31 UTC. Both land in January.
	loc := time.FixedZone("UTC+3", 3*60*60)
	txns := []domain.Transaction{
		{UserID: "u1", TransactionType: domain.Expense, Amount: 100, TransactionDate: time.Date(2025, 1, 31, 23, 0, 0, 0, loc)},
		{UserID: "u1", TransactionType: domain.Expense, Amount: 100, TransactionDate: time.Date(2025, 2, 1, 1, 0, 0, 0, loc)},
	}

	trends := domain.BuildMonthlyTrends(txns, 6)

	assert.Len(t, trends, 1)
	assert.Equal(t, 1, trends[0].Month)
	assert.Equal(t, int64(200), trends[0].Expense)
}

func TestBuildMonthlyTrends_Empty(t *testing.T) {
	trends := domain.BuildMonthlyTrends(nil, 6)
	assert.Empty(t, trends)
}

func TestYearMonthBefore(t *testing.T) {
	jan := domain.YearMonth{Year: 2025, Month: time.January}
	feb := domain.YearMonth{Year: 2025, Month: time.February}
	decPrev := domain.YearMonth{Year: 2024, Month: time.December}

	assert.True(t, jan.Before(feb))
	assert.False(t, feb.Before(jan))
	assert.True(t, decPrev.Before(jan))
	assert.False(t, jan.Before(jan))
}
