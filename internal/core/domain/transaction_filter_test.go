package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

func ptrI64(v int64) *int64          { return &v }
func ptrStr(v string) *string        { return &v }
func ptrTime(v time.Time) *time.Time { return &v }

func TestNormalize_AmountBounds(t *testing.T) {
	tests := []struct {
		name    string
		min     *int64
		max     *int64
		wantMin *int64
		wantMax *int64
	}{
		{"positive bounds kept", ptrI64(100), ptrI64(500), ptrI64(100), ptrI64(500)},
		{"zero min dropped", ptrI64(0), ptrI64(500), nil, ptrI64(500)},
		{"negative max dropped", ptrI64(100), ptrI64(-1), ptrI64(100), nil},
		{"both zero dropped", ptrI64(0), ptrI64(0), nil, nil},
		{"unset stays unset", nil, nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.TransactionFilter{UserID: "u1", MinAmount: tt.min, MaxAmount: tt.max}.Normalize()
			assert.Equal(t, tt.wantMin, f.MinAmount)
			assert.Equal(t, tt.wantMax, f.MaxAmount)
		})
	}
}

func TestNormalize_SearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		query *string
		want  *string
	}{
		{"kept", ptrStr("groceries"), ptrStr("groceries")},
		{"trimmed", ptrStr("  coffee "), ptrStr("coffee")},
		{"blank dropped", ptrStr("   "), nil},
		{"empty dropped", ptrStr(""), nil},
		{"unset stays unset", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.TransactionFilter{UserID: "u1", SearchQuery: tt.query}.Normalize()
			assert.Equal(t, tt.want, f.SearchQuery)
		})
	}
}

func TestNormalize_EndDateWidenedToEndOfDay(t *testing.T) {
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	f := domain.TransactionFilter{UserID: "u1", EndDate: &end}.Normalize()

	want := time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, want, *f.EndDate)

	// A transaction late on the end day is still in range.
	late := domain.Transaction{
		UserID:          "u1",
		TransactionDate: time.Date(2025, 3, 15, 22, 30, 0, 0, time.UTC),
	}
	assert.True(t, f.Matches(late))

	// Midnight of the next day is out of range.
	nextDay := domain.Transaction{
		UserID:          "u1",
		TransactionDate: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, f.Matches(nextDay))
}

func TestNormalize_SortDefaults(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    domain.SortField
		sortOrder domain.SortOrder
		wantBy    domain.SortField
		wantOrder domain.SortOrder
	}{
		{"defaults applied", "", "", domain.SortByDate, domain.SortDesc},
		{"amount asc kept", domain.SortByAmount, domain.SortAsc, domain.SortByAmount, domain.SortAsc},
		{"unknown field falls back to date", "balance", domain.SortDesc, domain.SortByDate, domain.SortDesc},
		{"unknown order falls back to desc", domain.SortByDate, "sideways", domain.SortByDate, domain.SortDesc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.TransactionFilter{UserID: "u1", SortBy: tt.sortBy, SortOrder: tt.sortOrder}.Normalize()
			assert.Equal(t, tt.wantBy, f.SortBy)
			assert.Equal(t, tt.wantOrder, f.SortOrder)
		})
	}
}

func TestNormalize_Window(t *testing.T) {
	f := domain.TransactionFilter{UserID: "u1", Skip: -5, Limit: 0}.Normalize()
	assert.Equal(t, 0, f.Skip)
	assert.Equal(t, domain.DefaultListLimit, f.Limit)

	f = domain.TransactionFilter{UserID: "u1", Limit: 5000}.Normalize()
	assert.Equal(t, domain.MaxListLimit, f.Limit)
}

func TestClauses_OwnerAlwaysFirst(t *testing.T) {
	f := domain.TransactionFilter{UserID: "u1"}.Normalize()
	clauses := f.Clauses()
	assert.Len(t, clauses, 1)
	assert.Equal(t, domain.OwnerClause{UserID: "u1"}, clauses[0])

	income := domain.Income
	f.TransactionType = &income
	f.MinAmount = ptrI64(100)
	clauses = f.Clauses()
	assert.Len(t, clauses, 3)
	assert.Equal(t, domain.OwnerClause{UserID: "u1"}, clauses[0])
}

func TestFilterMatches_CombinesWithAnd(t *testing.T) {
	card := domain.Card
	expense := domain.Expense
	txn := domain.Transaction{
		UserID:          "u1",
		CategoryID:      3,
		Amount:          2500,
		TransactionType: domain.Expense,
		PaymentMethod:   &card,
		Description:     ptrStr("Weekly Groceries at the market"),
		TransactionDate: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}

	f := domain.TransactionFilter{
		UserID:          "u1",
		TransactionType: &expense,
		CategoryID:      ptrI64(3),
		PaymentMethod:   &card,
		StartDate:       ptrTime(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:         ptrTime(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)),
		MinAmount:       ptrI64(1000),
		MaxAmount:       ptrI64(5000),
		SearchQuery:     ptrStr("groceries"),
	}.Normalize()

	assert.True(t, f.Matches(txn))

	// Any single failing clause rejects the transaction.
	otherOwner := txn
	otherOwner.UserID = "u2"
	assert.False(t, f.Matches(otherOwner))

	tooCheap := txn
	tooCheap.Amount = 500
	assert.False(t, f.Matches(tooCheap))

	wrongCategory := txn
	wrongCategory.CategoryID = 4
	assert.False(t, f.Matches(wrongCategory))
}

func TestSearchClause_CaseInsensitive(t *testing.T) {
	clause := domain.SearchClause{Query: "GROCERIES"}
	assert.True(t, clause.Matches(domain.Transaction{Description: ptrStr("weekly groceries")}))
	assert.False(t, clause.Matches(domain.Transaction{Description: ptrStr("rent")}))
	assert.False(t, clause.Matches(domain.Transaction{Description: nil}))
}

func TestPaymentMethodClause_NilMethodNeverMatches(t *testing.T) {
	clause := domain.PaymentMethodClause{Method: domain.Cash}
	assert.False(t, clause.Matches(domain.Transaction{PaymentMethod: nil}))

	cash := domain.Cash
	assert.True(t, clause.Matches(domain.Transaction{PaymentMethod: &cash}))

	card := domain.Card
	assert.False(t, clause.Matches(domain.Transaction{PaymentMethod: &card}))
}

func TestDateClauses_BoundariesInclusive(t *testing.T) {
	boundary := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	from := domain.DateFromClause{From: boundary}
	until := domain.DateUntilClause{Until: boundary}

	at := domain.Transaction{TransactionDate: boundary}
	assert.True(t, from.Matches(at))
	assert.True(t, until.Matches(at))

	before := domain.Transaction{TransactionDate: boundary.Add(-time.Second)}
	assert.False(t, from.Matches(before))
	assert.True(t, until.Matches(before))
}
