package dto

import (
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// CategorySpendingParams defines query parameters for the category spending report.
type CategorySpendingParams struct {
	Limit int `form:"limit,default=10"`
}

// MonthlyTrendsParams defines query parameters for the monthly trends report.
type MonthlyTrendsParams struct {
	Months int `form:"months,default=6"`
}

// CategorySpendingResponse is one row of the category spending report.
type CategorySpendingResponse struct {
	CategoryID       int64  `json:"categoryID"`
	CategoryName     string `json:"categoryName"`
	TotalAmount      int64  `json:"totalAmount"`
	TransactionCount int64  `json:"transactionCount"`
}

// MonthlyTrendResponse is one calendar-month bucket of the trends report.
type MonthlyTrendResponse struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Net     int64 `json:"net"`
}

// ToCategorySpendingResponses converts the domain report rows to DTOs.
func ToCategorySpendingResponses(rows []domain.CategorySpending) []CategorySpendingResponse {
	out := make([]CategorySpendingResponse, len(rows))
	for i, r := range rows {
		out[i] = CategorySpendingResponse{
			CategoryID:       r.CategoryID,
			CategoryName:     r.CategoryName,
			TotalAmount:      r.TotalAmount,
			TransactionCount: r.TransactionCount,
		}
	}
	return out
}

// ToMonthlyTrendResponses converts the domain trend buckets to DTOs.
func ToMonthlyTrendResponses(trends []domain.MonthlyTrend) []MonthlyTrendResponse {
	out := make([]MonthlyTrendResponse, len(trends))
	for i, t := range trends {
		out[i] = MonthlyTrendResponse{
			Year:    t.Year,
			Month:   t.Month,
			Income:  t.Income,
			Expense: t.Expense,
			Net:     t.Net,
		}
	}
	return out
}
