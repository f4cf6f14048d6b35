package dto

import (
	"time"

	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// CreateTransactionRequest defines the payload for recording a transaction.
// Amount is in minor currency units and must be strictly positive; polarity
// comes from TransactionType. TransactionDate defaults to the current time
// when omitted and may be back- or future-dated.
type CreateTransactionRequest struct {
	Amount          int64      `json:"amount" binding:"required,gt=0"`
	TransactionType string     `json:"transactionType" binding:"required,txntype"`
	CategoryID      int64      `json:"categoryID" binding:"required"`
	PaymentMethod   *string    `json:"paymentMethod" binding:"omitempty,paymethod"`
	Description     *string    `json:"description"`
	TransactionDate *time.Time `json:"transactionDate"`
}

// UpdateTransactionRequest defines a partial transaction update. Pointer
// fields distinguish omitted fields from zero values; only supplied fields
// overwrite.
type UpdateTransactionRequest struct {
	Amount          *int64     `json:"amount" binding:"omitempty,gt=0"`
	TransactionType *string    `json:"transactionType" binding:"omitempty,txntype"`
	CategoryID      *int64     `json:"categoryID"`
	PaymentMethod   *string    `json:"paymentMethod" binding:"omitempty,paymethod"`
	Description     *string    `json:"description"`
	TransactionDate *time.Time `json:"transactionDate"`
}

// ListTransactionsParams defines the query parameters understood by the
// transaction list endpoint. Dates are date-only; the end date is inclusive
// through the end of that calendar day.
type ListTransactionsParams struct {
	TransactionType *string    `form:"transaction_type" binding:"omitempty,txntype"`
	CategoryID      *int64     `form:"category_id"`
	PaymentMethod   *string    `form:"payment_method" binding:"omitempty,paymethod"`
	StartDate       *time.Time `form:"start_date" time_format:"2006-01-02" time_utc:"1"`
	EndDate         *time.Time `form:"end_date" time_format:"2006-01-02" time_utc:"1"`
	MinAmount       *int64     `form:"min_amount"`
	MaxAmount       *int64     `form:"max_amount"`
	SearchQuery     *string    `form:"search_query"`
	SortBy          string     `form:"sort_by,default=date"`
	SortOrder       string     `form:"sort_order,default=desc"`
	Skip            int        `form:"skip,default=0"`
	Limit           int        `form:"limit,default=100"`
}

// ToFilter builds the domain filter for these parameters, scoped to userID.
// The result still needs Normalize before execution.
func (p ListTransactionsParams) ToFilter(userID string) domain.TransactionFilter {
	f := domain.TransactionFilter{
		UserID:      userID,
		CategoryID:  p.CategoryID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		MinAmount:   p.MinAmount,
		MaxAmount:   p.MaxAmount,
		SearchQuery: p.SearchQuery,
		SortBy:      domain.SortField(p.SortBy),
		SortOrder:   domain.SortOrder(p.SortOrder),
		Skip:        p.Skip,
		Limit:       p.Limit,
	}
	if p.TransactionType != nil {
		t := domain.TransactionType(*p.TransactionType)
		f.TransactionType = &t
	}
	if p.PaymentMethod != nil {
		m := domain.PaymentMethod(*p.PaymentMethod)
		f.PaymentMethod = &m
	}
	return f
}

// TransactionResponse is the public representation of a transaction.
type TransactionResponse struct {
	TransactionID   int64             `json:"transactionID"`
	UserID          string            `json:"userID"`
	CategoryID      int64             `json:"categoryID"`
	Amount          int64             `json:"amount"`
	TransactionType string            `json:"transactionType"`
	PaymentMethod   *string           `json:"paymentMethod,omitempty"`
	Description     *string           `json:"description,omitempty"`
	TransactionDate time.Time         `json:"transactionDate"`
	Category        *CategoryResponse `json:"category,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
}

// ListTransactionsResponse wraps a transaction page with the total count of
// matches ignoring the pagination window.
type ListTransactionsResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int64                 `json:"total"`
}

// ToTransactionResponse converts a domain transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	var method *string
	if txn.PaymentMethod != nil {
		m := string(*txn.PaymentMethod)
		method = &m
	}
	resp := TransactionResponse{
		TransactionID:   txn.TransactionID,
		UserID:          txn.UserID,
		CategoryID:      txn.CategoryID,
		Amount:          txn.Amount,
		TransactionType: string(txn.TransactionType),
		PaymentMethod:   method,
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate,
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.UpdatedAt,
	}
	if txn.Category != nil {
		cat := ToCategoryResponse(txn.Category)
		resp.Category = &cat
	}
	return resp
}

// ToListTransactionsResponse converts a transaction page to the list response DTO.
func ToListTransactionsResponse(txns []domain.Transaction, total int64) ListTransactionsResponse {
	items := make([]TransactionResponse, len(txns))
	for i := range txns {
		items[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Items: items, Total: total}
}
