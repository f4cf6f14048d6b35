package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jkim-dev/budget_tracker_app/internal/core/ports/services"
	"github.com/jkim-dev/budget_tracker_app/internal/dto"
	"github.com/jkim-dev/budget_tracker_app/internal/middleware"
)

// TransactionHandler handles transaction CRUD and listing requests. All
// routes operate on the authenticated user's own transactions only.
type TransactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactionService portssvc.TransactionSvcFacade) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return "", false
	}
	return userID, true
}

// CreateTransaction godoc
// @Summary Record a transaction
// @Description Records an income or expense transaction. Amount is in minor
// @Description currency units and must be positive; the transaction date
// @Description defaults to now and may be back- or future-dated.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid payload or unknown category"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// GetTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse "Transaction owned by another user"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// ListTransactions godoc
// @Summary List transactions
// @Description Lists the user's transactions with optional filters, sorting
// @Description and offset pagination. All supplied filters combine with AND.
// @Description The response total counts every match ignoring the window.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param transaction_type query string false "INCOME or EXPENSE"
// @Param category_id query int false "Category ID"
// @Param payment_method query string false "CASH or CARD"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param min_amount query int false "Minimum amount in minor units"
// @Param max_amount query int false "Maximum amount in minor units"
// @Param search_query query string false "Case-insensitive description substring"
// @Param sort_by query string false "date or amount" default(date)
// @Param sort_order query string false "asc or desc" default(desc)
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size, capped at 1000" default(100)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	items, total, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(items, total))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Partially updates an owned transaction; only supplied fields change.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse "Transaction owned by another user"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 204 "Transaction deleted"
// @Failure 403 {object} ErrorResponse "Transaction owned by another user"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
