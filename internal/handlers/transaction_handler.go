package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/services"
	"subtrack/internal/types"
)

// TransactionHandler handles read access to generated transactions.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactionsQuery filters the transaction list. Dates are YYYY-MM-DD
// and both ends are inclusive.
type ListTransactionsQuery struct {
	From           string `form:"from"`
	To             string `form:"to"`
	Status         string `form:"status" binding:"omitempty,oneof=completed pending failed"`
	CategoryID     string `form:"category_id"`
	SubscriptionID string `form:"subscription_id"`
	pagination.PageRequest
}

// filter converts the query into a service filter.
func (q ListTransactionsQuery) filter() (services.TransactionFilter, error) {
	var filter services.TransactionFilter
	fields := map[string]string{}

	if q.From != "" {
		from, err := types.ParseDate(q.From)
		if err != nil {
			fields["from"] = "The from field is not a valid date."
		} else {
			filter.From = &from
		}
	}
	if q.To != "" {
		to, err := types.ParseDate(q.To)
		if err != nil {
			fields["to"] = "The to field is not a valid date."
		} else {
			until := to.AddDays(1)
			filter.Until = &until
		}
	}
	if len(fields) > 0 {
		return filter, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	if q.Status != "" {
		status := models.TransactionStatus(q.Status)
		filter.Status = &status
	}
	if q.CategoryID != "" {
		filter.CategoryID = &q.CategoryID
	}
	if q.SubscriptionID != "" {
		filter.SubscriptionID = &q.SubscriptionID
	}
	return filter, nil
}

// ListTransactions handles listing transactions.
// @Summary     List transactions
// @Description Paginated transactions, newest first, with their subscription and category
// @Tags        transactions
// @Produce     json
// @Param       from            query string false "First date, YYYY-MM-DD"
// @Param       to              query string false "Last date, YYYY-MM-DD"
// @Param       status          query string false "completed, pending or failed"
// @Param       category_id     query string false "Category ID"
// @Param       subscription_id query string false "Subscription ID"
// @Param       page            query int    false "Page number"
// @Param       per_page        query int    false "Items per page"
// @Success     200 {object} SuccessResponse{data=pagination.PageResponse[models.Transaction]}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q ListTransactionsQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := q.filter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := h.transactionService.ListTransactions(filter, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, page)
}

// GetTransactionByID handles retrieving a single transaction.
// @Summary     Get transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} SuccessResponse{data=models.Transaction}
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, transaction)
}
