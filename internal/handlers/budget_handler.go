package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/services"
	"subtrack/internal/types"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
	now           func() time.Time
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		auditService:  auditService,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// MonthQuery selects a calendar month; zero values mean the current month.
type MonthQuery struct {
	Year  int `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// BudgetTransactionsQuery filters the budget transaction list.
type BudgetTransactionsQuery struct {
	MonthQuery
	CategoryID string `form:"category_id"`
	pagination.PageRequest
}

// AnalyticsQuery selects the analytics range. Dates are YYYY-MM-DD.
type AnalyticsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// UpsertBudgetRequest sets a budget limit.
type UpsertBudgetRequest struct {
	CategoryID  *string             `json:"category_id"`
	Name        string              `json:"name" binding:"max=255"`
	LimitAmount *decimal.Decimal    `json:"limit_amount" binding:"required,gte=0"`
	Period      models.BudgetPeriod `json:"period" binding:"required,budget_period"`
	Year        *int                `json:"year" binding:"omitempty,min=2000,max=2100"`
	Month       *int                `json:"month" binding:"omitempty,min=1,max=12"`
}

// TotalBudgetRequest sets the whole-account monthly budget.
type TotalBudgetRequest struct {
	MonthlyBudget *decimal.Decimal `json:"monthly_budget" binding:"required,gte=0"`
}

// BudgetTransactionsResponse is a page of budget transactions.
type BudgetTransactionsResponse struct {
	Transactions []models.Transaction            `json:"transactions"`
	Pagination   pagination.Meta                 `json:"pagination"`
	Summary      services.TransactionPageSummary `json:"summary"`
}

func (h *BudgetHandler) month(q MonthQuery) (int, time.Month) {
	now := h.now()
	year, month := now.Year(), now.Month()
	if q.Year != 0 {
		year = q.Year
	}
	if q.Month != 0 {
		month = time.Month(q.Month)
	}
	return year, month
}

// GetOverview handles the monthly budget page.
// @Summary     Budget overview
// @Description Spend of the month against the total budget and per-category limits, with chart data and alerts
// @Tags        budget
// @Produce     json
// @Param       year  query int false "Year (default current)"
// @Param       month query int false "Month 1-12 (default current)"
// @Success     200 {object} SuccessResponse{data=services.BudgetOverview}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /budget [get]
func (h *BudgetHandler) GetOverview(c *gin.Context) {
	var q MonthQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	year, month := h.month(q)
	overview, err := h.budgetService.GetOverview(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, overview)
}

// UpsertBudget handles creating or updating a budget limit.
// @Summary     Set a budget limit
// @Description Creates or updates the budget for a category (or the whole account), period, year and month
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body UpsertBudgetRequest true "Budget limit"
// @Success     200 {object} SuccessResponse{data=models.Budget}
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /budget [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.UpsertBudget(services.UpsertBudgetInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		LimitAmount: *req.LimitAmount,
		Period:      req.Period,
		Year:        req.Year,
		Month:       req.Month,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPSERT_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"limit_amount": budget.LimitAmount.String(), "period": budget.Period, "year": budget.Year})

	respondMessage(c, http.StatusOK, budget, "Budget saved successfully")
}

// SetTotalBudget handles changing the whole-account monthly budget.
// @Summary     Set the total monthly budget
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body TotalBudgetRequest true "Monthly budget"
// @Success     200 {object} SuccessResponse{data=models.UserPreference}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /budget/total [put]
func (h *BudgetHandler) SetTotalBudget(c *gin.Context) {
	var req TotalBudgetRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	pref, err := h.budgetService.SetMonthlyBudget(*req.MonthlyBudget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("SET_TOTAL_BUDGET", "user_preference", pref.ID, c.ClientIP(),
		map[string]interface{}{"monthly_budget": pref.MonthlyBudget.String()})

	respondMessage(c, http.StatusOK, pref, "Monthly budget updated successfully")
}

// ListCategories handles the category options of the budget page.
// @Summary     Budget categories
// @Tags        budget
// @Produce     json
// @Success     200 {object} SuccessResponse{data=[]services.CategoryOption}
// @Router      /budget/categories [get]
func (h *BudgetHandler) ListCategories(c *gin.Context) {
	options, err := h.budgetService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, options)
}

// ListTransactions handles the month's completed transactions.
// @Summary     Budget transactions
// @Tags        budget
// @Produce     json
// @Param       year        query int    false "Year (default current)"
// @Param       month       query int    false "Month 1-12 (default current)"
// @Param       category_id query string false "Category ID"
// @Param       page        query int    false "Page number"
// @Param       per_page    query int    false "Items per page"
// @Success     200 {object} SuccessResponse{data=BudgetTransactionsResponse}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /budget/transactions [get]
func (h *BudgetHandler) ListTransactions(c *gin.Context) {
	var q BudgetTransactionsQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	year, month := h.month(q.MonthQuery)
	query := services.BudgetTransactionQuery{Year: year, Month: month, Page: q.PageRequest}
	if q.CategoryID != "" {
		query.CategoryID = &q.CategoryID
	}

	result, err := h.budgetService.ListTransactions(query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, BudgetTransactionsResponse{
		Transactions: result.Page.Data,
		Pagination:   result.Page.Meta,
		Summary:      result.Summary,
	})
}

// GetAnalytics handles daily and per-category spend over a range.
// @Summary     Budget analytics
// @Tags        budget
// @Produce     json
// @Param       start_date query string false "YYYY-MM-DD (default first day of the month)"
// @Param       end_date   query string false "YYYY-MM-DD (default last day of the month)"
// @Success     200 {object} SuccessResponse{data=services.BudgetAnalytics}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /budget/analytics [get]
func (h *BudgetHandler) GetAnalytics(c *gin.Context) {
	var q AnalyticsQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	today := types.DateOf(h.now())
	start := types.NewDate(today.Year(), today.Month(), 1)
	end := types.DateOf(start.AddDate(0, 1, -1))

	fields := map[string]string{}
	if q.StartDate != "" {
		d, err := types.ParseDate(q.StartDate)
		if err != nil {
			fields["start_date"] = "The start date is not a valid date."
		}
		start = d
	}
	if q.EndDate != "" {
		d, err := types.ParseDate(q.EndDate)
		if err != nil {
			fields["end_date"] = "The end date is not a valid date."
		}
		end = d
	}
	if len(fields) > 0 {
		respondWithError(c, apperrors.WithFields(apperrors.ErrValidation, fields))
		return
	}

	analytics, err := h.budgetService.GetAnalytics(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, analytics)
}

// ListLimits handles listing the stored budget limits of a month.
// @Summary     List budget limits
// @Tags        budget
// @Produce     json
// @Param       year  query int false "Year (default current)"
// @Param       month query int false "Month 1-12; all periods of the year when omitted"
// @Success     200 {object} SuccessResponse{data=[]models.Budget}
// @Router      /budget/limits [get]
func (h *BudgetHandler) ListLimits(c *gin.Context) {
	var q MonthQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	year := q.Year
	if year == 0 {
		year = h.now().Year()
	}
	var month *int
	if q.Month != 0 {
		month = &q.Month
	}

	budgets, err := h.budgetService.ListBudgets(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, budgets)
}

// DeleteLimit handles removing a budget limit.
// @Summary     Delete budget limit
// @Tags        budget
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} SuccessResponse
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budget/limits/{id} [delete]
func (h *BudgetHandler) DeleteLimit(c *gin.Context) {
	id := c.Param("id")
	if err := h.budgetService.DeleteBudget(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_BUDGET", "budget", id, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, nil, "Budget deleted successfully")
}
