package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"subtrack/internal/billing"
	"subtrack/internal/models"
	"subtrack/internal/pagination"
	"subtrack/internal/services"
	"subtrack/internal/types"
)

// SubscriptionHandler handles subscription requests.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServicer
	categoryService     services.CategoryServicer
	auditService        services.AuditServicer
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService services.SubscriptionServicer, categoryService services.CategoryServicer, auditService services.AuditServicer) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		categoryService:     categoryService,
		auditService:        auditService,
	}
}

// ListSubscriptionsQuery holds the list filters.
type ListSubscriptionsQuery struct {
	Status     string `form:"status" binding:"omitempty,subscription_status"`
	CategoryID string `form:"category_id"`
	IsActive   *bool  `form:"is_active"`
	Search     string `form:"search" binding:"max=255"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order" binding:"omitempty,sort_order"`
	pagination.PageRequest
}

// CreateSubscriptionRequest represents the request payload for creating a subscription.
type CreateSubscriptionRequest struct {
	Name            string                     `json:"name" binding:"required,max=255"`
	CategoryID      *string                    `json:"category_id"`
	Description     string                     `json:"description" binding:"max=255"`
	LogoURL         string                     `json:"logo_url" binding:"omitempty,url,max=2048"`
	PlanName        string                     `json:"plan_name" binding:"max=255"`
	Price           *decimal.Decimal           `json:"price" binding:"required,gte=0"`
	BillingCycle    billing.Cycle              `json:"billing_cycle" binding:"required,billing_cycle"`
	StartDate       *types.Date                `json:"start_date"`
	NextPaymentDate *types.Date                `json:"next_payment_date" binding:"required"`
	IsAutoRenew     *bool                      `json:"is_auto_renew"`
	Status          *models.SubscriptionStatus `json:"status" binding:"omitempty,subscription_status"`
	Notes           string                     `json:"notes"`
}

// UpdateSubscriptionRequest represents a partial subscription update. An
// empty category_id removes the category.
type UpdateSubscriptionRequest struct {
	Name            *string                    `json:"name" binding:"omitempty,min=1,max=255"`
	CategoryID      *string                    `json:"category_id"`
	Description     *string                    `json:"description" binding:"omitempty,max=255"`
	LogoURL         *string                    `json:"logo_url" binding:"omitempty,max=2048"`
	PlanName        *string                    `json:"plan_name" binding:"omitempty,max=255"`
	Price           *decimal.Decimal           `json:"price" binding:"omitempty,gte=0"`
	BillingCycle    *billing.Cycle             `json:"billing_cycle" binding:"omitempty,billing_cycle"`
	StartDate       *types.Date                `json:"start_date"`
	NextPaymentDate *types.Date                `json:"next_payment_date"`
	IsAutoRenew     *bool                      `json:"is_auto_renew"`
	Status          *models.SubscriptionStatus `json:"status" binding:"omitempty,subscription_status"`
	IsActive        *bool                      `json:"is_active"`
	Notes           *string                    `json:"notes"`
}

// NextPaymentRequest moves the next payment date.
type NextPaymentRequest struct {
	NextPaymentDate *types.Date `json:"next_payment_date" binding:"required"`
}

// ListSubscriptions handles listing subscriptions.
// @Summary     List subscriptions
// @Description List subscriptions with filters, sorting, optional pagination and summary stats
// @Tags        subscriptions
// @Produce     json
// @Param       status      query string false "active, paused or cancelled"
// @Param       category_id query string false "Category ID"
// @Param       is_active   query bool   false "Shorthand for status=active or not"
// @Param       search      query string false "Case-insensitive name search"
// @Param       sort_by     query string false "name, price, next_payment_date, created_at, status, billing_cycle, start_date"
// @Param       sort_order  query string false "asc or desc"
// @Param       page        query int    false "Page number"
// @Param       per_page    query int    false "Items per page; enables pagination"
// @Success     200 {object} SuccessResponse{data=services.SubscriptionList}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	var q ListSubscriptionsQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.SubscriptionFilter{
		IsActive:  q.IsActive,
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      q.PageRequest,
	}
	if q.Status != "" {
		status := models.SubscriptionStatus(q.Status)
		filter.Status = &status
	}
	if q.CategoryID != "" {
		filter.CategoryID = &q.CategoryID
	}

	list, err := h.subscriptionService.ListSubscriptions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, list)
}

// GetStats handles the global subscription summary.
// @Summary     Subscription stats
// @Tags        subscriptions
// @Produce     json
// @Success     200 {object} SuccessResponse{data=services.SubscriptionStats}
// @Router      /subscriptions/stats [get]
func (h *SubscriptionHandler) GetStats(c *gin.Context) {
	stats, err := h.subscriptionService.GetStats()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, stats)
}

// ListCategories returns the categories a subscription can be filed under.
// @Summary     Subscription categories
// @Tags        subscriptions
// @Produce     json
// @Success     200 {object} SuccessResponse{data=[]models.Category}
// @Router      /subscriptions/categories [get]
func (h *SubscriptionHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, categories)
}

// GetSubscription handles retrieving one subscription with its history.
// @Summary     Get subscription
// @Description Subscription with its last transactions, upcoming payments and payment stats
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} SuccessResponse{data=services.SubscriptionDetail}
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	detail, err := h.subscriptionService.GetSubscription(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, detail)
}

// CreateSubscription handles creating a subscription.
// @Summary     Create subscription
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Param       request body CreateSubscriptionRequest true "Subscription details"
// @Success     201 {object} SuccessResponse{data=models.Subscription}
// @Failure     400 {object} ErrorResponse "Malformed JSON"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(services.CreateSubscriptionInput{
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		PlanName:        req.PlanName,
		Price:           *req.Price,
		BillingCycle:    req.BillingCycle,
		StartDate:       req.StartDate,
		NextPaymentDate: *req.NextPaymentDate,
		IsAutoRenew:     req.IsAutoRenew,
		Status:          req.Status,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_SUBSCRIPTION", "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"name": sub.Name, "price": sub.Price.String(), "billing_cycle": sub.BillingCycle})

	respondMessage(c, http.StatusCreated, sub, "Subscription created successfully")
}

// UpdateSubscription handles a partial subscription update.
// @Summary     Update subscription
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Subscription ID"
// @Param       request body UpdateSubscriptionRequest true "Fields to change"
// @Success     200 {object} SuccessResponse{data=models.Subscription}
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /subscriptions/{id} [put]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	var req UpdateSubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := h.subscriptionService.UpdateSubscription(c.Param("id"), services.UpdateSubscriptionInput{
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		PlanName:        req.PlanName,
		Price:           req.Price,
		BillingCycle:    req.BillingCycle,
		StartDate:       req.StartDate,
		NextPaymentDate: req.NextPaymentDate,
		IsAutoRenew:     req.IsAutoRenew,
		Status:          req.Status,
		IsActive:        req.IsActive,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_SUBSCRIPTION", "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"status": sub.Status, "next_payment_date": sub.NextPaymentDate.String()})

	respondMessage(c, http.StatusOK, sub, "Subscription updated successfully")
}

// DeleteSubscription handles soft-deleting a subscription.
// @Summary     Delete subscription
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} SuccessResponse
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id := c.Param("id")
	if err := h.subscriptionService.DeleteSubscription(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_SUBSCRIPTION", "subscription", id, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, nil, "Subscription deleted successfully")
}

// RestoreSubscription handles undoing a soft delete.
// @Summary     Restore subscription
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} SuccessResponse{data=models.Subscription}
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id}/restore [post]
func (h *SubscriptionHandler) RestoreSubscription(c *gin.Context) {
	sub, err := h.subscriptionService.RestoreSubscription(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("RESTORE_SUBSCRIPTION", "subscription", sub.ID, c.ClientIP(), nil)

	respondMessage(c, http.StatusOK, sub, "Subscription restored successfully")
}

// SetNextPayment handles moving the next payment date.
// @Summary     Set next payment date
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Subscription ID"
// @Param       request body NextPaymentRequest true "New date"
// @Success     200 {object} SuccessResponse{data=models.Subscription}
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /subscriptions/{id}/next-payment [put]
func (h *SubscriptionHandler) SetNextPayment(c *gin.Context) {
	var req NextPaymentRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := h.subscriptionService.SetNextPayment(c.Param("id"), *req.NextPaymentDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("SET_NEXT_PAYMENT", "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"next_payment_date": sub.NextPaymentDate.String()})

	respondMessage(c, http.StatusOK, sub, "Next payment date updated successfully")
}

// ToggleStatus handles switching a subscription between active and paused.
// @Summary     Toggle subscription status
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} SuccessResponse{data=models.Subscription}
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id}/toggle-status [post]
func (h *SubscriptionHandler) ToggleStatus(c *gin.Context) {
	sub, err := h.subscriptionService.ToggleStatus(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("TOGGLE_SUBSCRIPTION_STATUS", "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"status": sub.Status})

	message := "Subscription paused"
	if sub.Active() {
		message = "Subscription activated"
	}
	respondMessage(c, http.StatusOK, sub, message)
}
