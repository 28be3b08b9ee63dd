package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subtrack/internal/services"
)

// DashboardHandler serves the dashboard views.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// SummaryQuery selects the summary period.
type SummaryQuery struct {
	Period string `form:"period" binding:"omitempty,summary_period"`
}

// GetOverview handles the dashboard page.
// @Summary     Dashboard overview
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} SuccessResponse{data=services.DashboardOverview}
// @Router      /dashboard [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, overview)
}

// GetNotifications handles the dashboard notices.
// @Summary     Dashboard notifications
// @Description Budget warnings, tomorrow's payments and today's charges
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} SuccessResponse{data=[]services.Notification}
// @Router      /dashboard/notifications [get]
func (h *DashboardHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.dashboardService.GetNotifications()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, notifications)
}

// GetSummary handles spend totals over a period.
// @Summary     Period summary
// @Tags        dashboard
// @Produce     json
// @Param       period query string false "today, week, month (default) or year"
// @Success     200 {object} SuccessResponse{data=services.PeriodSummary}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	var q SummaryQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}
	if q.Period == "" {
		q.Period = services.PeriodMonth
	}

	summary, err := h.dashboardService.GetSummary(q.Period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, summary)
}
