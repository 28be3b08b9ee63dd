package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/services"
	appvalidator "subtrack/internal/validator"
)

// PreferenceHandler serves the global settings.
type PreferenceHandler struct {
	preferenceService services.PreferenceServicer
	auditService      services.AuditServicer
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService services.PreferenceServicer, auditService services.AuditServicer) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService, auditService: auditService}
}

// UpdatePreferencesRequest holds optional preference changes.
type UpdatePreferencesRequest struct {
	MonthlyBudget    *decimal.Decimal `json:"monthly_budget" binding:"omitempty,gte=0"`
	Currency         *string          `json:"currency" binding:"omitempty,len=3"`
	NotifyUpcoming   *bool            `json:"notify_upcoming"`
	NotifyOverbudget *bool            `json:"notify_overbudget"`
	WeeklyReport     *bool            `json:"weekly_report"`
}

// GetPreferences returns the settings row.
// @Summary     Get preferences
// @Tags        preferences
// @Produce     json
// @Success     200 {object} SuccessResponse{data=models.UserPreference}
// @Router      /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	pref, err := h.preferenceService.GetPreferences()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respond(c, http.StatusOK, pref)
}

// UpdatePreferences changes the provided settings.
// @Summary     Update preferences
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Param       request body UpdatePreferencesRequest true "Settings to change"
// @Success     200 {object} SuccessResponse{data=models.UserPreference}
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /preferences [put]
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if req.Currency != nil {
		if !appvalidator.IsCurrency(*req.Currency) {
			respondWithError(c, apperrors.Field("currency", "The currency field must be an ISO 4217 currency code."))
			return
		}
		upper := strings.ToUpper(*req.Currency)
		req.Currency = &upper
	}

	pref, err := h.preferenceService.UpdatePreferences(services.PreferenceInput{
		MonthlyBudget:    req.MonthlyBudget,
		Currency:         req.Currency,
		NotifyUpcoming:   req.NotifyUpcoming,
		NotifyOverbudget: req.NotifyOverbudget,
		WeeklyReport:     req.WeeklyReport,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_PREFERENCES", "user_preference", pref.ID, c.ClientIP(),
		map[string]interface{}{"monthly_budget": pref.MonthlyBudget.String(), "currency": pref.Currency})

	respondMessage(c, http.StatusOK, pref, "Preferences updated successfully")
}
