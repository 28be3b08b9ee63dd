package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/services"
	"subtrack/internal/types"
)

// Dispatcher queues a generator run.
type Dispatcher interface {
	Dispatch(req services.GenerateRequest) error
}

// JobHandler serves the machine trigger endpoints.
type JobHandler struct {
	dispatcher   Dispatcher
	auditService services.AuditServicer
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(dispatcher Dispatcher, auditService services.AuditServicer) *JobHandler {
	return &JobHandler{dispatcher: dispatcher, auditService: auditService}
}

// GenerateTransactionsRequest selects what a triggered run processes. Both
// fields are optional.
type GenerateTransactionsRequest struct {
	Date           *types.Date `json:"date"`
	SubscriptionID string      `json:"subscription_id"`
}

// GenerateTransactions queues a transaction generator run.
// @Summary     Trigger transaction generation
// @Description Queues a run that charges every due subscription, or just one, as of the given date (default today)
// @Tags        jobs
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body GenerateTransactionsRequest false "Run options"
// @Success     202 {object} SuccessResponse
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Queue full"
// @Router      /jobs/generate-transactions [post]
func (h *JobHandler) GenerateTransactions(c *gin.Context) {
	var req GenerateTransactionsRequest
	if c.Request.ContentLength != 0 {
		if err := bindJSON(c, &req); err != nil {
			respondWithError(c, err)
			return
		}
	}

	run := services.GenerateRequest{SubscriptionID: req.SubscriptionID}
	if req.Date != nil && !req.Date.IsZero() {
		run.AsOf = req.Date
	}

	if err := h.dispatcher.Dispatch(run); err != nil {
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			err = apperrors.Wrap(apperrors.ErrUnavailable, err)
		}
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"subscription_id": req.SubscriptionID}
	if run.AsOf != nil {
		changes["date"] = run.AsOf.String()
	}
	h.auditService.Log("TRIGGER_GENERATION", "job", "generate-transactions", c.ClientIP(), changes)

	respondMessage(c, http.StatusAccepted, nil, "Transaction generation queued")
}
