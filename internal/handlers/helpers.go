package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/logger"
	appvalidator "subtrack/internal/validator"
)

// ErrorBody is the error part of a failed response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope of a failed request.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorBody         `json:"error"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SuccessResponse is the envelope of a successful request.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// respond writes data in the success envelope.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// respondMessage writes data and a human-readable message in the success
// envelope.
func respondMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, SuccessResponse{Success: true, Data: data, Message: message})
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error:  ErrorBody{Code: appErr.Code, Message: appErr.Message},
			Errors: appErr.Fields,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    apperrors.ErrInternalServer.Code,
			Message: apperrors.ErrInternalServer.Message,
		},
	})
}

// bindJSON decodes and validates the request body into req.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return bindingError(err)
	}
	return nil
}

// bindQuery decodes and validates the query string into req.
func bindQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return bindingError(err)
	}
	return nil
}

// bindingError maps a binding failure to a 422 with per-field messages, or
// to a 400 when the payload could not be decoded at all.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = appvalidator.Message(fe)
			}
		}
		return apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Request body is empty")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed JSON")
	case errors.As(err, &typeErr):
		return apperrors.Field(typeErr.Field, "The "+typeErr.Field+" field has the wrong type.")
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}
