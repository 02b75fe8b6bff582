package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
)

// Fixed client-facing messages.
const (
	MsgInvalidID       = "Invalid id"
	MsgInvalidIDFormat = "Invalid id format"
	MsgNotFound        = "Todo not found"
	MsgRouteNotFound   = "Route not found"
	MsgInvalidJSON     = "Invalid JSON body"
	MsgBodyTooLarge    = "Request body too large"
	MsgUnavailable     = "Service temporarily unavailable"
	MsgTimeout         = "Request timed out"
	MsgInternalServer  = "Internal server error"
)

const maxStatus = 599

// ErrorResponse is the envelope every error response is written in:
//
//	{"error":{"message":"..."}}
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the client-facing message.
type ErrorBody struct {
	Message string `json:"message"`
}

// StatusError is an error that names its own HTTP status. Handlers and
// middleware use it for failures that have no domain meaning, such as a
// malformed request body.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

// NewStatusError creates a StatusError with the given status and message.
func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

// Error returns the client-facing message.
func (e *StatusError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status.
func (e *StatusError) StatusCode() int {
	return e.Status
}

// Unwrap returns the underlying cause, if any.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// statusCoder is satisfied by any error that knows its HTTP status.
type statusCoder interface {
	error
	StatusCode() int
}

// NewErrorResponse maps err to an HTTP status and envelope. Checks run in a
// fixed order so the first matching kind wins.
func NewErrorResponse(err error) (int, ErrorResponse) {
	status, msg := classify(err)
	return status, ErrorResponse{Error: ErrorBody{Message: msg}}
}

func classify(err error) (int, string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Message()
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		status := sc.StatusCode()
		if status < http.StatusBadRequest || status > maxStatus {
			status = http.StatusInternalServerError
		}
		return status, messageOr(sc, MsgInternalServer)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, MsgInvalidIDFormat
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, MsgUnavailable
	default:
		return http.StatusInternalServerError, messageOr(err, MsgInternalServer)
	}
}

func messageOr(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

// WriteErrorResponse writes the error envelope for err. Server-side
// failures are logged with the request-scoped logger.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := NewErrorResponse(err)

	logger := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}
