package http

import (
	"errors"
	"net/http"

	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Failure stages reported by the workflow failure counter.
const (
	stageValidation = "validation"
	stagePayment    = "payment"
	stageStorage    = "storage"
	stageNotFound   = "not_found"
)

// classify maps an error to its HTTP status and workflow stage. Stage is empty
// for errors that are not workflow failures.
func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, ""
	case errors.Is(err, errs.ErrInvalidOrder):
		return http.StatusUnprocessableEntity, stageValidation
	case errors.Is(err, errs.ErrOrderNotFound):
		return http.StatusNotFound, stageNotFound
	case errors.Is(err, errs.ErrPaymentFailed):
		return http.StatusPaymentRequired, stagePayment
	case errors.Is(err, errs.ErrStorageFailed):
		return http.StatusServiceUnavailable, stageStorage
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, ""
	default:
		return http.StatusInternalServerError, ""
	}
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	status, stage := classify(err)
	if stage != "" {
		s.metrics.ObserveFailure(stage)
	}

	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message = httpMessage(httpErr)
	}
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", status,
			"error", err,
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

// errorHandler renders errors that never reached a Server method, such as
// unknown routes and rejected requests, in the API's Error shape.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = httpMessage(httpErr)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, Error{Code: status, Message: message})
}

func httpMessage(err *echo.HTTPError) string {
	if m, ok := err.Message.(string); ok {
		return m
	}
	return http.StatusText(err.Code)
}
