package api

import (
	"errors"
	"net/http"

	"studioslot/internal/logger"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindUnauthorized
)

// Error is a failure the caller can act on. Anything else reaching a handler
// is reported as an internal error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// Wrap attaches cause to a new error of kind k.
func Wrap(k Kind, msg string, cause error) *Error {
	return &Error{Kind: k, Message: msg, Err: cause}
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// StatusOf maps err to an HTTP status.
func StatusOf(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse. Internal errors are logged and
// replaced by fallback so storage details never reach the client.
func RespondError(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, "error", err, "path", c.FullPath())
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}

	var apiErr *Error
	errors.As(err, &apiErr)
	c.JSON(status, ErrorResponse{Error: apiErr.Message})
}
