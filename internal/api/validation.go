package api

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"studioslot/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error   string            `json:"error" example:"validation failed"`
	Details []ValidationError `json:"details"`
}

var registerOnce sync.Once

// RegisterValidators adds the timelabel, clock and isodate tags to gin's
// validator. Safe to call from every handler constructor.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("timelabel", func(fl validator.FieldLevel) bool {
			_, err := schedule.ParseTimeLabel(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := schedule.ParseClock(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
	})
}

// ValidateDate reports whether s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return Validation("Invalid date format, expected YYYY-MM-DD")
	}
	return nil
}

// RespondBindError answers a failed ShouldBindJSON with field details when
// the failure came from struct tags.
func RespondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	details := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ValidationError{
			Field:   fieldName(fe),
			Tag:     fe.Tag(),
			Message: errorMessage(fe),
		})
	}
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:   "validation failed",
		Details: details,
	})
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

func errorMessage(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "timelabel":
		return field + " must look like 2:00 PM"
	case "clock":
		return field + " must look like 2:00 PM or 14:00"
	case "isodate":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return field + " is invalid"
	}
}
