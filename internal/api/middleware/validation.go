package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"speech-search/internal/api/errors"
)

// ValidateQuery binds and validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return bindingError("Invalid query parameters", "query", err)
	}
	return nil
}

// ValidateForm binds and validates a multipart form, including file fields.
// A request that is not multipart binds nothing and leaves req zeroed.
func ValidateForm(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.FormMultipart)
	if err == nil || stderrors.Is(err, http.ErrNotMultipart) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.NewBadRequestError("Uploaded file is too large")
	}
	return bindingError("Invalid form data", "form", err)
}

// BodyLimit caps the request body at limit bytes
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

func bindingError(message, fallbackField string, err error) error {
	details := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field())

			switch fieldError.Tag() {
			case "required":
				details[field] = "is required"
			case "max":
				details[field] = "is too long"
			case "oneof":
				details[field] = "must be one of the allowed values"
			default:
				details[field] = "is invalid"
			}
		}
	} else {
		details[fallbackField] = err.Error()
	}

	return errors.NewValidationError(message, details)
}
