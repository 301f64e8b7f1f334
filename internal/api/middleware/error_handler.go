package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"speech-search/internal/api/errors"
)

// ErrorHandler recovers panics and answers with a generic internal error
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		}
		if err, ok := recovered.(error); ok {
			fields = append(fields, zap.Error(err))
		} else {
			fields = append(fields, zap.String("recovered", fmt.Sprint(recovered)))
		}
		logger.Error("Recovered from panic", fields...)

		apiErr := errors.NewInternalError("Internal server error")
		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as a JSON error body. Domain errors keep their
// kind and message; the underlying cause is attached to the gin context
// for the request logger and never sent to the client.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromDomain(err)
	apiErr.RequestID = GetRequestID(c)
	_ = c.Error(err)

	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
