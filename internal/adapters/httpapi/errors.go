// internal/adapters/httpapi/errors.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

// statusFor maps an error kind to its HTTP status. Not-found is a 400.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput, domain.KindNotFound:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the error message as plain text.
func writeError(c *gin.Context, logger *zap.Logger, span trace.Span, err error) {
	status := statusFor(err)
	span.RecordError(err)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, err.Error())
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.String(status, err.Error())
}

func writeBindError(c *gin.Context, span trace.Span, err error) {
	span.RecordError(err)
	c.String(http.StatusBadRequest, "Corpo da requisição inválido: "+err.Error())
}
