// internal/adapters/httpapi/requests.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/application"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
)

type RequestHandler struct {
	requests *application.RequestService
	logger   *zap.Logger
}

func NewRequestHandler(requests *application.RequestService, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{requests: requests, logger: logger}
}

func (h *RequestHandler) Create(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "CreateRequest")
	defer span.End()

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	span.SetAttributes(
		attribute.String("seller.name", req.SellerName),
		attribute.Int("items.count", len(req.Items)),
	)

	resp, err := h.requests.Create(ctx, req)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	span.SetAttributes(attribute.String("request.id", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

func (h *RequestHandler) Get(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "GetRequest")
	defer span.End()

	resp, err := h.requests.FindByID(ctx, c.Param("id"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) ListBySeller(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "ListSellerRequests")
	defer span.End()

	resp, err := h.requests.FindBySeller(ctx, c.Param("sellerName"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) ListByUser(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "ListUserRequests")
	defer span.End()

	resp, err := h.requests.FindByUser(ctx, c.Param("userName"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) Rate(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "RateRequest")
	defer span.End()

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.requests.Rate(ctx, c.Param("id"), req.Rating, claimsFrom(c))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "CancelRequest")
	defer span.End()

	resp, err := h.requests.Cancel(ctx, c.Param("id"), claimsFrom(c))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
