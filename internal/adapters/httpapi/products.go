// internal/adapters/httpapi/products.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/application"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
)

type ProductHandler struct {
	products *application.ProductService
	search   *application.SearchService
	logger   *zap.Logger
}

func NewProductHandler(products *application.ProductService, search *application.SearchService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, search: search, logger: logger}
}

func (h *ProductHandler) Create(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "CreateProduct")
	defer span.End()

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.products.Create(ctx, req)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductHandler) Update(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "UpdateProduct")
	defer span.End()

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.products.Update(ctx, req)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) UpdateStock(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "UpdateProductStock")
	defer span.End()

	var req dto.ProductStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.products.UpdateStock(ctx, req)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) ListBySeller(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "ListSellerProducts")
	defer span.End()

	resp, err := h.products.ListBySeller(ctx, c.Param("sellerName"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) SearchByTitle(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "SearchProductsByTitle")
	defer span.End()

	resp, err := h.search.ProductsByTitle(ctx, c.Query("title"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) SearchByCategory(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "SearchProductsByCategory")
	defer span.End()

	resp, err := h.search.ProductsByCategory(ctx, c.Param("category"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) SearchSellersByName(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "SearchSellersByName")
	defer span.End()

	resp, err := h.search.SellersByName(ctx, c.Query("name"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) SearchSellersByCategory(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "SearchSellersByCategory")
	defer span.End()

	resp, err := h.search.SellersByCategory(ctx, c.Param("category"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) OpenSellers(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "OpenSellers")
	defer span.End()

	resp, err := h.search.OpenSellers(ctx, c.Query("category"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
