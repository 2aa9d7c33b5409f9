// internal/adapters/httpapi/accounts.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/application"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
)

type AccountHandler struct {
	sellers *application.SellerService
	users   *application.UserService
	auth    *application.AuthService
	logger  *zap.Logger
}

func NewAccountHandler(sellers *application.SellerService, users *application.UserService, authService *application.AuthService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{sellers: sellers, users: users, auth: authService, logger: logger}
}

func (h *AccountHandler) RegisterSeller(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "RegisterSeller")
	defer span.End()

	var req dto.SellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.sellers.Register(ctx, req)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AccountHandler) GetSeller(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "GetSeller")
	defer span.End()

	resp, err := h.sellers.FindByName(ctx, c.Param("name"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) LoginSeller(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "LoginSeller")
	defer span.End()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.auth.LoginSeller(ctx, req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) RegisterUser(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "RegisterUser")
	defer span.End()

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.users.Register(ctx, req)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AccountHandler) GetUser(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "GetUser")
	defer span.End()

	resp, err := h.users.FindByName(ctx, c.Param("name"))
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) LoginUser(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "LoginUser")
	defer span.End()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}
	resp, err := h.auth.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the bearer token that authenticated this call.
func (h *AccountHandler) Logout(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "Logout")
	defer span.End()

	if err := h.auth.Logout(ctx, claimsFrom(c)); err != nil {
		writeError(c, h.logger, span, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso"})
}
