package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/middleware"
	"github.com/cinefeel/cinefeel-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service      service.AuthService
	cookieTTL    time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session
// cookie Secure (production only).
func NewAuthHandler(service service.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieTTL:    cookieTTL,
		secureCookie: secureCookie,
	}
}

// Register handles POST /api/auth/register
// @Summary 회원가입
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "가입 정보"
// @Success 201 {object} domain.AuthResponse
// @Failure 400 {object} common.ErrorBody
// @Failure 409 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "auth.register_missing", err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, "auth.register_missing", err)
		case errors.Is(err, common.ErrEmailTaken):
			common.ErrorResponse(c, http.StatusConflict, "auth.duplicate_email", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "auth.register_error", err)
		}
		return
	}

	middleware.SetSessionCookie(c, result.Token, h.cookieTTL, h.secureCookie)
	c.JSON(http.StatusCreated, domain.AuthResponse{
		Message: common.T(c, "auth.register_success"),
		User:    result.User,
	})
}

// Login handles POST /api/auth/login
// @Summary 로그인
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "로그인 정보"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "auth.login_failed", nil)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			// 이메일/비밀번호 중 무엇이 틀렸는지 노출하지 않음
			common.ErrorResponse(c, http.StatusBadRequest, "auth.login_failed", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "auth.login_error", err)
		return
	}

	middleware.SetSessionCookie(c, result.Token, h.cookieTTL, h.secureCookie)
	c.JSON(http.StatusOK, domain.AuthResponse{
		Message: common.T(c, "auth.login_success"),
		User:    result.User,
	})
}

// Logout handles POST /api/auth/logout
// @Summary 로그아웃
// @Tags auth
// @Produce json
// @Success 200 {object} common.MessageBody
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.secureCookie)
	common.MessageResponse(c, http.StatusOK, "auth.logout_success")
}

// Me handles GET /api/auth/me
// @Summary 현재 로그인 사용자
// @Tags auth
// @Produce json
// @Success 200 {object} domain.MeResponse
// @Failure 401 {object} domain.MeResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, domain.MeResponse{Authenticated: false})
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, domain.MeResponse{Authenticated: false})
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "error.internal", err)
		return
	}

	c.JSON(http.StatusOK, domain.MeResponse{Authenticated: true, User: user})
}
