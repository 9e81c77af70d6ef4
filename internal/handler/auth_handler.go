package handler

import (
	"net/http"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/middleware"
	"campushub/internal/repository"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc   *service.AuthService
	audit auditor
}

func NewAuthHandler(svc *service.AuthService, auditRepo *repository.AuditLogRepository, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, audit: newAuditor(auditRepo, log)}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUser
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, u.ID, "register", "auth", u.ID, nil)
	c.JSON(http.StatusCreated, u)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.Login
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, res.User.ID, "login", "auth", res.User.ID, nil)
	c.JSON(http.StatusOK, res)
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.svc.Me(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile handles PUT /me.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfile
	if !bindJSON(c, &req) {
		return
	}
	req.UserID = middleware.GetUserID(c)
	u, err := h.svc.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, u.ID, domain.AuditProfileUpdate, "user", u.ID, nil)
	c.JSON(http.StatusOK, u)
}
