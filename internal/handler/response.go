package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"campushub/internal/domain"
	"campushub/internal/models"
	"campushub/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP responses. Anything that is not a domain error is
// reported as a generic 500 and attached to the context for the request logger.
func respondError(c *gin.Context, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.PublicMessage(err)})
		return
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message, "errors": appErr.Details})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": appErr.Message})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": appErr.Message})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": appErr.Message})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": appErr.Message})
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// paramID returns 0 for a malformed id so the service rejects it with its own message.
func paramID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// paginate writes one page of rows in the {data, total, page, limit} envelope.
func paginate[T any](c *gin.Context, rows []T) {
	page, limit := parsePagination(c)
	total := len(rows)
	start := total
	// pages past the end stay empty without computing (page-1)*limit
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := min(start+limit, total)
	c.JSON(http.StatusOK, gin.H{"data": rows[start:end], "total": total, "page": page, "limit": limit})
}

type auditStore interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

type auditor struct {
	repo auditStore
	log  *zap.Logger
}

func newAuditor(repo *repository.AuditLogRepository, log *zap.Logger) auditor {
	a := auditor{log: log.Named("audit")}
	if repo != nil {
		a.repo = repo
	}
	return a
}

// record stores an audit row. A failed write is logged and does not fail the request.
func (a auditor) record(c *gin.Context, userID uint, action, resource string, resourceID uint, meta map[string]any) {
	if a.repo == nil {
		return
	}
	var metadata string
	if len(meta) > 0 {
		if b, err := json.Marshal(meta); err == nil {
			metadata = string(b)
		}
	}
	err := a.repo.Create(c.Request.Context(), &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   resource,
		ResourceID: strconv.FormatUint(uint64(resourceID), 10),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Metadata:   metadata,
	})
	if err != nil {
		a.log.Error("audit write failed",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.Uint("resource_id", resourceID),
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}
