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

// AdminHandler serves the moderation back office. Every route sits behind AdminRequired.
type AdminHandler struct {
	moderation *service.ModerationService
	stats      *service.StatsService
	users      *service.AdminUserService
	audit      auditor
}

func NewAdminHandler(
	moderation *service.ModerationService,
	stats *service.StatsService,
	users *service.AdminUserService,
	auditRepo *repository.AuditLogRepository,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		stats:      stats,
		users:      users,
		audit:      newAuditor(auditRepo, log),
	}
}

// Dashboard handles GET /admin/dashboard/stats.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListItems handles GET /admin/marketplace/items?status=&page=&limit=.
func (h *AdminHandler) ListItems(c *gin.Context) {
	items, err := h.moderation.ListItems(c.Request.Context(), domain.ItemStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	paginate(c, items)
}

func (h *AdminHandler) MarketplaceStats(c *gin.Context) {
	stats, err := h.stats.MarketplaceStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateItemStatus handles PUT /admin/marketplace/items/:id/status.
func (h *AdminHandler) UpdateItemStatus(c *gin.Context) {
	var req dto.ItemStatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	req.ItemID = paramID(c)
	item, err := h.moderation.SetItemStatus(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, middleware.GetUserID(c), domain.AuditItemStatus, "marketplace_item", item.ID, map[string]any{"status": item.Status})
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /admin/marketplace/items/:id.
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	itemID := paramID(c)
	if err := h.moderation.DeleteItem(c.Request.Context(), itemID, adminID); err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, adminID, domain.AuditItemDelete, "marketplace_item", itemID, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListReports handles GET /admin/reports?status=&page=&limit=.
func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.moderation.ListReports(c.Request.Context(), domain.ReportStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	paginate(c, reports)
}

func (h *AdminHandler) ReportStats(c *gin.Context) {
	stats, err := h.stats.ReportStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ReportsForItem handles GET /admin/reports/items/:id.
func (h *AdminHandler) ReportsForItem(c *gin.Context) {
	reports, err := h.moderation.ReportsForItem(c.Request.Context(), paramID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports})
}

// ResolveReport handles PUT /admin/reports/:id/status. admin_user_id defaults to the caller.
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	var req dto.ReportResolution
	if !bindJSON(c, &req) {
		return
	}
	req.ReportID = paramID(c)
	if req.AdminUserID == 0 {
		req.AdminUserID = middleware.GetUserID(c)
	}
	report, err := h.moderation.ResolveReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, req.AdminUserID, domain.AuditReportResolve, "report", report.ID, map[string]any{"status": report.Status})
	c.JSON(http.StatusOK, report)
}

// FlagItem handles PUT /admin/reports/items/:id/flag. The body is optional.
func (h *AdminHandler) FlagItem(c *gin.Context) {
	var req dto.FlagItem
	if !bindOptionalJSON(c, &req) {
		return
	}
	req.ItemID = paramID(c)
	if req.AdminUserID == 0 {
		req.AdminUserID = middleware.GetUserID(c)
	}
	item, err := h.moderation.FlagItemFromReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, req.AdminUserID, domain.AuditItemFlag, "marketplace_item", item.ID, nil)
	c.JSON(http.StatusOK, item)
}

// ListUsers handles GET /admin/users?page=&limit=.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListStudents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	paginate(c, users)
}

func (h *AdminHandler) UserStats(c *gin.Context) {
	stats, err := h.stats.UserStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// BanUser handles PUT /admin/users/:id/ban.
func (h *AdminHandler) BanUser(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	u, err := h.users.BanUser(c.Request.Context(), paramID(c), adminID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, adminID, domain.AuditUserBan, "user", u.ID, nil)
	c.JSON(http.StatusOK, u)
}

// UnbanUser handles PUT /admin/users/:id/unban.
func (h *AdminHandler) UnbanUser(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	u, err := h.users.UnbanUser(c.Request.Context(), paramID(c), adminID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, adminID, domain.AuditUserUnban, "user", u.ID, nil)
	c.JSON(http.StatusOK, u)
}
