package handler

import (
	"net/http"
	"strconv"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/middleware"
	"campushub/internal/repository"
	"campushub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MarketplaceHandler serves the student side of the marketplace.
type MarketplaceHandler struct {
	svc     *service.MarketplaceService
	authSvc *service.AuthService
	audit   auditor
}

func NewMarketplaceHandler(svc *service.MarketplaceService, authSvc *service.AuthService, auditRepo *repository.AuditLogRepository, log *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{svc: svc, authSvc: authSvc, audit: newAuditor(auditRepo, log)}
}

// List handles GET /marketplace/items?location=.
func (h *MarketplaceHandler) List(c *gin.Context) {
	var location domain.CampusLocation
	if raw := c.Query("location"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid campus location"})
			return
		}
		location = domain.CampusLocation(n)
	}
	items, err := h.svc.ListItems(c.Request.Context(), middleware.GetUserID(c), location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *MarketplaceHandler) Get(c *gin.Context) {
	item, err := h.svc.GetItem(c.Request.Context(), paramID(c), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /marketplace/items. The seller is the caller.
func (h *MarketplaceHandler) Create(c *gin.Context) {
	var req dto.CreateMarketplaceItem
	if !bindJSON(c, &req) {
		return
	}
	userID := middleware.GetUserID(c)
	name, err := h.authSvc.SellerName(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	req.SellerID = userID
	req.SellerName = name
	item, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MarketplaceHandler) Update(c *gin.Context) {
	var req dto.UpdateMarketplaceItem
	if !bindJSON(c, &req) {
		return
	}
	req.ID = paramID(c)
	req.UserID = middleware.GetUserID(c)
	item, err := h.svc.UpdateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MarketplaceHandler) Delete(c *gin.Context) {
	err := h.svc.DeleteOwnItem(c.Request.Context(), h.operation(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *MarketplaceHandler) MarkSold(c *gin.Context) {
	item, err := h.svc.MarkSold(c.Request.Context(), h.operation(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MarketplaceHandler) MarkAvailable(c *gin.Context) {
	item, err := h.svc.MarkAvailable(c.Request.Context(), h.operation(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ToggleLike handles POST /marketplace/items/:id/like.
func (h *MarketplaceHandler) ToggleLike(c *gin.Context) {
	res, err := h.svc.ToggleLike(c.Request.Context(), dto.ToggleLike{ItemID: paramID(c), UserID: middleware.GetUserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Report handles POST /marketplace/items/:id/reports.
func (h *MarketplaceHandler) Report(c *gin.Context) {
	var req dto.CreateReport
	if !bindJSON(c, &req) {
		return
	}
	req.MarketplaceItemID = paramID(c)
	req.ReporterID = middleware.GetUserID(c)
	report, err := h.svc.ReportItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, req.ReporterID, domain.AuditReportCreate, "report", report.ID, map[string]any{"item_id": report.MarketplaceItemID})
	c.JSON(http.StatusCreated, report)
}

// Wishlist handles GET /me/wishlist.
func (h *MarketplaceHandler) Wishlist(c *gin.Context) {
	items, err := h.svc.Wishlist(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// MyListings handles GET /me/listings.
func (h *MarketplaceHandler) MyListings(c *gin.Context) {
	items, err := h.svc.ListBySeller(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// MyStats handles GET /me/stats.
func (h *MarketplaceHandler) MyStats(c *gin.Context) {
	stats, err := h.svc.ProfileStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *MarketplaceHandler) operation(c *gin.Context) dto.ItemStatusOperation {
	return dto.ItemStatusOperation{ItemID: paramID(c), UserID: middleware.GetUserID(c)}
}
