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

// EventHandler serves the campus event calendar. The admin routes sit behind AdminRequired.
type EventHandler struct {
	svc   *service.EventService
	audit auditor
}

func NewEventHandler(svc *service.EventService, auditRepo *repository.AuditLogRepository, log *zap.Logger) *EventHandler {
	return &EventHandler{svc: svc, audit: newAuditor(auditRepo, log)}
}

// List handles GET /events?college=.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.svc.List(c.Request.Context(), middleware.GetUserID(c), c.Query("college"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.svc.Get(c.Request.Context(), paramID(c), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ToggleBookmark handles POST /events/:id/bookmark.
func (h *EventHandler) ToggleBookmark(c *gin.Context) {
	res, err := h.svc.ToggleBookmark(c.Request.Context(), paramID(c), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Register handles POST /events/:id/register.
func (h *EventHandler) Register(c *gin.Context) {
	event, err := h.svc.RegisterInterest(c.Request.Context(), paramID(c), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Bookmarks handles GET /me/bookmarks.
func (h *EventHandler) Bookmarks(c *gin.Context) {
	events, err := h.svc.Bookmarked(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

// AdminList handles GET /admin/events?page=&limit=.
func (h *EventHandler) AdminList(c *gin.Context) {
	events, err := h.svc.List(c.Request.Context(), 0, c.Query("college"))
	if err != nil {
		respondError(c, err)
		return
	}
	paginate(c, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventInput
	if !bindJSON(c, &req) {
		return
	}
	req.OrganizerID = middleware.GetUserID(c)
	event, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, req.OrganizerID, domain.AuditEventCreate, "event", event.ID, map[string]any{"title": event.Title})
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req dto.EventInput
	if !bindJSON(c, &req) {
		return
	}
	req.ID = paramID(c)
	event, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, middleware.GetUserID(c), domain.AuditEventUpdate, "event", event.ID, nil)
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id := paramID(c)
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.audit.record(c, middleware.GetUserID(c), domain.AuditEventDelete, "event", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Colleges handles GET /admin/colleges.
func (h *EventHandler) Colleges(c *gin.Context) {
	list, err := h.svc.Colleges(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// Programs handles GET /admin/programs and GET /admin/colleges/:id/programs.
func (h *EventHandler) Programs(c *gin.Context) {
	var (
		list []dto.Program
		err  error
	)
	if c.Param("id") != "" {
		list, err = h.svc.ProgramsByCollege(c.Request.Context(), paramID(c))
	} else {
		var collegeID uint64
		if raw := c.Query("college_id"); raw != "" {
			collegeID, _ = strconv.ParseUint(raw, 10, 32)
		}
		list, err = h.svc.Programs(c.Request.Context(), uint(collegeID))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}
