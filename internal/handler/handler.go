// Package handler provides the HTTP handlers of the habits API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/habits/config"
	"github.com/ncobase/habits/hateoas"
	"github.com/ncobase/habits/internal/service"
	"github.com/ncobase/habits/logging/logger"
)

// Route names used to build links.
const (
	RouteHabits         = "habits"
	RouteHabit          = "habit"
	RouteHabitTags      = "habit-tags"
	RouteHabitArchive   = "habit-archive"
	RouteHabitUnarchive = "habit-unarchive"
	RouteEntries        = "entries"
	RouteEntriesCursor  = "entries-cursor"
	RouteEntry          = "entry"
	RouteEntryArchive   = "entry-archive"
	RouteEntryUnarchive = "entry-unarchive"
	RouteTags           = "tags"
	RouteTag            = "tag"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Habit *HabitHandler
	Entry *EntryHandler
	Tag   *TagHandler
	base  *base
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, cfg *config.Config, logger *logger.Logger) *Handler {
	b := newBase(cfg, logger)
	return &Handler{
		Habit: &HabitHandler{base: b, service: svc.Habit},
		Entry: &EntryHandler{base: b, service: svc.Entry},
		Tag:   &TagHandler{base: b, service: svc.Tag},
		base:  b,
	}
}

// Links returns the route table the handlers build links from.
func (h *Handler) Links() *hateoas.Builder { return h.base.links }

// RegisterRoutes registers all HTTP routes and names them for link building.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	habits := r.Group("/habits")
	{
		h.route(habits, RouteHabits, http.MethodGet, "", h.Habit.List)
		h.route(habits, RouteHabits, http.MethodPost, "", h.Habit.Create)
		h.route(habits, RouteHabit, http.MethodGet, "/:id", h.Habit.Get)
		h.route(habits, RouteHabit, http.MethodPut, "/:id", h.Habit.Update)
		h.route(habits, RouteHabit, http.MethodPatch, "/:id", h.Habit.Patch)
		h.route(habits, RouteHabit, http.MethodDelete, "/:id", h.Habit.Delete)
		h.route(habits, RouteHabitTags, http.MethodPut, "/:id/tags", h.Habit.UpsertTags)
		h.route(habits, RouteHabitArchive, http.MethodPut, "/:id/archive", h.Habit.Archive)
		h.route(habits, RouteHabitUnarchive, http.MethodPut, "/:id/un-archive", h.Habit.Unarchive)
	}

	entries := r.Group("/entries")
	{
		h.route(entries, RouteEntries, http.MethodGet, "", h.Entry.List)
		h.route(entries, RouteEntries, http.MethodPost, "", h.Entry.Create)
		h.route(entries, RouteEntriesCursor, http.MethodGet, "/cursor", h.Entry.ListCursor)
		h.route(entries, RouteEntry, http.MethodGet, "/:id", h.Entry.Get)
		h.route(entries, RouteEntry, http.MethodPut, "/:id", h.Entry.Update)
		h.route(entries, RouteEntry, http.MethodDelete, "/:id", h.Entry.Delete)
		h.route(entries, RouteEntryArchive, http.MethodPut, "/:id/archive", h.Entry.Archive)
		h.route(entries, RouteEntryUnarchive, http.MethodPut, "/:id/un-archive", h.Entry.Unarchive)
	}

	tags := r.Group("/tags")
	{
		h.route(tags, RouteTags, http.MethodGet, "", h.Tag.List)
		h.route(tags, RouteTags, http.MethodPost, "", h.Tag.Create)
		h.route(tags, RouteTag, http.MethodGet, "/:id", h.Tag.Get)
		h.route(tags, RouteTag, http.MethodPut, "/:id", h.Tag.Update)
		h.route(tags, RouteTag, http.MethodDelete, "/:id", h.Tag.Delete)
	}
}

func (h *Handler) route(g *gin.RouterGroup, name, method, path string, fn gin.HandlerFunc) {
	g.Handle(method, path, fn)
	h.base.links.Register(name, g.BasePath()+path)
}
