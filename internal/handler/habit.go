package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/habits/hateoas"
	"github.com/ncobase/habits/internal/service"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/net/resp"
)

// HabitHandler handles habit HTTP requests.
type HabitHandler struct {
	*base
	service *service.HabitService
}

func habitLinks(b *hateoas.Builder, fields string) hateoas.ItemLinks[structs.HabitDTO] {
	return func(h structs.HabitDTO) []hateoas.Link {
		p := hateoas.Params{"id": h.ID}
		links := []hateoas.Link{
			b.Create(RouteHabit, hateoas.RelSelf, http.MethodGet, p, listQuery(structs.FieldsParams{Fields: fields})),
			b.Create(RouteHabit, hateoas.RelUpdate, http.MethodPut, p, nil),
			b.Create(RouteHabit, hateoas.RelPartialUpdate, http.MethodPatch, p, nil),
			b.Create(RouteHabit, hateoas.RelDelete, http.MethodDelete, p, nil),
			b.Create(RouteHabitTags, hateoas.RelUpsertTags, http.MethodPut, p, nil),
			b.Create(RouteEntries, hateoas.RelEntries, http.MethodGet, nil, listQuery(structs.EntryQueryParams{HabitID: h.ID})),
		}
		if h.IsArchived {
			return append(links, b.Create(RouteHabitUnarchive, hateoas.RelUnArchive, http.MethodPut, p, nil))
		}
		return append(links, b.Create(RouteHabitArchive, hateoas.RelArchive, http.MethodPut, p, nil))
	}
}

func habitWithTagsLinks(b *hateoas.Builder, fields string) hateoas.ItemLinks[structs.HabitWithTagsDTO] {
	links := habitLinks(b, fields)
	return func(h structs.HabitWithTagsDTO) []hateoas.Link { return links(h.HabitDTO) }
}

// List handles GET /habits.
func (h *HabitHandler) List(c *gin.Context) {
	q := structs.HabitQueryParams{QueryParams: h.listParams()}
	if !h.bindQuery(c, &q) || !h.withinBound(c, "page_size", q.PageSize, h.paging.MaxPageSize) {
		return
	}

	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	b := h.builder(c)
	renderPage(h.base, c, page, q.Fields, habitLinks(b, q.Fields), offsetLinks(b, RouteHabits, listQuery(q)))
}

// Get handles GET /habits/:id.
func (h *HabitHandler) Get(c *gin.Context) {
	var q structs.FieldsParams
	if !h.bindQuery(c, &q) {
		return
	}
	habit, err := h.service.Get(c.Request.Context(), c.Param("id"), q.Fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	renderItem(h.base, c, http.StatusOK, *habit, q.Fields, habitWithTagsLinks(h.builder(c), q.Fields))
}

// Create handles POST /habits.
func (h *HabitHandler) Create(c *gin.Context) {
	var body structs.CreateHabitBody
	if !h.bindJSON(c, &body) {
		return
	}
	habit, err := h.service.Create(c.Request.Context(), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	b := h.builder(c)
	c.Header("Location", b.Create(RouteHabit, hateoas.RelSelf, http.MethodGet, hateoas.Params{"id": habit.ID}, nil).Href)
	renderItem(h.base, c, http.StatusCreated, *habit, "", habitLinks(b, ""))
}

// Update handles PUT /habits/:id.
func (h *HabitHandler) Update(c *gin.Context) {
	var body structs.UpdateHabitBody
	if !h.bindJSON(c, &body) {
		return
	}
	habit, err := h.service.Update(c.Request.Context(), c.Param("id"), &body)
	h.respond(c, habit, err)
}

// Patch handles PATCH /habits/:id.
func (h *HabitHandler) Patch(c *gin.Context) {
	var body structs.PatchHabitBody
	if !h.bindJSON(c, &body) {
		return
	}
	habit, err := h.service.Patch(c.Request.Context(), c.Param("id"), &body)
	h.respond(c, habit, err)
}

// Archive handles PUT /habits/:id/archive.
func (h *HabitHandler) Archive(c *gin.Context) {
	habit, err := h.service.Archive(c.Request.Context(), c.Param("id"))
	h.respond(c, habit, err)
}

// Unarchive handles PUT /habits/:id/un-archive.
func (h *HabitHandler) Unarchive(c *gin.Context) {
	habit, err := h.service.Unarchive(c.Request.Context(), c.Param("id"))
	h.respond(c, habit, err)
}

func (h *HabitHandler) respond(c *gin.Context, habit *structs.HabitDTO, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	renderItem(h.base, c, http.StatusOK, *habit, "", habitLinks(h.builder(c), ""))
}

// Delete handles DELETE /habits/:id.
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	resp.NoContent(c.Writer)
}

// UpsertTags handles PUT /habits/:id/tags.
func (h *HabitHandler) UpsertTags(c *gin.Context) {
	var body structs.UpsertTagsBody
	if !h.bindJSON(c, &body) {
		return
	}
	if err := h.service.UpsertTags(c.Request.Context(), c.Param("id"), &body); err != nil {
		h.fail(c, err)
		return
	}
	resp.NoContent(c.Writer)
}
