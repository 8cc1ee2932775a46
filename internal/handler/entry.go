package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/habits/hateoas"
	"github.com/ncobase/habits/internal/service"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/net/resp"
	"github.com/ncobase/habits/shaping"
)

// EntryHandler handles entry HTTP requests.
type EntryHandler struct {
	*base
	service *service.EntryService
}

func entryLinks(b *hateoas.Builder, fields string) hateoas.ItemLinks[structs.EntryDTO] {
	return func(e structs.EntryDTO) []hateoas.Link {
		p := hateoas.Params{"id": e.ID}
		links := []hateoas.Link{
			b.Create(RouteEntry, hateoas.RelSelf, http.MethodGet, p, listQuery(structs.FieldsParams{Fields: fields})),
			b.Create(RouteEntry, hateoas.RelUpdate, http.MethodPut, p, nil),
			b.Create(RouteEntry, hateoas.RelDelete, http.MethodDelete, p, nil),
			b.Create(RouteHabit, hateoas.RelHabit, http.MethodGet, hateoas.Params{"id": e.HabitID}, nil),
		}
		if e.IsArchived {
			return append(links, b.Create(RouteEntryUnarchive, hateoas.RelUnArchive, http.MethodPut, p, nil))
		}
		return append(links, b.Create(RouteEntryArchive, hateoas.RelArchive, http.MethodPut, p, nil))
	}
}

// List handles GET /entries.
func (h *EntryHandler) List(c *gin.Context) {
	q := structs.EntryQueryParams{QueryParams: h.listParams()}
	if !h.bindQuery(c, &q) || !h.withinBound(c, "page_size", q.PageSize, h.paging.MaxPageSize) {
		return
	}

	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	b := h.builder(c)
	renderPage(h.base, c, page, q.Fields, entryLinks(b, q.Fields), offsetLinks(b, RouteEntries, listQuery(q)))
}

// ListCursor handles GET /entries/cursor.
func (h *EntryHandler) ListCursor(c *gin.Context) {
	q := structs.CursorQueryParams{Limit: h.paging.DefaultLimit}
	if !h.bindQuery(c, &q) || !h.withinBound(c, "limit", q.Limit, h.paging.MaxLimit) {
		return
	}

	page, err := h.service.ListCursor(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	items, err := shaping.ShapeMany(page.Items, q.Fields, nil)
	if err != nil {
		h.fail(c, err)
		return
	}

	b := h.builder(c)
	collectionLinks := func(env *hateoas.CursorCollection) []hateoas.Link {
		links := []hateoas.Link{
			b.Create(RouteEntriesCursor, hateoas.RelSelf, http.MethodGet, nil, listQuery(q)),
			b.Create(RouteEntries, hateoas.RelCreate, http.MethodPost, nil, nil),
		}
		if env.HasNextPage {
			next := q
			next.Cursor = env.NextCursor
			links = append(links, b.Create(RouteEntriesCursor, hateoas.RelNextPage, http.MethodGet, nil, listQuery(next)))
		}
		return links
	}

	env := hateoas.NewCursorCollection(items, page.NextCursor, page.HasNextPage)
	render(c, http.StatusOK, hateoas.ComposeCollection(env, page.Items, entryLinks(b, q.Fields), collectionLinks, negotiated(c)))
}

// Get handles GET /entries/:id.
func (h *EntryHandler) Get(c *gin.Context) {
	var q structs.FieldsParams
	if !h.bindQuery(c, &q) {
		return
	}
	entry, err := h.service.Get(c.Request.Context(), c.Param("id"), q.Fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	renderItem(h.base, c, http.StatusOK, *entry, q.Fields, entryLinks(h.builder(c), q.Fields))
}

// Create handles POST /entries.
func (h *EntryHandler) Create(c *gin.Context) {
	var body structs.CreateEntryBody
	if !h.bindJSON(c, &body) {
		return
	}
	entry, err := h.service.Create(c.Request.Context(), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	b := h.builder(c)
	c.Header("Location", b.Create(RouteEntry, hateoas.RelSelf, http.MethodGet, hateoas.Params{"id": entry.ID}, nil).Href)
	renderItem(h.base, c, http.StatusCreated, *entry, "", entryLinks(b, ""))
}

// Update handles PUT /entries/:id.
func (h *EntryHandler) Update(c *gin.Context) {
	var body structs.UpdateEntryBody
	if !h.bindJSON(c, &body) {
		return
	}
	entry, err := h.service.Update(c.Request.Context(), c.Param("id"), &body)
	h.respond(c, entry, err)
}

// Archive handles PUT /entries/:id/archive.
func (h *EntryHandler) Archive(c *gin.Context) {
	entry, err := h.service.Archive(c.Request.Context(), c.Param("id"))
	h.respond(c, entry, err)
}

// Unarchive handles PUT /entries/:id/un-archive.
func (h *EntryHandler) Unarchive(c *gin.Context) {
	entry, err := h.service.Unarchive(c.Request.Context(), c.Param("id"))
	h.respond(c, entry, err)
}

func (h *EntryHandler) respond(c *gin.Context, entry *structs.EntryDTO, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	renderItem(h.base, c, http.StatusOK, *entry, "", entryLinks(h.builder(c), ""))
}

// Delete handles DELETE /entries/:id.
func (h *EntryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	resp.NoContent(c.Writer)
}
