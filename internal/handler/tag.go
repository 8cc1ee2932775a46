package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/habits/hateoas"
	"github.com/ncobase/habits/internal/service"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/net/resp"
)

// TagHandler handles tag HTTP requests.
type TagHandler struct {
	*base
	service *service.TagService
}

func tagLinks(b *hateoas.Builder, fields string) hateoas.ItemLinks[structs.TagDTO] {
	return func(t structs.TagDTO) []hateoas.Link {
		p := hateoas.Params{"id": t.ID}
		return []hateoas.Link{
			b.Create(RouteTag, hateoas.RelSelf, http.MethodGet, p, listQuery(structs.FieldsParams{Fields: fields})),
			b.Create(RouteTag, hateoas.RelUpdate, http.MethodPut, p, nil),
			b.Create(RouteTag, hateoas.RelDelete, http.MethodDelete, p, nil),
		}
	}
}

// List handles GET /tags.
func (h *TagHandler) List(c *gin.Context) {
	q := h.listParams()
	if !h.bindQuery(c, &q) || !h.withinBound(c, "page_size", q.PageSize, h.paging.MaxPageSize) {
		return
	}

	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	b := h.builder(c)
	renderPage(h.base, c, page, q.Fields, tagLinks(b, q.Fields), offsetLinks(b, RouteTags, listQuery(q)))
}

// Get handles GET /tags/:id.
func (h *TagHandler) Get(c *gin.Context) {
	var q structs.FieldsParams
	if !h.bindQuery(c, &q) {
		return
	}
	tag, err := h.service.Get(c.Request.Context(), c.Param("id"), q.Fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	renderItem(h.base, c, http.StatusOK, *tag, q.Fields, tagLinks(h.builder(c), q.Fields))
}

// Create handles POST /tags.
func (h *TagHandler) Create(c *gin.Context) {
	var body structs.CreateTagBody
	if !h.bindJSON(c, &body) {
		return
	}
	tag, err := h.service.Create(c.Request.Context(), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	b := h.builder(c)
	c.Header("Location", b.Create(RouteTag, hateoas.RelSelf, http.MethodGet, hateoas.Params{"id": tag.ID}, nil).Href)
	renderItem(h.base, c, http.StatusCreated, *tag, "", tagLinks(b, ""))
}

// Update handles PUT /tags/:id.
func (h *TagHandler) Update(c *gin.Context) {
	var body structs.UpdateTagBody
	if !h.bindJSON(c, &body) {
		return
	}
	tag, err := h.service.Update(c.Request.Context(), c.Param("id"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	renderItem(h.base, c, http.StatusOK, *tag, "", tagLinks(h.builder(c), ""))
}

// Delete handles DELETE /tags/:id.
func (h *TagHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	resp.NoContent(c.Writer)
}
