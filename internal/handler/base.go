package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	querystring "github.com/google/go-querystring/query"
	"github.com/ncobase/habits/config"
	"github.com/ncobase/habits/consts"
	"github.com/ncobase/habits/ctxutil"
	"github.com/ncobase/habits/ecode"
	"github.com/ncobase/habits/hateoas"
	"github.com/ncobase/habits/internal/data/repository"
	"github.com/ncobase/habits/internal/service"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/net/resp"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/shaping"
	"github.com/ncobase/habits/validator"
)

// base holds what every resource handler shares.
type base struct {
	links   *hateoas.Builder
	baseURL string
	paging  config.Paging
	logger  *logger.Logger
}

func newBase(cfg *config.Config, logger *logger.Logger) *base {
	b := &base{
		links:  hateoas.NewBuilder(""),
		paging: config.Paging{DefaultPageSize: 10, MaxPageSize: 50, DefaultLimit: paging.DefaultLimits.Default, MaxLimit: paging.DefaultLimits.Max},
		logger: logger,
	}
	if cfg != nil {
		if cfg.Paging != nil {
			b.paging = *cfg.Paging
		}
		if cfg.Hateoas != nil {
			b.baseURL = cfg.Hateoas.BaseURL
		}
	}
	return b
}

// builder returns the link builder rooted at the configured base URL, or
// at the request's own scheme and host.
func (b *base) builder(c *gin.Context) *hateoas.Builder {
	if b.baseURL != "" {
		return b.links.WithBase(b.baseURL)
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader(consts.ForwardedProtoKey); proto != "" {
		scheme = proto
	}
	return b.links.WithBase(scheme + "://" + c.Request.Host)
}

// negotiated reports whether the request asked for hypermedia.
func negotiated(c *gin.Context) bool {
	return ctxutil.IsHypermedia(c.Request.Context())
}

// render writes a success body with the negotiated media type.
func render(c *gin.Context, status int, body any) {
	ctx := c.Request.Context()
	if ctxutil.IsHypermedia(ctx) {
		resp.WithContentType(c.Writer, ctxutil.GetMediaType(ctx), status, body)
		return
	}
	resp.WithStatusCode(c.Writer, status, body)
}

// listParams returns listing parameters preset with the configured
// defaults; binding overwrites only the keys present in the query.
func (b *base) listParams() structs.QueryParams {
	return structs.QueryParams{Page: 1, PageSize: b.paging.DefaultPageSize}
}

// bindQuery binds and validates query parameters. It writes the failure
// response and returns false when the parameters are unusable.
func (b *base) bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return false
	}
	return b.validate(c, dst)
}

// withinBound rejects sizes above the configured maximum.
func (b *base) withinBound(c *gin.Context, name string, size, limit int) bool {
	if size > limit {
		resp.Fail(c.Writer, resp.InvalidParams(ecode.Text(ecode.ParamErr), map[string]string{
			name: fmt.Sprintf("The field '%s' must be less than or equal to %d.", name, limit),
		}))
		return false
	}
	return true
}

func (b *base) validate(c *gin.Context, dst any) bool {
	if errs := validator.ValidateStruct(dst); len(errs) > 0 {
		resp.Fail(c.Writer, resp.InvalidParams(ecode.Text(ecode.ParamErr), errs))
		return false
	}
	return true
}

// bindJSON decodes and validates a request body.
func (b *base) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return false
	}
	return b.validate(c, dst)
}

// fail maps a service error onto a response.
func (b *base) fail(c *gin.Context, err error) {
	var fe *shaping.FieldValidationError
	switch {
	case errors.As(err, &fe):
		resp.Fail(c.Writer, resp.InvalidFields(fe.Error(), map[string]any{"fields": fe.Fields, "invalid": fe.Invalid}))
	case errors.Is(err, service.ErrInvalidArgument):
		resp.Fail(c.Writer, resp.InvalidParams(err.Error()))
	case errors.Is(err, repository.ErrNotFound):
		resp.Fail(c.Writer, resp.NotFound(err.Error()))
	case errors.Is(err, repository.ErrConflict):
		resp.Fail(c.Writer, resp.Conflict(err.Error()))
	default:
		b.logger.Errorf(c.Request.Context(), "%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.Fail(c.Writer, resp.InternalServer(ecode.Text(ecode.ServerErr)))
	}
}

// listQuery encodes bound query parameters for links.
func listQuery(params any) url.Values {
	v, err := querystring.Values(params)
	if err != nil {
		return url.Values{}
	}
	return v
}

// withPage copies q and sets the page number.
func withPage(q url.Values, page int) url.Values {
	out := url.Values{}
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	out.Set("page", fmt.Sprint(page))
	return out
}

// offsetLinks builds the self, create and paging links of an offset
// collection served by route.
func offsetLinks(b *hateoas.Builder, route string, q url.Values) func(*hateoas.Collection) []hateoas.Link {
	return func(env *hateoas.Collection) []hateoas.Link {
		links := []hateoas.Link{
			b.Create(route, hateoas.RelSelf, http.MethodGet, nil, withPage(q, env.Page)),
			b.Create(route, hateoas.RelCreate, http.MethodPost, nil, nil),
		}
		if env.HasNextPage {
			links = append(links, b.Create(route, hateoas.RelNextPage, http.MethodGet, nil, withPage(q, env.Page+1)))
		}
		if env.HasPreviousPage {
			links = append(links, b.Create(route, hateoas.RelPreviousPage, http.MethodGet, nil, withPage(q, env.Page-1)))
		}
		return links
	}
}

// renderItem shapes one record, adds its links when negotiated and writes it.
func renderItem[T any](b *base, c *gin.Context, status int, record T, fields string, links hateoas.ItemLinks[T]) {
	item, err := shaping.Shape(record, fields)
	if err != nil {
		b.fail(c, err)
		return
	}
	render(c, status, hateoas.ComposeItem(item, record, links, negotiated(c)))
}

// renderPage shapes an offset page into its envelope and writes it.
func renderPage[T any](b *base, c *gin.Context, page *paging.OffsetResult[T], fields string, itemLinks hateoas.ItemLinks[T], collectionLinks func(*hateoas.Collection) []hateoas.Link) {
	items, err := shaping.ShapeMany(page.Items, fields, nil)
	if err != nil {
		b.fail(c, err)
		return
	}
	env := hateoas.NewCollection(items, page.Meta)
	c.Header(consts.TotalKey, strconv.Itoa(page.Meta.TotalCount))
	render(c, http.StatusOK, hateoas.ComposeCollection(env, page.Items, itemLinks, collectionLinks, negotiated(c)))
}

// Negotiate resolves the response media type from the Accept header and
// records whether hypermedia was requested. Unmatched types fall back to
// plain JSON.
func Negotiate() gin.HandlerFunc {
	offered := append([]string{gin.MIMEJSON}, hateoas.MediaTypes...)
	return func(c *gin.Context) {
		mediaType := c.NegotiateFormat(offered...)
		if mediaType == "" {
			mediaType = gin.MIMEJSON
		}
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		ctx = ctxutil.SetHypermedia(ctx, mediaType, hateoas.IsHypermediaType(mediaType))
		c.Request = c.Request.WithContext(ctx)
		c.Header("Vary", consts.AcceptKey)
		c.Next()
	}
}
