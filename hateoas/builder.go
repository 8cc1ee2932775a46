package hateoas

import (
	"net/url"
	"strings"
	"sync"
)

// Params holds path parameter values keyed by name, without the colon.
type Params map[string]string

// Builder renders named route templates into absolute hrefs.
//
// Templates use gin's syntax, e.g. "/habits/:id/tags".
type Builder struct {
	base   string
	mu     *sync.RWMutex
	routes map[string]string
}

// NewBuilder creates a builder rooted at baseURL.
func NewBuilder(baseURL string) *Builder {
	return &Builder{
		base:   strings.TrimRight(baseURL, "/"),
		mu:     &sync.RWMutex{},
		routes: map[string]string{},
	}
}

// WithBase returns a builder sharing b's routes under another base URL.
func (b *Builder) WithBase(baseURL string) *Builder {
	return &Builder{base: strings.TrimRight(baseURL, "/"), mu: b.mu, routes: b.routes}
}

// Base returns the base URL.
func (b *Builder) Base() string { return b.base }

// Register names a route template.
func (b *Builder) Register(name, template string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[name] = template
}

// Href renders the named route. ok is false for unknown routes or missing
// path parameters.
func (b *Builder) Href(name string, params Params, query url.Values) (string, bool) {
	b.mu.RLock()
	template, ok := b.routes[name]
	b.mu.RUnlock()
	if !ok {
		return "", false
	}

	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") && !strings.HasPrefix(seg, "*") {
			continue
		}
		v, ok := params[seg[1:]]
		if !ok {
			return "", false
		}
		segments[i] = url.PathEscape(v)
	}

	href := b.base + strings.Join(segments, "/")
	if encoded := query.Encode(); encoded != "" {
		href += "?" + encoded
	}
	return href, true
}

// Create builds a link to the named route. Unknown routes produce an empty href.
func (b *Builder) Create(name, rel, method string, params Params, query url.Values) Link {
	href, _ := b.Href(name, params, query)
	return Link{Href: href, Rel: rel, Method: method}
}
