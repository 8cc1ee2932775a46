package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ncobase/habits/consts"
)

const (
	ginContextKey = consts.GinContextKey
	TraceIDKey    = "trace_id"
	hypermediaKey = "hypermedia"
	mediaTypeKey  = "media_type"
)

// FromGinContext extracts the context.Context from *gin.Context.
func FromGinContext(c *gin.Context) context.Context {
	return c.Request.Context()
}

// WithGinContext returns a context.Context that embeds the *gin.Context.
func WithGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginContextKey, c)
}

// GetGinContext extracts *gin.Context from context.Context if it exists.
func GetGinContext(ctx context.Context) (*gin.Context, bool) {
	if c, ok := ctx.Value(ginContextKey).(*gin.Context); ok {
		return c, ok
	}
	return nil, false
}

// GetValue retrieves a value from the context.
func GetValue(ctx context.Context, key string) any {
	if c, ok := GetGinContext(ctx); ok {
		if val, exists := c.Get(key); exists {
			return val
		}
	}
	return ctx.Value(key)
}

// SetValue sets a value to the context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	if c, ok := GetGinContext(ctx); ok {
		c.Set(key, val)
	}
	return context.WithValue(ctx, key, val)
}

// GetTraceID gets trace id from context.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context and gin.Context if available.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// SetHypermedia records the content negotiation outcome for the request.
func SetHypermedia(ctx context.Context, mediaType string, negotiated bool) context.Context {
	ctx = SetValue(ctx, mediaTypeKey, mediaType)
	return SetValue(ctx, hypermediaKey, negotiated)
}

// IsHypermedia reports whether the client negotiated a hypermedia media type.
func IsHypermedia(ctx context.Context) bool {
	v, _ := GetValue(ctx, hypermediaKey).(bool)
	return v
}

// GetMediaType returns the negotiated response media type, if any.
func GetMediaType(ctx context.Context) string {
	v, _ := GetValue(ctx, mediaTypeKey).(string)
	return v
}
