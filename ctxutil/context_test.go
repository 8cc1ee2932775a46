package ctxutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEnsureTraceID(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetTraceID(ctx))

	again, same := EnsureTraceID(ctx)
	assert.Equal(t, id, same)
	assert.Equal(t, ctx, again)
}

func TestHypermediaFlag(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsHypermedia(ctx))

	ctx = SetHypermedia(ctx, "application/vnd.dev-habit.hateoas+json", true)
	assert.True(t, IsHypermedia(ctx))
	assert.Equal(t, "application/vnd.dev-habit.hateoas+json", GetMediaType(ctx))
}

func TestValuesReachGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	ctx := WithGinContext(context.Background(), c)
	SetTraceID(ctx, "abc")

	v, ok := c.Get(TraceIDKey)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
	assert.Equal(t, "abc", GetTraceID(ctx))
}
