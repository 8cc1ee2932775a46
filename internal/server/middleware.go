package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/habits/consts"
	"github.com/ncobase/habits/ctxutil"
	"github.com/sirupsen/logrus"
)

// Trace propagates the X-Trace-Id header, creating one when absent.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		traceID := c.GetHeader(consts.TraceKey)
		if traceID != "" {
			ctx = ctxutil.SetTraceID(ctx, traceID)
		} else {
			ctx, traceID = ctxutil.EnsureTraceID(ctx)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(consts.TraceKey, traceID)
		c.Next()
	}
}

// loggerMiddleware creates request logging middleware.
func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.WithContext(c.Request.Context(), logrus.Fields{
			"method":   method,
			"path":     path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}).Info("HTTP request")
	}
}
