package httpx

import (
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — access-лог витрины.
// session_id (кладёт SessionIDMiddleware для маршрутов /sessions/:id) и request_id
// logger.ZapLogger достаёт из контекста сам; span берётся из otelgin.
// /metrics и /ping в лог не попадают.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		switch path {
		case "/metrics", "/ping":
			return
		case "":
			path = c.Request.URL.Path
		}
		sid, _ := ctxmeta.SessionIDFromContext(c.Request.Context())

		sp, _ := ctxmeta.SpanIDFromContext(c.Request.Context())

		log.Infof(
			c.Request.Context(),
			"request span=%s session=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			sp,
			sid,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
