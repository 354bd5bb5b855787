package httpx

import (
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// SessionParam — имя path-параметра с идентификатором сессии.
const SessionParam = "id"

// SessionIDMiddleware кладёт идентификатор сессии из пути в контекст запроса,
// чтобы он попадал в логи всех нижележащих слоёв.
func SessionIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sid := c.Param(SessionParam); sid != "" {
			c.Request = c.Request.WithContext(ctxmeta.WithSessionID(c.Request.Context(), sid))
		}
		c.Next()
	}
}
