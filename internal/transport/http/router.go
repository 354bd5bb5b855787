package rest

import (
	"net/http"
	"path/filepath"

	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — gin с request id и логом запросов.
// otelServiceName пустой — без otelgin; staticDir пустой — статика не отдаётся.
// extra — дополнительные middleware (CORS); nil пропускаются.
func NewRouter(h *Handler, staticDir, otelServiceName string, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	for _, mw := range extra {
		if mw != nil {
			r.Use(mw)
		}
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/sessions", h.openSession)
	s := r.Group("/sessions/:"+httpx.SessionParam, httpx.SessionIDMiddleware())
	{
		s.DELETE("", h.closeSession)

		s.GET("/products", h.getProducts)
		s.PATCH("/products/variables", h.setVariables)
		s.POST("/products/more", h.fetchMore)

		s.GET("/cart", h.getCart)
		s.POST("/cart/items", h.addCartItem)
		s.PUT("/cart/items/:pid", h.setCartItem)
		s.DELETE("/cart", h.clearCart)

		s.PUT("/checkout", h.setCheckout)
		s.POST("/orders", h.submitOrder)
	}

	r.POST("/products", h.createProduct)
	r.PATCH("/products/:id", h.editProduct)

	r.GET("/order/:id", h.getOrderByID)
	r.GET("/orders/recent", h.recentOrders)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}
	return r
}
