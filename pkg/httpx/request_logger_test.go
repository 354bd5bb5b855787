package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// recLogger — запоминает строки Infof.
type recLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recLogger) Debugf(context.Context, string, ...any) {}
func (l *recLogger) Warnf(context.Context, string, ...any)  {}
func (l *recLogger) Errorf(context.Context, string, ...any) {}
func (l *recLogger) Infof(_ context.Context, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRequestLogger_SessionAndSkippedPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &recLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(200) })
	g := r.Group("/sessions/:id", httpx.SessionIDMiddleware())
	g.GET("/cart", func(c *gin.Context) { c.Status(204) })

	for _, path := range []string{"/ping", "/sessions/s-7/cart"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, http.NoBody))
	}

	if len(log.lines) != 1 {
		t.Fatalf("want 1 access line (ping skipped), got %d: %v", len(log.lines), log.lines)
	}
	line := log.lines[0]
	if !strings.Contains(line, "session=s-7") || !strings.Contains(line, "path=/sessions/:id/cart") || !strings.Contains(line, "status=204") {
		t.Fatalf("unexpected access line: %q", line)
	}
}
