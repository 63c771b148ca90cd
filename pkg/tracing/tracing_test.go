package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestGinMiddleware_PropagatesContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())

	var spanCtx context.Context
	router.GET("/ping", func(c *gin.Context) {
		spanCtx = c.Request.Context()
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotNil(t, trace.SpanFromContext(spanCtx))
}

func TestShutdown_NilProvider(t *testing.T) {
	assert.NoError(t, Shutdown(context.Background(), nil))
}
