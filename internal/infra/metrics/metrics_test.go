//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promo-code-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	m := New()

	m.CodeIssued("postgres")
	m.CodeIssued("postgres")
	m.GenerationCollision("Redis ")
	m.GenerationExhausted("redis")
	m.Redemption("postgres", shared.MarkRedeemed)
	m.Redemption("postgres", shared.MarkAlreadyUsed)
	m.Validation("redis", "not_found")
	m.StoreError("postgres", "InsertIfAbsent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.codesIssued.WithLabelValues("postgres")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationCollisions.WithLabelValues("redis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationExhaustions.WithLabelValues("redis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.redemptions.WithLabelValues("postgres", "redeemed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.redemptions.WithLabelValues("postgres", "already_used")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("redis", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeErrors.WithLabelValues("postgres", "insertifabsent")))
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	engine := gin.New()
	engine.Use(m.GinMiddleware())
	engine.GET("/api/validate/:code", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	for _, code := range []string{"A", "B"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/validate/"+code, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/validate/:code", "GET", "200")))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestSetDBPoolStats(t *testing.T) {
	m := New()
	m.SetDBPoolStats(10, 7, 3)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.dbPoolStats.WithLabelValues("total")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbPoolStats.WithLabelValues("idle")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbPoolStats.WithLabelValues("in_use")))
}
