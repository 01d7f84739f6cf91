package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"saheminvest/internal/metrics"
)

func TestMetricsLabelsByRouteTemplate(t *testing.T) {
	metrics.Init()

	r := gin.New()
	r.Use(Metrics())
	r.GET("/deals/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deals/"+id, http.NoBody))
	}

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	body, _ := io.ReadAll(rec.Body)

	want := `http_requests_total{method="GET",path="/deals/:id",status="204"}`
	if !strings.Contains(string(body), want) {
		t.Errorf("expected %s in metrics output", want)
	}
	if strings.Contains(string(body), `path="/deals/a"`) {
		t.Error("raw paths must not be used as labels")
	}
}
