package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "saheminvest/internal/errors"
)

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.WithField(apperrors.ErrInvalidPercent, "sahem_invest_percent", "must be between 0 and 100"))
	})
	r.GET("/unexpected", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	t.Run("app_error_with_fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app", http.NoBody))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		errObj, _ := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "INVALID_PERCENT" {
			t.Errorf("error code = %v, want INVALID_PERCENT", errObj["code"])
		}
		fields, _ := errObj["fields"].(map[string]interface{})
		if fields["sahem_invest_percent"] == nil {
			t.Errorf("expected field detail, got %v", errObj)
		}
	})

	t.Run("unexpected_error_is_hidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unexpected", http.NoBody))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		errObj, _ := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["message"] == "boom" {
			t.Error("internal error text must not leak")
		}
	})
}
