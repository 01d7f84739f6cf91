package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"saheminvest/internal/config"
	"saheminvest/internal/logger"
	"saheminvest/internal/middleware"
	"saheminvest/internal/models"
	"saheminvest/internal/server"
	"saheminvest/internal/services"
	"saheminvest/internal/testutil"
	"saheminvest/internal/validator"
)

const pipelineKey = "integration-pipeline-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cfg := &config.Config{
		PipelineAPIKey: pipelineKey,
		AuthRateLimit:  1000,
		AuthRateBurst:  1000,
	}
	svc := server.NewServices(db, services.NewDBNotifier(db), "$")

	return &testApp{DB: db, Router: server.NewRouter(cfg, svc)}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// pipelineRequest triggers a reconciliation run with the given API key.
func (app *testApp) pipelineRequest(key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/internal/reconcile", http.NoBody)
	req.Header.Set("X-API-Key", key)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// expect fails the test unless rec has the wanted status, then returns the parsed body.
func expect(t *testing.T, rec *httptest.ResponseRecorder, status int) map[string]interface{} {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	if rec.Body.Len() == 0 {
		return nil
	}
	return parseJSON(t, rec)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(result map[string]interface{}) interface{} {
	errObj, _ := result["error"].(map[string]interface{})
	return errObj["code"]
}

// registerUser registers a user with role and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email string, role models.Role) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"password123","first_name":"Test","last_name":"User","role":%q}`, email, role)
	result := expect(t, app.request(http.MethodPost, "/api/v1/auth/register", body, ""), http.StatusCreated)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// adminToken seeds an administrator directly, since admins cannot self-register.
func (app *testApp) adminToken(t *testing.T) string {
	t.Helper()
	admin := testutil.CreateTestUserWithRole(t, app.DB, models.RoleAdmin)
	token, err := middleware.GenerateToken(admin)
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}
	return token
}

// deposit records a deposit for the user and has an administrator confirm it.
func (app *testApp) deposit(t *testing.T, token, amount string) {
	t.Helper()
	id := app.requestDeposit(t, token, amount)
	expect(t, app.request(http.MethodPost, "/api/v1/admin/deposits/"+id+"/confirm", "", app.adminToken(t)), http.StatusOK)
}

// requestDeposit records a PENDING deposit and returns its transaction ID.
func (app *testApp) requestDeposit(t *testing.T, token, amount string) string {
	t.Helper()
	result := expect(t, app.request(http.MethodPost, "/api/v1/wallet/deposit", fmt.Sprintf(`{"amount":%q}`, amount), token), http.StatusCreated)
	return result["transaction"].(map[string]interface{})["id"].(string)
}

func (app *testApp) profile(t *testing.T, token string) map[string]interface{} {
	t.Helper()
	return expect(t, app.request(http.MethodGet, "/api/v1/profile", "", token), http.StatusOK)["user"].(map[string]interface{})
}

// createActiveDeal creates a deal as the partner and opens it for investment.
func (app *testApp) createActiveDeal(t *testing.T, partnerToken, goal string) string {
	t.Helper()
	body := fmt.Sprintf(`{"title":"Date palm farm","funding_goal":%q,"expected_return":"8","duration_months":12}`, goal)
	deal := expect(t, app.request(http.MethodPost, "/api/v1/deals", body, partnerToken), http.StatusCreated)["deal"].(map[string]interface{})
	dealID := deal["id"].(string)

	expect(t, app.request(http.MethodPost, "/api/v1/deals/"+dealID+"/transition", `{"status":"ACTIVE"}`, partnerToken), http.StatusOK)
	return dealID
}

func (app *testApp) invest(t *testing.T, token, dealID, amount string) {
	t.Helper()
	expect(t, app.request(http.MethodPost, "/api/v1/deals/"+dealID+"/investments", fmt.Sprintf(`{"amount":%q}`, amount), token), http.StatusCreated)
}

func (app *testApp) getDeal(t *testing.T, token, dealID string) map[string]interface{} {
	t.Helper()
	return expect(t, app.request(http.MethodGet, "/api/v1/deals/"+dealID, "", token), http.StatusOK)["deal"].(map[string]interface{})
}
