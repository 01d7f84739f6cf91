package integration

import (
	"net/http"
	"testing"

	"saheminvest/internal/models"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, userID := app.registerUser(t, "auth@test.com", models.RoleInvestor)
	if token == "" || userID == "" {
		t.Fatal("expected token and user ID from registration")
	}

	login := expect(t, app.request(http.MethodPost, "/api/v1/auth/login",
		`{"email":"AUTH@test.com","password":"password123"}`, ""), http.StatusOK)
	loginToken := login["token"].(string)

	user := app.profile(t, loginToken)
	if user["id"] != userID || user["email"] != "auth@test.com" {
		t.Errorf("unexpected profile %v", user)
	}
	if user["role"] != "INVESTOR" || user["wallet_balance"] != "0.00" {
		t.Errorf("expected empty investor wallet, got %v", user)
	}
}

func TestAuthFlow_RegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "dup@test.com", models.RoleInvestor)

	rec := app.request(http.MethodPost, "/api/v1/auth/register", `{"email":"Dup@test.com","password":"password123"}`, "")
	result := expect(t, rec, http.StatusConflict)
	if errorCode(result) != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %v", errorCode(result))
	}
}

func TestAuthFlow_LoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "wrong@test.com", models.RoleInvestor)

	rec := app.request(http.MethodPost, "/api/v1/auth/login", `{"email":"wrong@test.com","password":"nope-nope"}`, "")
	result := expect(t, rec, http.StatusUnauthorized)
	if errorCode(result) != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", errorCode(result))
	}
}

func TestAuthFlow_ProtectedRoutes(t *testing.T) {
	app := setupApp(t)
	investorToken, _ := app.registerUser(t, "investor@test.com", models.RoleInvestor)

	expect(t, app.request(http.MethodGet, "/api/v1/profile", "", ""), http.StatusUnauthorized)
	expect(t, app.request(http.MethodGet, "/api/v1/profile", "", "not-a-jwt"), http.StatusUnauthorized)

	// Role checks run before the handler.
	expect(t, app.request(http.MethodGet, "/api/v1/distribution-requests/pending", "", investorToken), http.StatusForbidden)
	expect(t, app.request(http.MethodPost, "/api/v1/deals", `{"title":"x","funding_goal":"10"}`, investorToken), http.StatusForbidden)
}

func TestPipelineAuth(t *testing.T) {
	app := setupApp(t)

	expect(t, app.request(http.MethodPost, "/api/v1/internal/reconcile", "", ""), http.StatusUnauthorized)
	expect(t, app.pipelineRequest("wrong-key"), http.StatusUnauthorized)

	report := expect(t, app.pipelineRequest(pipelineKey), http.StatusOK)["report"].(map[string]interface{})
	if report["checked_users"] != float64(0) {
		t.Errorf("expected empty report, got %v", report)
	}
}
