package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"saheminvest/internal/logger"
	"saheminvest/internal/middleware"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/pagination"
	"saheminvest/internal/services"
	"saheminvest/internal/validator"
)

const (
	testUserID    = "0190f2a4-0000-7000-8000-000000000001"
	testDealID    = "0190f2a4-0000-7000-8000-000000000002"
	testRequestID = "0190f2a4-0000-7000-8000-000000000003"
)

// --- mock services ---

type mockUserService struct {
	createUserFn     func(email, password, firstName, lastName string, role models.Role) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id string) (*models.User, error)
	attemptLoginFn   func(email, password string) (*models.User, error)
}

func (m *mockUserService) CreateUser(email, password, firstName, lastName string, role models.Role) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, firstName, lastName, role)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(_ *models.User, _ string) bool { return true }

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{}, nil
}

type auditCall struct {
	userID, action, resourceType, resourceID string
}

type mockAuditService struct {
	calls []auditCall
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.calls = append(m.calls, auditCall{userID, action, resourceType, resourceID})
}

func (m *mockAuditService) ListForResource(_, _ string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()
	result := pagination.NewPageResponse[models.AuditLog](nil, page.Page, page.PageSize, 0)
	return &result, nil
}

type mockDealService struct {
	createDealFn func(actor services.Actor, input services.CreateDealInput) (*models.Deal, error)
	getDealFn    func(dealID string) (*models.Deal, error)
	listDealsFn  func(page pagination.PageRequest, filter services.DealFilter) (*pagination.PageResponse[models.Deal], error)
	transitionFn func(actor services.Actor, dealID string, target models.DealStatus) (*models.Deal, error)
}

func (m *mockDealService) CreateDeal(actor services.Actor, input services.CreateDealInput) (*models.Deal, error) {
	if m.createDealFn != nil {
		return m.createDealFn(actor, input)
	}
	return &models.Deal{}, nil
}

func (m *mockDealService) GetDeal(dealID string) (*models.Deal, error) {
	if m.getDealFn != nil {
		return m.getDealFn(dealID)
	}
	return &models.Deal{}, nil
}

func (m *mockDealService) ListDeals(page pagination.PageRequest, filter services.DealFilter) (*pagination.PageResponse[models.Deal], error) {
	if m.listDealsFn != nil {
		return m.listDealsFn(page, filter)
	}
	result := pagination.NewPageResponse[models.Deal](nil, 1, 20, 0)
	return &result, nil
}

func (m *mockDealService) Transition(actor services.Actor, dealID string, target models.DealStatus) (*models.Deal, error) {
	if m.transitionFn != nil {
		return m.transitionFn(actor, dealID, target)
	}
	return &models.Deal{}, nil
}

type mockPoolService struct {
	investFn  func(actor services.Actor, dealID string, amount money.Money) (*models.Investment, error)
	getPoolFn func(actor services.Actor, dealID string) (*services.PoolSummary, error)
}

func (m *mockPoolService) CurrentFunding(string) (money.Money, error) { return money.Zero, nil }

func (m *mockPoolService) InvestorShare(string, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *mockPoolService) Shares(*gorm.DB, string) ([]services.InvestmentShare, money.Money, error) {
	return nil, money.Zero, nil
}

func (m *mockPoolService) RefreshFunding(*gorm.DB, *models.Deal) (money.Money, error) {
	return money.Zero, nil
}

func (m *mockPoolService) Invest(actor services.Actor, dealID string, amount money.Money) (*models.Investment, error) {
	if m.investFn != nil {
		return m.investFn(actor, dealID, amount)
	}
	return &models.Investment{}, nil
}

func (m *mockPoolService) GetPool(actor services.Actor, dealID string) (*services.PoolSummary, error) {
	if m.getPoolFn != nil {
		return m.getPoolFn(actor, dealID)
	}
	return &services.PoolSummary{DealID: dealID}, nil
}

func (m *mockPoolService) ReconcileDeal(dealID string) (*services.FundingReconciliation, error) {
	return &services.FundingReconciliation{DealID: dealID}, nil
}

type mockDistributionService struct {
	createFn  func(actor services.Actor, dealID string, input services.CreateDistributionRequestInput) (*models.DistributionRequest, error)
	approveFn func(actor services.Actor, id string) (*services.DistributionResult, error)
	rejectFn  func(actor services.Actor, id, reason string) (*models.DistributionRequest, error)
	getFn     func(actor services.Actor, id string) (*models.DistributionRequest, error)
	payoutsFn func(actor services.Actor, dealID string, page pagination.PageRequest) (*pagination.PageResponse[models.ProfitDistribution], error)
}

func (m *mockDistributionService) Create(actor services.Actor, dealID string, input services.CreateDistributionRequestInput) (*models.DistributionRequest, error) {
	if m.createFn != nil {
		return m.createFn(actor, dealID, input)
	}
	return &models.DistributionRequest{}, nil
}

func (m *mockDistributionService) Approve(actor services.Actor, id string) (*services.DistributionResult, error) {
	if m.approveFn != nil {
		return m.approveFn(actor, id)
	}
	return &services.DistributionResult{Request: &models.DistributionRequest{}}, nil
}

func (m *mockDistributionService) Reject(actor services.Actor, id, reason string) (*models.DistributionRequest, error) {
	if m.rejectFn != nil {
		return m.rejectFn(actor, id, reason)
	}
	return &models.DistributionRequest{}, nil
}

func (m *mockDistributionService) Get(actor services.Actor, id string) (*models.DistributionRequest, error) {
	if m.getFn != nil {
		return m.getFn(actor, id)
	}
	return &models.DistributionRequest{}, nil
}

func (m *mockDistributionService) ListByDeal(services.Actor, string, pagination.PageRequest) (*pagination.PageResponse[models.DistributionRequest], error) {
	result := pagination.NewPageResponse[models.DistributionRequest](nil, 1, 20, 0)
	return &result, nil
}

func (m *mockDistributionService) ListPending(services.Actor, pagination.PageRequest) (*pagination.PageResponse[models.DistributionRequest], error) {
	result := pagination.NewPageResponse[models.DistributionRequest](nil, 1, 20, 0)
	return &result, nil
}

func (m *mockDistributionService) ListProfitDistributions(actor services.Actor, dealID string, page pagination.PageRequest) (*pagination.PageResponse[models.ProfitDistribution], error) {
	if m.payoutsFn != nil {
		return m.payoutsFn(actor, dealID, page)
	}
	result := pagination.NewPageResponse[models.ProfitDistribution](nil, 1, 20, 0)
	return &result, nil
}

type mockLedgerService struct {
	appendEntryFn         func(entry services.LedgerEntry) (*models.Transaction, error)
	reconcileFn           func(userID string) (*services.WalletReconciliation, error)
	getUserTransactionsFn func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	requestDepositFn      func(userID string, amount money.Money, description string) (*models.Transaction, error)
	reviewDepositFn       func(actor services.Actor, id string, status models.TransactionStatus) (*models.Transaction, error)
	pendingDepositsFn     func(actor services.Actor, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

func (m *mockLedgerService) AppendEntry(entry services.LedgerEntry) (*models.Transaction, error) {
	if m.appendEntryFn != nil {
		return m.appendEntryFn(entry)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedgerService) Append(_ *gorm.DB, entry services.LedgerEntry) (*models.Transaction, error) {
	return m.AppendEntry(entry)
}

func (m *mockLedgerService) RequestDeposit(userID string, amount money.Money, description string) (*models.Transaction, error) {
	if m.requestDepositFn != nil {
		return m.requestDepositFn(userID, amount, description)
	}
	return &models.Transaction{UserID: userID, Type: models.TransactionTypeDeposit, Amount: amount, Status: models.TransactionStatusPending}, nil
}

func (m *mockLedgerService) ConfirmDeposit(actor services.Actor, id string) (*models.Transaction, error) {
	return m.reviewDeposit(actor, id, models.TransactionStatusCompleted)
}

func (m *mockLedgerService) RejectDeposit(actor services.Actor, id string) (*models.Transaction, error) {
	return m.reviewDeposit(actor, id, models.TransactionStatusFailed)
}

func (m *mockLedgerService) reviewDeposit(actor services.Actor, id string, status models.TransactionStatus) (*models.Transaction, error) {
	if m.reviewDepositFn != nil {
		return m.reviewDepositFn(actor, id, status)
	}
	return &models.Transaction{Base: models.Base{ID: id}, Type: models.TransactionTypeDeposit, Status: status}, nil
}

func (m *mockLedgerService) ListPendingDeposits(actor services.Actor, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.pendingDepositsFn != nil {
		return m.pendingDepositsFn(actor, page)
	}
	result := pagination.NewPageResponse[models.Transaction](nil, 1, 20, 0)
	return &result, nil
}

func (m *mockLedgerService) Reconcile(userID string) (*services.WalletReconciliation, error) {
	if m.reconcileFn != nil {
		return m.reconcileFn(userID)
	}
	return &services.WalletReconciliation{UserID: userID}, nil
}

func (m *mockLedgerService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	result := pagination.NewPageResponse[models.Transaction](nil, 1, 20, 0)
	return &result, nil
}

type mockReconciliationService struct {
	runFn func() (*services.ReconciliationReport, error)
}

func (m *mockReconciliationService) Run() (*services.ReconciliationReport, error) {
	if m.runFn != nil {
		return m.runFn()
	}
	return &services.ReconciliationReport{}, nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func injectActor(id string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Set(middleware.RoleKey, role)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
