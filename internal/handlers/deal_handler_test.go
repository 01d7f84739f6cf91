package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/pagination"
	"saheminvest/internal/services"
)

func setupDealRouter(handler *DealHandler, role models.Role) *gin.Engine {
	r := gin.New()
	r.Use(injectActor(testUserID, role))
	r.POST("/deals", handler.CreateDeal)
	r.GET("/deals", handler.ListDeals)
	r.GET("/deals/:id", handler.GetDeal)
	r.POST("/deals/:id/transition", handler.Transition)
	r.POST("/deals/:id/investments", handler.Invest)
	r.GET("/deals/:id/pool", handler.GetPool)
	r.GET("/deals/:id/distributions", handler.ListProfitDistributions)
	return r
}

func newDealHandler(deal *mockDealService, pool *mockPoolService, audit *mockAuditService) *DealHandler {
	return NewDealHandler(deal, pool, &mockDistributionService{}, audit)
}

func TestDealHandler_CreateDeal(t *testing.T) {
	t.Run("returns 201 and passes parsed amounts", func(t *testing.T) {
		var got services.CreateDealInput
		var gotActor services.Actor
		dealSvc := &mockDealService{
			createDealFn: func(actor services.Actor, input services.CreateDealInput) (*models.Deal, error) {
				gotActor, got = actor, input
				return &models.Deal{
					Base:        models.Base{ID: testDealID},
					PartnerID:   actor.ID,
					Title:       input.Title,
					FundingGoal: input.FundingGoal,
					Status:      models.DealStatusDraft,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupDealRouter(newDealHandler(dealSvc, &mockPoolService{}, audit), models.RolePartner)

		rec := doRequest(r, http.MethodPost, "/deals",
			`{"title":"Olive grove","funding_goal":"20000","min_investment":"500","expected_return":"12.5","duration_months":18}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotActor.ID != testUserID || gotActor.Role != models.RolePartner {
			t.Errorf("unexpected actor %+v", gotActor)
		}
		if !got.FundingGoal.Equal(money.MustParse("20000")) || !got.MinInvestment.Equal(money.MustParse("500")) {
			t.Errorf("unexpected amounts %+v", got)
		}
		if !got.ExpectedReturn.Equal(decimal.RequireFromString("12.5")) {
			t.Errorf("expected return 12.5, got %s", got.ExpectedReturn)
		}
		deal := parseJSON(t, rec)["deal"].(map[string]interface{})
		if deal["funding_goal"] != "20000.00" || deal["status"] != "DRAFT" {
			t.Errorf("unexpected deal %v", deal)
		}
		if len(audit.calls) != 1 || audit.calls[0].resourceID != testDealID {
			t.Errorf("expected one audit entry for the deal, got %+v", audit.calls)
		}
	})

	t.Run("returns 400 on three decimal goal", func(t *testing.T) {
		r := setupDealRouter(newDealHandler(&mockDealService{}, &mockPoolService{}, &mockAuditService{}), models.RolePartner)

		rec := doRequest(r, http.MethodPost, "/deals", `{"title":"Olive grove","funding_goal":"100.001"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on zero goal", func(t *testing.T) {
		r := setupDealRouter(newDealHandler(&mockDealService{}, &mockPoolService{}, &mockAuditService{}), models.RolePartner)

		rec := doRequest(r, http.MethodPost, "/deals", `{"title":"Olive grove","funding_goal":"0"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 403 for investor", func(t *testing.T) {
		dealSvc := &mockDealService{
			createDealFn: func(services.Actor, services.CreateDealInput) (*models.Deal, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		r := setupDealRouter(newDealHandler(dealSvc, &mockPoolService{}, &mockAuditService{}), models.RoleInvestor)

		rec := doRequest(r, http.MethodPost, "/deals", `{"title":"Olive grove","funding_goal":"1000"}`)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestDealHandler_ListDeals(t *testing.T) {
	t.Run("passes status filter", func(t *testing.T) {
		var gotFilter services.DealFilter
		var gotPage pagination.PageRequest
		dealSvc := &mockDealService{
			listDealsFn: func(page pagination.PageRequest, filter services.DealFilter) (*pagination.PageResponse[models.Deal], error) {
				gotPage, gotFilter = page, filter
				result := pagination.NewPageResponse([]models.Deal{{Base: models.Base{ID: testDealID}}}, 2, 5, 6)
				return &result, nil
			},
		}
		r := setupDealRouter(newDealHandler(dealSvc, &mockPoolService{}, &mockAuditService{}), models.RoleInvestor)

		rec := doRequest(r, http.MethodGet, "/deals?status=ACTIVE&page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Status == nil || *gotFilter.Status != models.DealStatusActive {
			t.Errorf("expected ACTIVE filter, got %+v", gotFilter)
		}
		if gotFilter.PartnerID != nil {
			t.Errorf("expected no partner filter")
		}
		if gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("unexpected page %+v", gotPage)
		}
		result := parseJSON(t, rec)
		if result["total_pages"] != float64(2) {
			t.Errorf("expected 2 total pages, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupDealRouter(newDealHandler(&mockDealService{}, &mockPoolService{}, &mockAuditService{}), models.RoleInvestor)

		rec := doRequest(r, http.MethodGet, "/deals?status=OPEN", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDealHandler_GetDeal(t *testing.T) {
	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupDealRouter(newDealHandler(&mockDealService{}, &mockPoolService{}, &mockAuditService{}), models.RoleInvestor)

		rec := doRequest(r, http.MethodGet, "/deals/42", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		dealSvc := &mockDealService{
			getDealFn: func(string) (*models.Deal, error) { return nil, apperrors.ErrDealNotFound },
		}
		r := setupDealRouter(newDealHandler(dealSvc, &mockPoolService{}, &mockAuditService{}), models.RoleInvestor)

		rec := doRequest(r, http.MethodGet, "/deals/"+testDealID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DEAL_NOT_FOUND")
	})
}

func TestDealHandler_Transition(t *testing.T) {
	t.Run("returns 200 on allowed transition", func(t *testing.T) {
		var gotTarget models.DealStatus
		dealSvc := &mockDealService{
			transitionFn: func(_ services.Actor, dealID string, target models.DealStatus) (*models.Deal, error) {
				gotTarget = target
				return &models.Deal{Base: models.Base{ID: dealID}, Status: target}, nil
			},
		}
		r := setupDealRouter(newDealHandler(dealSvc, &mockPoolService{}, &mockAuditService{}), models.RoleAdmin)

		rec := doRequest(r, http.MethodPost, "/deals/"+testDealID+"/transition", `{"status":"PUBLISHED"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTarget != models.DealStatusPublished {
			t.Errorf("expected PUBLISHED, got %q", gotTarget)
		}
	})

	t.Run("returns 409 on disallowed transition", func(t *testing.T) {
		dealSvc := &mockDealService{
			transitionFn: func(services.Actor, string, models.DealStatus) (*models.Deal, error) {
				return nil, apperrors.ErrInvalidDealTransition
			},
		}
		r := setupDealRouter(newDealHandler(dealSvc, &mockPoolService{}, &mockAuditService{}), models.RoleAdmin)

		rec := doRequest(r, http.MethodPost, "/deals/"+testDealID+"/transition", `{"status":"DRAFT"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_DEAL_TRANSITION")
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupDealRouter(newDealHandler(&mockDealService{}, &mockPoolService{}, &mockAuditService{}), models.RoleAdmin)

		rec := doRequest(r, http.MethodPost, "/deals/"+testDealID+"/transition", `{"status":"ARCHIVED"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDealHandler_Invest(t *testing.T) {
	t.Run("returns 201 and audits", func(t *testing.T) {
		var gotAmount money.Money
		poolSvc := &mockPoolService{
			investFn: func(actor services.Actor, dealID string, amount money.Money) (*models.Investment, error) {
				gotAmount = amount
				return &models.Investment{Base: models.Base{ID: testRequestID}, DealID: dealID, InvestorID: actor.ID, Amount: amount}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupDealRouter(newDealHandler(&mockDealService{}, poolSvc, audit), models.RoleInvestor)

		rec := doRequest(r, http.MethodPost, "/deals/"+testDealID+"/investments", `{"amount":1500.5}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotAmount.Equal(money.MustParse("1500.50")) {
			t.Errorf("expected 1500.50, got %s", gotAmount)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.AuditInvest {
			t.Errorf("expected INVEST audit, got %+v", audit.calls)
		}
	})

	t.Run("returns 400 on insufficient balance", func(t *testing.T) {
		poolSvc := &mockPoolService{
			investFn: func(services.Actor, string, money.Money) (*models.Investment, error) {
				return nil, apperrors.ErrInsufficientBalance
			},
		}
		r := setupDealRouter(newDealHandler(&mockDealService{}, poolSvc, &mockAuditService{}), models.RoleInvestor)

		rec := doRequest(r, http.MethodPost, "/deals/"+testDealID+"/investments", `{"amount":"100"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_BALANCE")
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		r := setupDealRouter(newDealHandler(&mockDealService{}, &mockPoolService{}, &mockAuditService{}), models.RoleInvestor)

		rec := doRequest(r, http.MethodPost, "/deals/"+testDealID+"/investments", `{"amount":"-5"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDealHandler_GetPool(t *testing.T) {
	var gotActor services.Actor
	poolSvc := &mockPoolService{
		getPoolFn: func(actor services.Actor, dealID string) (*services.PoolSummary, error) {
			gotActor = actor
			return &services.PoolSummary{
				DealID:         dealID,
				CurrentFunding: money.MustParse("20000"),
				Positions: []services.PoolPosition{
					{InvestorID: testUserID, Amount: money.MustParse("15000"), Share: decimal.RequireFromString("0.75")},
				},
			}, nil
		},
	}
	r := setupDealRouter(newDealHandler(&mockDealService{}, poolSvc, &mockAuditService{}), models.RoleInvestor)

	rec := doRequest(r, http.MethodGet, "/deals/"+testDealID+"/pool", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	pool := parseJSON(t, rec)["pool"].(map[string]interface{})
	if pool["current_funding"] != "20000.00" {
		t.Errorf("expected current_funding 20000.00, got %v", pool["current_funding"])
	}
	positions := pool["positions"].([]interface{})
	if len(positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(positions))
	}
	if gotActor.ID != testUserID || gotActor.Role != models.RoleInvestor {
		t.Errorf("expected the caller to be passed to the pool, got %+v", gotActor)
	}
}

func TestDealHandler_ListProfitDistributions(t *testing.T) {
	var gotActor services.Actor
	var gotDeal string
	distSvc := &mockDistributionService{
		payoutsFn: func(actor services.Actor, dealID string, page pagination.PageRequest) (*pagination.PageResponse[models.ProfitDistribution], error) {
			gotActor, gotDeal = actor, dealID
			result := pagination.NewPageResponse([]models.ProfitDistribution{{InvestorID: actor.ID}}, 1, 20, 1)
			return &result, nil
		},
	}
	r := setupDealRouter(NewDealHandler(&mockDealService{}, &mockPoolService{}, distSvc, &mockAuditService{}), models.RoleInvestor)

	rec := doRequest(r, http.MethodGet, "/deals/"+testDealID+"/distributions", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, ok := parseJSON(t, rec)["data"].([]interface{}); !ok {
		t.Error("expected data array")
	}
	if gotActor.ID != testUserID || gotActor.Role != models.RoleInvestor || gotDeal != testDealID {
		t.Errorf("unexpected call actor=%+v deal=%s", gotActor, gotDeal)
	}
}
