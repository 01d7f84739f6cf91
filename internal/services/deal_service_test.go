package services

import (
	"testing"

	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/pagination"
	"saheminvest/internal/testutil"
)

func validDealInput() CreateDealInput {
	return CreateDealInput{
		Title:          "Riyadh logistics hub",
		FundingGoal:    money.MustParse("20000"),
		MinInvestment:  money.MustParse("500"),
		ExpectedReturn: dec("12.5"),
		DurationMonths: 18,
	}
}

func TestCreateDeal(t *testing.T) {
	t.Run("partner_creates_draft", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)

		deal, err := svc.CreateDeal(actorFor(partner), validDealInput())
		testutil.AssertNoError(t, err)

		if deal.Status != models.DealStatusDraft {
			t.Errorf("expected DRAFT, got %s", deal.Status)
		}
		if deal.PartnerID != partner.ID {
			t.Errorf("expected partner %s, got %s", partner.ID, deal.PartnerID)
		}
		if !deal.CurrentFunding.IsZero() {
			t.Errorf("expected zero funding, got %s", deal.CurrentFunding)
		}
	})

	t.Run("admin_must_name_partner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		admin := testutil.CreateTestUserWithRole(t, db, models.RoleAdmin)

		_, err := svc.CreateDeal(actorFor(admin), validDealInput())
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		input := validDealInput()
		input.PartnerID = testutil.CreateTestUserWithRole(t, db, models.RolePartner).ID
		_, err = svc.CreateDeal(actorFor(admin), input)
		testutil.AssertNoError(t, err)
	})

	t.Run("named_user_must_be_partner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		admin := testutil.CreateTestUserWithRole(t, db, models.RoleAdmin)

		input := validDealInput()
		input.PartnerID = testutil.CreateTestUser(t, db).ID
		_, err := svc.CreateDeal(actorFor(admin), input)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("investor_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)

		_, err := svc.CreateDeal(actorFor(testutil.CreateTestUser(t, db)), validDealInput())
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("invalid_amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)

		input := validDealInput()
		input.FundingGoal = money.Zero
		_, err := svc.CreateDeal(actorFor(partner), input)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		input = validDealInput()
		input.MinInvestment = money.MustParse("20000.01")
		_, err = svc.CreateDeal(actorFor(partner), input)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		input = validDealInput()
		input.Title = "  "
		_, err = svc.CreateDeal(actorFor(partner), input)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestTransition(t *testing.T) {
	t.Run("draft_to_published", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		deal := testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusDraft)

		updated, err := svc.Transition(actorFor(partner), deal.ID, models.DealStatusPublished)
		testutil.AssertNoError(t, err)
		if updated.Status != models.DealStatusPublished {
			t.Errorf("expected PUBLISHED, got %s", updated.Status)
		}
		if reloadDeal(t, db, deal.ID).Status != models.DealStatusPublished {
			t.Error("expected the status change to be stored")
		}
	})

	t.Run("completed_only_through_engine", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		admin := testutil.CreateTestUserWithRole(t, db, models.RoleAdmin)
		partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		deal := testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusFunded)

		_, err := svc.Transition(actorFor(admin), deal.ID, models.DealStatusCompleted)
		testutil.AssertAppError(t, err, "INVALID_DEAL_TRANSITION")

		_, err = svc.Transition(actorFor(admin), deal.ID, models.DealStatusFunded)
		testutil.AssertAppError(t, err, "INVALID_DEAL_TRANSITION")
	})

	t.Run("cancel_refused_with_capital", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		admin := testutil.CreateTestUserWithRole(t, db, models.RoleAdmin)
		partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		deal := testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusActive)
		testutil.CreateTestInvestment(t, db, deal.ID, testutil.CreateTestUser(t, db).ID, "10")

		_, err := svc.Transition(actorFor(admin), deal.ID, models.DealStatusCancelled)
		testutil.AssertAppError(t, err, "DEAL_HAS_CAPITAL")
	})

	t.Run("cancel_empty_deal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		admin := testutil.CreateTestUserWithRole(t, db, models.RoleAdmin)
		partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		deal := testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusActive)

		updated, err := svc.Transition(actorFor(admin), deal.ID, models.DealStatusCancelled)
		testutil.AssertNoError(t, err)
		if updated.Status != models.DealStatusCancelled {
			t.Errorf("expected CANCELLED, got %s", updated.Status)
		}

		_, err = svc.Transition(actorFor(admin), deal.ID, models.DealStatusActive)
		testutil.AssertAppError(t, err, "INVALID_DEAL_TRANSITION")
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		admin := testutil.CreateTestUserWithRole(t, db, models.RoleAdmin)
		partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		deal := testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusCompleted)

		_, err := svc.Transition(actorFor(admin), deal.ID, models.DealStatusCancelled)
		testutil.AssertAppError(t, err, "INVALID_DEAL_TRANSITION")
	})

	t.Run("other_partner_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		owner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		other := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		deal := testutil.CreateTestDeal(t, db, owner.ID, "1000", models.DealStatusDraft)

		_, err := svc.Transition(actorFor(other), deal.ID, models.DealStatusPublished)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("owner_cancels_empty_deal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		owner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		deal := testutil.CreateTestDeal(t, db, owner.ID, "1000", models.DealStatusPublished)

		updated, err := svc.Transition(actorFor(owner), deal.ID, models.DealStatusCancelled)
		testutil.AssertNoError(t, err)
		if updated.Status != models.DealStatusCancelled {
			t.Errorf("expected CANCELLED, got %s", updated.Status)
		}
	})

	t.Run("investor_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		owner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
		investor := testutil.CreateTestUser(t, db)
		deal := testutil.CreateTestDeal(t, db, owner.ID, "1000", models.DealStatusDraft)

		_, err := svc.Transition(actorFor(investor), deal.ID, models.DealStatusPublished)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("unknown_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealService(db)
		admin := testutil.CreateTestUserWithRole(t, db, models.RoleAdmin)

		_, err := svc.Transition(actorFor(admin), "missing", "ARCHIVED")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListDeals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDealService(db)
	partner := testutil.CreateTestUserWithRole(t, db, models.RolePartner)
	testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusActive)
	testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusActive)
	testutil.CreateTestDeal(t, db, partner.ID, "1000", models.DealStatusDraft)

	status := models.DealStatusActive
	page, err := svc.ListDeals(pagination.PageRequest{}, DealFilter{Status: &status})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 2 {
		t.Errorf("expected 2 active deals, got %d", page.TotalItems)
	}

	all, err := svc.ListDeals(pagination.PageRequest{Page: 1, PageSize: 2}, DealFilter{PartnerID: &partner.ID})
	testutil.AssertNoError(t, err)
	if all.TotalItems != 3 || len(all.Data) != 2 {
		t.Errorf("unexpected page: items=%d len=%d", all.TotalItems, len(all.Data))
	}
}

func TestDealStatusPredicates(t *testing.T) {
	tests := []struct {
		status       models.DealStatus
		invest       bool
		distribution bool
	}{
		{models.DealStatusDraft, false, false},
		{models.DealStatusPublished, true, false},
		{models.DealStatusActive, true, true},
		{models.DealStatusFunded, false, true},
		{models.DealStatusCompleted, false, false},
		{models.DealStatusCancelled, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := CanReceiveInvestment(tt.status); got != tt.invest {
				t.Errorf("CanReceiveInvestment = %v, want %v", got, tt.invest)
			}
			if got := CanReceiveDistribution(tt.status); got != tt.distribution {
				t.Errorf("CanReceiveDistribution = %v, want %v", got, tt.distribution)
			}
		})
	}
}
