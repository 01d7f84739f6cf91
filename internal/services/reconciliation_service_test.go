package services

import (
	"testing"

	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/testutil"
)

func TestReconciliationRun(t *testing.T) {
	t.Run("clean_after_distribution", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestServices(db)
		f := newPool(t, db, "3000", "2000", "1000")
		req := testutil.CreateTestDistributionRequest(t, db, f.deal, models.DistributionTypePartial, "500", "250.55", "10", "20")

		_, err := svc.requests.Approve(actorFor(f.admin), req.ID)
		testutil.AssertNoError(t, err)

		report, err := NewReconciliationService(db, svc.ledger, svc.pool).Run()
		testutil.AssertNoError(t, err)

		if report.CheckedUsers != 4 || report.CheckedDeals != 1 {
			t.Errorf("expected 4 users and 1 deal checked, got %d and %d", report.CheckedUsers, report.CheckedDeals)
		}
		if report.Mismatches() != 0 {
			t.Errorf("expected no mismatches, got %+v", report)
		}
	})

	t.Run("reports_tampered_totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestServices(db)
		f := newPool(t, db, "3000", "2000")

		testutil.AssertNoError(t, db.Model(f.investors[0]).Update("wallet_balance", money.MustParse("99")).Error)
		testutil.AssertNoError(t, db.Model(f.deal).Update("current_funding", money.MustParse("1500")).Error)

		report, err := NewReconciliationService(db, svc.ledger, svc.pool).Run()
		testutil.AssertNoError(t, err)

		if report.Mismatches() != 2 {
			t.Fatalf("expected 2 mismatches, got %d", report.Mismatches())
		}
		if report.Wallets[0].UserID != f.investors[0].ID {
			t.Errorf("unexpected wallet mismatch: %+v", report.Wallets[0])
		}
		testutil.AssertMoney(t, "deal discrepancy", report.Deals[0].Discrepancy, "-500")
	})
}
