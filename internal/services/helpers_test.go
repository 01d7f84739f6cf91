package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"saheminvest/internal/logger"
	"saheminvest/internal/models"
)

func init() {
	logger.Init("test")
}

// recordingNotifier keeps every event it is given.
type recordingNotifier struct {
	events []NotificationEvent
	err    error
}

func (r *recordingNotifier) Notify(event NotificationEvent) error {
	r.events = append(r.events, event)
	return r.err
}

type testServices struct {
	users    UserServicer
	ledger   LedgerServicer
	pool     PoolServicer
	deals    DealServicer
	engine   DistributionEngine
	requests DistributionRequestServicer
	notifier *recordingNotifier
}

func newTestServices(db *gorm.DB) *testServices {
	ledger := NewLedgerService(db)
	pool := NewPoolService(db, ledger)
	engine := NewDistributionEngine(ledger, pool)
	notifier := &recordingNotifier{}
	return &testServices{
		users:    NewUserService(db),
		ledger:   ledger,
		pool:     pool,
		deals:    NewDealService(db),
		engine:   engine,
		requests: NewDistributionRequestService(db, engine, notifier, "$"),
		notifier: notifier,
	}
}

func actorFor(u *models.User) Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func reloadUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()
	var u models.User
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return &u
}

func reloadDeal(t *testing.T, db *gorm.DB, id string) *models.Deal {
	t.Helper()
	var d models.Deal
	if err := db.First(&d, "id = ?", id).Error; err != nil {
		t.Fatalf("reload deal: %v", err)
	}
	return &d
}
