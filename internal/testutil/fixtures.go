package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"saheminvest/internal/ids"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an investor with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithRole(t, db, models.RoleInvestor)
}

// CreateTestUserWithRole creates a user holding role.
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return createUser(t, db, email, role)
}

// CreateTestUserWithEmail creates an investor with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	return createUser(t, db, email, models.RoleInvestor)
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// appendCompleted writes a COMPLETED ledger entry and applies it to the
// user's cached wallet fields, so fixtures stay reconcilable.
func appendCompleted(t *testing.T, db *gorm.DB, userID string, investmentID *string, txType models.TransactionType, amount money.Money) {
	t.Helper()

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("failed to load user %s: %v", userID, err)
	}

	entry := &models.Transaction{
		UserID:       userID,
		InvestmentID: investmentID,
		Type:         txType,
		Amount:       amount,
		Status:       models.TransactionStatusCompleted,
		Reference:    ids.NewReference(),
		Description:  "fixture",
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create ledger entry: %v", err)
	}

	updates := map[string]interface{}{"wallet_balance": user.WalletBalance.Add(entry.Signed())}
	if txType == models.TransactionTypeInvestment {
		updates["total_invested"] = user.TotalInvested.Add(amount)
	}
	if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		t.Fatalf("failed to update wallet: %v", err)
	}
}

// FundWallet deposits amount into the user's wallet through a ledger entry.
func FundWallet(t *testing.T, db *gorm.DB, userID, amount string) {
	t.Helper()
	appendCompleted(t, db, userID, nil, models.TransactionTypeDeposit, money.MustParse(amount))
}

// CreateTestDeal creates a deal owned by partnerID with the given goal and status.
func CreateTestDeal(t *testing.T, db *gorm.DB, partnerID, fundingGoal string, status models.DealStatus) *models.Deal {
	t.Helper()

	deal := &models.Deal{
		PartnerID:   partnerID,
		Title:       fmt.Sprintf("Test Deal %d", nextID()),
		FundingGoal: money.MustParse(fundingGoal),
		Status:      status,
	}
	if err := db.Create(deal).Error; err != nil {
		t.Fatalf("failed to create test deal: %v", err)
	}
	return deal
}

// CreateTestInvestment records a funded investment the way the pool does:
// the investor deposits and commits amount, and the deal's funding mirror is
// refreshed.
func CreateTestInvestment(t *testing.T, db *gorm.DB, dealID, investorID, amount string) *models.Investment {
	t.Helper()

	value := money.MustParse(amount)
	inv := &models.Investment{
		InvestorID: investorID,
		DealID:     dealID,
		Amount:     value,
		Status:     models.InvestmentStatusActive,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}

	appendCompleted(t, db, investorID, nil, models.TransactionTypeDeposit, value)
	invID := inv.ID
	appendCompleted(t, db, investorID, &invID, models.TransactionTypeInvestment, value)

	var deal models.Deal
	if err := db.First(&deal, "id = ?", dealID).Error; err != nil {
		t.Fatalf("failed to load deal %s: %v", dealID, err)
	}
	if err := db.Model(&models.Deal{}).Where("id = ?", dealID).
		Update("current_funding", deal.CurrentFunding.Add(value)).Error; err != nil {
		t.Fatalf("failed to update deal funding: %v", err)
	}
	return inv
}

// CreateTestDistributionRequest inserts a PENDING request directly, without
// the creation checks, so tests can exercise the engine with any amounts.
func CreateTestDistributionRequest(t *testing.T, db *gorm.DB, deal *models.Deal, distType models.DistributionType, capital, profit, reserved, commission string) *models.DistributionRequest {
	t.Helper()

	req := &models.DistributionRequest{
		DealID:                 deal.ID,
		PartnerID:              deal.PartnerID,
		DistributionType:       distType,
		EstimatedReturnCapital: money.MustParse(capital),
		EstimatedProfit:        money.MustParse(profit),
		ReservedAmount:         money.MustParse(reserved),
		SahemInvestAmount:      money.MustParse(commission),
		Status:                 models.DistributionRequestPending,
	}
	req.TotalAmount = req.EstimatedReturnCapital.Add(req.EstimatedProfit)
	req.NetToInvestors = req.ComputeNetToInvestors()
	if err := db.Create(req).Error; err != nil {
		t.Fatalf("failed to create test distribution request: %v", err)
	}
	return req
}
