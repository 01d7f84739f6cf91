package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string, role models.Role) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// LedgerEntry describes one ledger append. Amount is always positive; the
// direction is implied by Type.
type LedgerEntry struct {
	UserID                string
	InvestmentID          *string
	DistributionRequestID *string
	Type                  models.TransactionType
	Amount                money.Money
	Description           string
}

// TransactionFilter holds optional filter parameters for listing ledger entries.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
}

// WalletReconciliation compares a user's cached wallet fields with the values
// obtained by replaying their COMPLETED ledger entries.
type WalletReconciliation struct {
	UserID              string      `json:"user_id"`
	CachedBalance       money.Money `json:"cached_balance"`
	ReplayedBalance     money.Money `json:"replayed_balance"`
	BalanceDiscrepancy  money.Money `json:"balance_discrepancy"`
	CachedInvested      money.Money `json:"cached_invested"`
	ReplayedInvested    money.Money `json:"replayed_invested"`
	InvestedDiscrepancy money.Money `json:"invested_discrepancy"`
	CachedReturns       money.Money `json:"cached_returns"`
	ReplayedReturns     money.Money `json:"replayed_returns"`
	ReturnsDiscrepancy  money.Money `json:"returns_discrepancy"`
}

// IsBalanced reports whether every cached field matches the ledger.
func (r *WalletReconciliation) IsBalanced() bool {
	return r.BalanceDiscrepancy.IsZero() && r.InvestedDiscrepancy.IsZero() && r.ReturnsDiscrepancy.IsZero()
}

// LedgerServicer defines the contract for the append-only wallet ledger.
type LedgerServicer interface {
	AppendEntry(entry LedgerEntry) (*models.Transaction, error)
	Append(tx *gorm.DB, entry LedgerEntry) (*models.Transaction, error)
	RequestDeposit(userID string, amount money.Money, description string) (*models.Transaction, error)
	ConfirmDeposit(actor Actor, transactionID string) (*models.Transaction, error)
	RejectDeposit(actor Actor, transactionID string) (*models.Transaction, error)
	ListPendingDeposits(actor Actor, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Reconcile(userID string) (*WalletReconciliation, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
}

// CreateDealInput holds the fields a partner supplies for a new deal.
type CreateDealInput struct {
	PartnerID      string
	Title          string
	Description    string
	FundingGoal    money.Money
	MinInvestment  money.Money
	ExpectedReturn decimal.Decimal
	DurationMonths int
}

// DealFilter holds optional filter parameters for listing deals.
type DealFilter struct {
	Status    *models.DealStatus
	PartnerID *string
}

// DealServicer defines the contract for the deal lifecycle.
type DealServicer interface {
	CreateDeal(actor Actor, input CreateDealInput) (*models.Deal, error)
	GetDeal(dealID string) (*models.Deal, error)
	ListDeals(page pagination.PageRequest, filter DealFilter) (*pagination.PageResponse[models.Deal], error)
	Transition(actor Actor, dealID string, target models.DealStatus) (*models.Deal, error)
}

// InvestmentShare is one investment's proportional claim on a deal's payouts.
type InvestmentShare struct {
	Investment models.Investment
	Share      decimal.Decimal
}

// PoolPosition is an investor's aggregated position in a deal.
type PoolPosition struct {
	InvestorID string          `json:"investor_id"`
	Amount     money.Money     `json:"amount"`
	Share      decimal.Decimal `json:"share"`
}

// PoolSummary describes a deal's funding pool computed from its investments.
type PoolSummary struct {
	DealID         string         `json:"deal_id"`
	Status         string         `json:"status"`
	FundingGoal    money.Money    `json:"funding_goal"`
	CurrentFunding money.Money    `json:"current_funding"`
	Remaining      money.Money    `json:"remaining"`
	Positions      []PoolPosition `json:"positions"`
}

// FundingReconciliation compares a deal's cached funding with its investments.
type FundingReconciliation struct {
	DealID      string      `json:"deal_id"`
	Cached      money.Money `json:"cached"`
	Computed    money.Money `json:"computed"`
	Discrepancy money.Money `json:"discrepancy"`
}

// PoolServicer defines the contract for a deal's investment pool.
type PoolServicer interface {
	CurrentFunding(dealID string) (money.Money, error)
	InvestorShare(dealID, investorID string) (decimal.Decimal, error)
	Shares(tx *gorm.DB, dealID string) ([]InvestmentShare, money.Money, error)
	RefreshFunding(tx *gorm.DB, deal *models.Deal) (money.Money, error)
	Invest(actor Actor, dealID string, amount money.Money) (*models.Investment, error)
	GetPool(actor Actor, dealID string) (*PoolSummary, error)
	ReconcileDeal(dealID string) (*FundingReconciliation, error)
}

// CreateDistributionRequestInput holds a partner's proposed distribution.
// Optional fields left nil are derived from the percents.
type CreateDistributionRequestInput struct {
	DistributionType       models.DistributionType
	TotalAmount            money.Money
	EstimatedReturnCapital money.Money
	EstimatedProfit        money.Money
	EstimatedGainPercent   *decimal.Decimal
	ReservedGainPercent    decimal.Decimal
	ReservedAmount         *money.Money
	SahemInvestPercent     decimal.Decimal
	SahemInvestAmount      *money.Money
	Description            string
}

// DistributionRequestServicer defines the contract for the distribution
// request review workflow.
type DistributionRequestServicer interface {
	Create(actor Actor, dealID string, input CreateDistributionRequestInput) (*models.DistributionRequest, error)
	Approve(actor Actor, requestID string) (*DistributionResult, error)
	Reject(actor Actor, requestID, reason string) (*models.DistributionRequest, error)
	Get(actor Actor, requestID string) (*models.DistributionRequest, error)
	ListByDeal(actor Actor, dealID string, page pagination.PageRequest) (*pagination.PageResponse[models.DistributionRequest], error)
	ListPending(actor Actor, page pagination.PageRequest) (*pagination.PageResponse[models.DistributionRequest], error)
	ListProfitDistributions(actor Actor, dealID string, page pagination.PageRequest) (*pagination.PageResponse[models.ProfitDistribution], error)
}

// DistributionResult is everything one applied distribution request changed.
type DistributionResult struct {
	Request             *models.DistributionRequest `json:"request"`
	Deal                *models.Deal                `json:"deal"`
	Investments         []models.Investment         `json:"investments"`
	Transactions        []models.Transaction        `json:"transactions"`
	ProfitDistributions []models.ProfitDistribution `json:"profit_distributions"`
}

// DistributionEngine applies an approved distribution request inside the
// caller's transaction.
type DistributionEngine interface {
	Apply(tx *gorm.DB, req *models.DistributionRequest) (*DistributionResult, error)
}

// ReconciliationReport lists every cached total that disagrees with its
// source records.
type ReconciliationReport struct {
	CheckedUsers int                     `json:"checked_users"`
	CheckedDeals int                     `json:"checked_deals"`
	Wallets      []WalletReconciliation  `json:"wallets"`
	Deals        []FundingReconciliation `json:"deals"`
	RanAt        time.Time               `json:"ran_at"`
}

// Mismatches returns the number of discrepancies in the report.
func (r *ReconciliationReport) Mismatches() int {
	return len(r.Wallets) + len(r.Deals)
}

// ReconciliationServicer defines the contract for periodic consistency audits.
type ReconciliationServicer interface {
	Run() (*ReconciliationReport, error)
}

// NotificationServicer defines the contract for reading in-app notifications.
type NotificationServicer interface {
	ListForUser(userID string, page pagination.PageRequest, unreadOnly bool) (*pagination.PageResponse[models.Notification], error)
	MarkRead(userID, notificationID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
	ListForResource(resourceType, resourceID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}
