package models

import "saheminvest/internal/money"

// TransactionType represents the type of ledger entry
type TransactionType string

const (
	TransactionTypeDeposit            TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal         TransactionType = "WITHDRAWAL"
	TransactionTypeInvestment         TransactionType = "INVESTMENT"
	TransactionTypeReturn             TransactionType = "RETURN"
	TransactionTypeProfitDistribution TransactionType = "PROFIT_DISTRIBUTION"
	TransactionTypeFee                TransactionType = "FEE"
	TransactionTypeCommission         TransactionType = "COMMISSION"
)

// IsCredit reports whether entries of this type add to the wallet.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeReturn, TransactionTypeProfitDistribution, TransactionTypeCommission:
		return true
	}
	return false
}

// IsValid reports whether t is a known ledger entry type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeInvestment,
		TransactionTypeReturn, TransactionTypeProfitDistribution, TransactionTypeFee,
		TransactionTypeCommission:
		return true
	}
	return false
}

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is an append-only ledger entry owned by a user. Amount is always
// positive; the direction is implied by Type. COMPLETED entries are never
// edited; corrections are new offsetting entries.
type Transaction struct {
	Base
	UserID                string            `gorm:"type:uuid;not null;index" json:"user_id"`
	InvestmentID          *string           `gorm:"type:uuid;index" json:"investment_id,omitempty"`
	DistributionRequestID *string           `gorm:"type:uuid;index" json:"distribution_request_id,omitempty"`
	Type                  TransactionType   `gorm:"type:varchar(32);not null" json:"type"`
	Amount                money.Money       `gorm:"type:numeric(20,2);not null" json:"amount"`
	Status                TransactionStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	Reference             string            `gorm:"uniqueIndex;not null" json:"reference"`
	Description           string            `json:"description"`
}

// Signed returns the amount with the sign of its effect on the wallet.
func (t *Transaction) Signed() money.Money {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}
