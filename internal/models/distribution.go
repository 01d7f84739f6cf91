package models

import (
	"time"

	"github.com/shopspring/decimal"

	"saheminvest/internal/money"
)

// DistributionType tells whether a distribution keeps the deal running.
type DistributionType string

const (
	DistributionTypePartial DistributionType = "PARTIAL"
	DistributionTypeFinal   DistributionType = "FINAL"
)

// DistributionRequestStatus is the review state of a distribution request.
type DistributionRequestStatus string

const (
	DistributionRequestPending  DistributionRequestStatus = "PENDING"
	DistributionRequestApproved DistributionRequestStatus = "APPROVED"
	DistributionRequestRejected DistributionRequestStatus = "REJECTED"
)

// DistributionRequest is a partner's proposal to pay capital and profit out of
// a deal. TotalAmount = EstimatedReturnCapital + EstimatedProfit; the reserve
// and the platform commission are both taken out of EstimatedProfit.
type DistributionRequest struct {
	Base
	DealID                 string                    `gorm:"type:uuid;not null;index" json:"deal_id"`
	PartnerID              string                    `gorm:"type:uuid;not null;index" json:"partner_id"`
	DistributionType       DistributionType          `gorm:"type:varchar(16);not null" json:"distribution_type"`
	TotalAmount            money.Money               `gorm:"type:numeric(20,2);not null" json:"total_amount"`
	EstimatedReturnCapital money.Money               `gorm:"type:numeric(20,2);not null;default:0" json:"estimated_return_capital"`
	EstimatedProfit        money.Money               `gorm:"type:numeric(20,2);not null;default:0" json:"estimated_profit"`
	EstimatedGainPercent   decimal.Decimal           `gorm:"type:numeric(9,2);not null;default:0" json:"estimated_gain_percent"`
	ReservedGainPercent    decimal.Decimal           `gorm:"type:numeric(5,2);not null;default:0" json:"reserved_gain_percent"`
	ReservedAmount         money.Money               `gorm:"type:numeric(20,2);not null;default:0" json:"reserved_amount"`
	SahemInvestPercent     decimal.Decimal           `gorm:"type:numeric(5,2);not null;default:0" json:"sahem_invest_percent"`
	SahemInvestAmount      money.Money               `gorm:"type:numeric(20,2);not null;default:0" json:"sahem_invest_amount"`
	Status                 DistributionRequestStatus `gorm:"type:varchar(16);not null;default:'PENDING';index" json:"status"`
	Description            string                    `json:"description"`
	ReviewedBy             *string                   `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt             *time.Time                `json:"reviewed_at,omitempty"`
	RejectionReason        string                    `json:"rejection_reason,omitempty"`
	NetToInvestors         money.Money               `gorm:"type:numeric(20,2);not null;default:0" json:"net_to_investors"`
	AppliedAt              *time.Time                `json:"applied_at,omitempty"`
}

// ComputeNetToInvestors returns what remains for investors once reserve and commission
// are withheld.
func (r *DistributionRequest) ComputeNetToInvestors() money.Money {
	return r.TotalAmount.Sub(r.ReservedAmount).Sub(r.SahemInvestAmount)
}

// ProfitDistribution records what one investment received from one applied
// distribution request. Rows are written once by the distribution engine.
type ProfitDistribution struct {
	Base
	DistributionRequestID string           `gorm:"type:uuid;not null;uniqueIndex:idx_profit_distribution_request_investment" json:"distribution_request_id"`
	InvestmentID          string           `gorm:"type:uuid;not null;uniqueIndex:idx_profit_distribution_request_investment" json:"investment_id"`
	DealID                string           `gorm:"type:uuid;not null;index" json:"deal_id"`
	InvestorID            string           `gorm:"type:uuid;not null;index" json:"investor_id"`
	Amount                money.Money      `gorm:"type:numeric(20,2);not null" json:"amount"`
	ProfitAmount          money.Money      `gorm:"type:numeric(20,2);not null" json:"profit_amount"`
	CapitalAmount         money.Money      `gorm:"type:numeric(20,2);not null" json:"capital_amount"`
	ProfitRate            decimal.Decimal  `gorm:"type:numeric(9,2);not null" json:"profit_rate"`
	InvestmentShare       decimal.Decimal  `gorm:"type:numeric(16,12);not null" json:"investment_share"`
	ProfitPeriod          DistributionType `gorm:"type:varchar(16);not null" json:"profit_period"`
	DistributionDate      time.Time        `gorm:"not null" json:"distribution_date"`
}
