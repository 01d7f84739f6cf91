package models

import (
	"time"

	"github.com/shopspring/decimal"

	"saheminvest/internal/money"
)

// DealStatus is a stage of the deal lifecycle.
type DealStatus string

const (
	DealStatusDraft     DealStatus = "DRAFT"
	DealStatusPublished DealStatus = "PUBLISHED"
	DealStatusActive    DealStatus = "ACTIVE"
	DealStatusFunded    DealStatus = "FUNDED"
	DealStatusCompleted DealStatus = "COMPLETED"
	DealStatusCancelled DealStatus = "CANCELLED"
)

// Deal is a funding pool raising capital for a venture proposed by a partner.
// CurrentFunding mirrors the sum of the deal's ACTIVE and COMPLETED
// investments and is refreshed from those rows on every write.
type Deal struct {
	Base
	PartnerID      string          `gorm:"type:uuid;not null;index" json:"partner_id"`
	Title          string          `gorm:"not null" json:"title"`
	Description    string          `json:"description"`
	FundingGoal    money.Money     `gorm:"type:numeric(20,2);not null" json:"funding_goal"`
	MinInvestment  money.Money     `gorm:"type:numeric(20,2);not null;default:0" json:"min_investment"`
	CurrentFunding money.Money     `gorm:"type:numeric(20,2);not null;default:0" json:"current_funding"`
	Status         DealStatus      `gorm:"type:varchar(16);not null;default:'DRAFT';index" json:"status"`
	ExpectedReturn decimal.Decimal `gorm:"type:numeric(9,2);not null;default:0" json:"expected_return"`
	ActualReturn   decimal.Decimal `gorm:"type:numeric(9,2);not null;default:0" json:"actual_return"`
	DurationMonths int             `json:"duration_months"`
	FundedAt       *time.Time      `json:"funded_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`

	Partner     User         `gorm:"foreignKey:PartnerID" json:"-"`
	Investments []Investment `gorm:"foreignKey:DealID" json:"investments,omitempty"`
}
