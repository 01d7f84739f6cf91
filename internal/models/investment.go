package models

import (
	"time"

	"saheminvest/internal/money"
)

// InvestmentStatus is the state of a single capital commitment.
type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "ACTIVE"
	InvestmentStatusCompleted InvestmentStatus = "COMPLETED"
)

// Investment is an investor's capital commitment to a deal. Amount is fixed at
// creation; ActualReturn accumulates the profit paid against it.
type Investment struct {
	Base
	InvestorID     string           `gorm:"type:uuid;not null;index" json:"investor_id"`
	DealID         string           `gorm:"type:uuid;not null;index" json:"deal_id"`
	Amount         money.Money      `gorm:"type:numeric(20,2);not null" json:"amount"`
	Status         InvestmentStatus `gorm:"type:varchar(16);not null;default:'ACTIVE';index" json:"status"`
	ExpectedReturn money.Money      `gorm:"type:numeric(20,2);not null;default:0" json:"expected_return"`
	ActualReturn   money.Money      `gorm:"type:numeric(20,2);not null;default:0" json:"actual_return"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`

	Investor User `gorm:"foreignKey:InvestorID" json:"-"`
	Deal     Deal `gorm:"foreignKey:DealID" json:"-"`
}
