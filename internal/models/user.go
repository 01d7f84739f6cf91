package models

import (
	"time"

	"saheminvest/internal/money"
)

// Role is the capability a user acts with.
type Role string

const (
	RoleInvestor Role = "INVESTOR"
	RolePartner  Role = "PARTNER"
	RoleAdmin    Role = "ADMIN"
)

// User is an investor, partner or administrator. WalletBalance, TotalInvested
// and TotalReturns are caches of the user's COMPLETED ledger entries and are
// only written by the ledger service.
type User struct {
	Base
	Email               string      `gorm:"uniqueIndex;not null" json:"email"`
	Password            string      `gorm:"not null" json:"-"`
	FirstName           string      `json:"first_name"`
	LastName            string      `json:"last_name"`
	Role                Role        `gorm:"type:varchar(16);not null;default:'INVESTOR'" json:"role"`
	IsActive            bool        `gorm:"default:true" json:"is_active"`
	WalletBalance       money.Money `gorm:"type:numeric(20,2);not null;default:0" json:"wallet_balance"`
	TotalInvested       money.Money `gorm:"type:numeric(20,2);not null;default:0" json:"total_invested"`
	TotalReturns        money.Money `gorm:"type:numeric(20,2);not null;default:0" json:"total_returns"`
	FailedLoginAttempts int         `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time  `json:"-"`
	LastLoginAt         *time.Time  `json:"last_login_at,omitempty"`
}
