// Package errors provides the typed application errors returned by services.
// Every AppError carries a Kind that places it in the platform's error
// taxonomy (validation, state conflict, consistency, storage, ...), a stable
// code for clients and an optional internal cause that is logged but never
// serialized.
package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindStateConflict Kind = "state_conflict"
	KindConsistency   Kind = "consistency"
	KindStorage       Kind = "storage"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindInternal      Kind = "internal"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Kind       Kind              `json:"kind"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
	Internal   error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so that wrapped copies of a sentinel compare
// equal to the sentinel itself.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func (e *AppError) clone() *AppError {
	c := *e
	if e.Fields != nil {
		c.Fields = make(map[string]string, len(e.Fields))
		for k, v := range e.Fields {
			c.Fields[k] = v
		}
	}
	return &c
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	c := sentinel.clone()
	c.Internal = internal
	return c
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	c := sentinel.clone()
	c.Message = message
	return c
}

// WithField attaches field-level detail to a copy of sentinel.
func WithField(sentinel *AppError, field, detail string) *AppError {
	c := sentinel.clone()
	if c.Fields == nil {
		c.Fields = map[string]string{}
	}
	c.Fields[field] = detail
	return c
}

// KindOf returns the Kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized, Kind: KindAuthorization}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized, Kind: KindAuthorization}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden, Kind: KindAuthorization}
	ErrRateLimited        = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests, Kind: KindAuthorization}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account temporarily locked after repeated failed logins", StatusCode: http.StatusLocked, Kind: KindAuthorization}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError, Kind: KindInternal}
	ErrStorage        = &AppError{Code: "STORAGE_ERROR", Message: "The operation could not be stored, please retry", StatusCode: http.StatusServiceUnavailable, Kind: KindStorage}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict, Kind: KindStateConflict}
)

// Ledger errors.
var (
	ErrInvalidAmount          = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a positive value with at most two decimals", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrInsufficientBalance    = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Insufficient wallet balance", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrDepositNotPending      = &AppError{Code: "DEPOSIT_NOT_PENDING", Message: "Deposit has already been reviewed", StatusCode: http.StatusConflict, Kind: KindStateConflict}
)

// Deal and pool errors.
var (
	ErrDealNotFound           = &AppError{Code: "DEAL_NOT_FOUND", Message: "Deal not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrInvestmentNotFound     = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrInvalidDealTransition  = &AppError{Code: "INVALID_DEAL_TRANSITION", Message: "Deal cannot move to the requested status", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrDealNotOpen            = &AppError{Code: "DEAL_NOT_OPEN", Message: "Deal is not accepting investments", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrDealHasCapital         = &AppError{Code: "DEAL_HAS_CAPITAL", Message: "Deal has committed capital and cannot be cancelled", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrFundingGoalExceeded    = &AppError{Code: "FUNDING_GOAL_EXCEEDED", Message: "Investment exceeds the remaining funding goal", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrBelowMinimumInvestment = &AppError{Code: "BELOW_MINIMUM_INVESTMENT", Message: "Investment is below the deal minimum", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrEmptyPool              = &AppError{Code: "EMPTY_POOL", Message: "Deal has no funded investments to distribute to", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrFundingMirrorOutOfSync = &AppError{Code: "FUNDING_OUT_OF_SYNC", Message: "Deal funding total does not match its investments", StatusCode: http.StatusInternalServerError, Kind: KindConsistency}
)

// Distribution errors.
var (
	ErrDistributionRequestNotFound = &AppError{Code: "DISTRIBUTION_REQUEST_NOT_FOUND", Message: "Distribution request not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrDealNotDistributable        = &AppError{Code: "DEAL_NOT_DISTRIBUTABLE", Message: "Distributions are only allowed on active or funded deals", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrPendingRequestExists        = &AppError{Code: "PENDING_REQUEST_EXISTS", Message: "Deal already has a pending distribution request", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrRequestNotPending           = &AppError{Code: "REQUEST_NOT_PENDING", Message: "Distribution request has already been reviewed", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrRequestAlreadyApplied       = &AppError{Code: "REQUEST_ALREADY_APPLIED", Message: "Distribution request has already been applied", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrRequestNotApproved          = &AppError{Code: "REQUEST_NOT_APPROVED", Message: "Only approved distribution requests can be applied", StatusCode: http.StatusConflict, Kind: KindStateConflict}
	ErrAmountMismatch              = &AppError{Code: "AMOUNT_MISMATCH", Message: "Total amount must equal returned capital plus profit", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrInvalidPercent              = &AppError{Code: "INVALID_PERCENT", Message: "Percent must be between 0 and 100", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrCommissionExceedsProfit     = &AppError{Code: "COMMISSION_EXCEEDS_PROFIT", Message: "Platform commission exceeds its share of the profit", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrDeductionsExceedTotal       = &AppError{Code: "DEDUCTIONS_EXCEED_TOTAL", Message: "Reserve and commission exceed the distributable profit", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrRejectionReasonRequired     = &AppError{Code: "REJECTION_REASON_REQUIRED", Message: "A rejection reason is required", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrNegativeNetDistribution     = &AppError{Code: "NEGATIVE_NET_DISTRIBUTION", Message: "Net amount to investors is negative", StatusCode: http.StatusInternalServerError, Kind: KindConsistency}
	ErrDistributionImbalance       = &AppError{Code: "DISTRIBUTION_IMBALANCE", Message: "Investor payouts do not add up to the net distribution", StatusCode: http.StatusInternalServerError, Kind: KindConsistency}
)
