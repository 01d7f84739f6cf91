package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"saheminvest/internal/database"
	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/ids"
	"saheminvest/internal/models"
	"saheminvest/internal/money"
	"saheminvest/internal/pagination"
)

// ledgerService owns the append-only transaction ledger and the wallet caches
// derived from it.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// AppendEntry appends one COMPLETED entry and updates the owner's wallet in a
// single transaction.
func (s *ledgerService) AppendEntry(entry LedgerEntry) (*models.Transaction, error) {
	var result *models.Transaction
	err := database.RunInTx(s.db, func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.Append(tx, entry)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Append is the in-transaction form of AppendEntry. The user row is locked
// before the cached wallet fields are recomputed.
func (s *ledgerService) Append(tx *gorm.DB, entry LedgerEntry) (*models.Transaction, error) {
	if entry.UserID == "" {
		return nil, apperrors.WithField(apperrors.ErrInvalidInput, "user_id", "is required")
	}
	if !entry.Type.IsValid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !entry.Amount.IsPositive() {
		return nil, apperrors.WithField(apperrors.ErrInvalidAmount, "amount", "must be greater than zero")
	}

	transaction := &models.Transaction{
		UserID:                entry.UserID,
		InvestmentID:          entry.InvestmentID,
		DistributionRequestID: entry.DistributionRequestID,
		Type:                  entry.Type,
		Amount:                entry.Amount,
		Status:                models.TransactionStatusCompleted,
		Reference:             ids.NewReference(),
		Description:           entry.Description,
	}
	if err := applyToWallet(tx, transaction); err != nil {
		return nil, err
	}
	if err := tx.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return transaction, nil
}

// applyToWallet locks the owner of t and moves its cached wallet fields by the
// effect of t. A debit that would overdraw the wallet is refused.
func applyToWallet(tx *gorm.DB, t *models.Transaction) error {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", t.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}

	balance := user.WalletBalance.Add(t.Signed())
	if balance.IsNegative() {
		return apperrors.ErrInsufficientBalance
	}

	updates := map[string]interface{}{"wallet_balance": balance}
	switch t.Type {
	case models.TransactionTypeInvestment:
		updates["total_invested"] = user.TotalInvested.Add(t.Amount)
	case models.TransactionTypeReturn, models.TransactionTypeProfitDistribution:
		updates["total_returns"] = user.TotalReturns.Add(t.Amount)
	}

	if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// RequestDeposit records a PENDING deposit. The wallet is credited only once
// an administrator confirms it.
func (s *ledgerService) RequestDeposit(userID string, amount money.Money, description string) (*models.Transaction, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithField(apperrors.ErrInvalidAmount, "amount", "must be greater than zero")
	}

	var exists int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if exists == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        models.TransactionTypeDeposit,
		Amount:      amount,
		Status:      models.TransactionStatusPending,
		Reference:   ids.NewReference(),
		Description: description,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return transaction, nil
}

// ConfirmDeposit settles a PENDING deposit and credits the owner's wallet.
func (s *ledgerService) ConfirmDeposit(actor Actor, transactionID string) (*models.Transaction, error) {
	return s.reviewDeposit(actor, transactionID, models.TransactionStatusCompleted)
}

// RejectDeposit marks a PENDING deposit FAILED. The wallet is not touched.
func (s *ledgerService) RejectDeposit(actor Actor, transactionID string) (*models.Transaction, error) {
	return s.reviewDeposit(actor, transactionID, models.TransactionStatusFailed)
}

func (s *ledgerService) reviewDeposit(actor Actor, transactionID string, status models.TransactionStatus) (*models.Transaction, error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}

	var transaction models.Transaction
	err := database.RunInTx(s.db, func(tx *gorm.DB) error {
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND type = ? AND status = ?", transactionID, models.TransactionTypeDeposit, models.TransactionStatusPending).
			Update("status", status)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrStorage, res.Error)
		}

		if err := tx.First(&transaction, "id = ? AND type = ?", transactionID, models.TransactionTypeDeposit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTransactionNotFound
			}
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrDepositNotPending
		}

		if status != models.TransactionStatusCompleted {
			return nil
		}
		return applyToWallet(tx, &transaction)
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListPendingDeposits returns the deposits awaiting review, oldest first.
func (s *ledgerService) ListPendingDeposits(actor Actor, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if err := requireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).
		Where("type = ? AND status = ?", models.TransactionTypeDeposit, models.TransactionStatusPending)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

type ledgerTotalRow struct {
	Type  models.TransactionType
	Total money.Money
}

// Reconcile replays every COMPLETED entry of the user and compares the result
// with the cached wallet fields. It never writes.
func (s *ledgerService) Reconcile(userID string) (*WalletReconciliation, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var rows []ledgerTotalRow
	if err := s.db.Model(&models.Transaction{}).
		Select("type, SUM(amount) AS total").
		Where("user_id = ? AND status = ?", userID, models.TransactionStatusCompleted).
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	balance, invested, returns := money.Zero, money.Zero, money.Zero
	for _, r := range rows {
		if r.Type.IsCredit() {
			balance = balance.Add(r.Total)
		} else {
			balance = balance.Sub(r.Total)
		}
		switch r.Type {
		case models.TransactionTypeInvestment:
			invested = invested.Add(r.Total)
		case models.TransactionTypeReturn, models.TransactionTypeProfitDistribution:
			returns = returns.Add(r.Total)
		}
	}

	return &WalletReconciliation{
		UserID:              user.ID,
		CachedBalance:       user.WalletBalance,
		ReplayedBalance:     balance,
		BalanceDiscrepancy:  user.WalletBalance.Sub(balance),
		CachedInvested:      user.TotalInvested,
		ReplayedInvested:    invested,
		InvestedDiscrepancy: user.TotalInvested.Sub(invested),
		CachedReturns:       user.TotalReturns,
		ReplayedReturns:     returns,
		ReturnsDiscrepancy:  user.TotalReturns.Sub(returns),
	}, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's ledger entries, newest first.
func (s *ledgerService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Normalize(pagination.Ledger)

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("created_at >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("created_at <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	return q
}
