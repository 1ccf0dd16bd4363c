package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rfidpos/internal/domain"
	"rfidpos/internal/pg"
)

// The spender ranking is capped at ten entries.
const topSpendersLimit = 10

var ErrInsufficientBalance = errors.New("balance is too low for that purchase")

type AccountRepo interface {
	ApplyBalanceDelta(ctx context.Context, rfid string, delta int) (int, error)
	TransferBalance(ctx context.Context, fromID, toID int) error
}

type TransactionRepo interface {
	Append(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error)
	Recent(ctx context.Context, limit int) ([]domain.Transaction, error)
	RecentByAccount(ctx context.Context, accountID, limit int) ([]domain.Transaction, error)
	ReassignHistory(ctx context.Context, fromID, toID int) error
	TotalSpent(ctx context.Context, accountID int) (int, error)
	TopSpenders(ctx context.Context, limit int) ([]domain.SpenderTotal, error)
	TopSpendersSince(ctx context.Context, hours, limit int) ([]domain.SpenderTotal, error)
	TopDays(ctx context.Context) ([]domain.DaySales, error)
	SalesForDay(ctx context.Context, ts time.Time) (*domain.DaySales, error)
}

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// Deposit credits the account and records the movement. The returned balance
// is the one stored after the commit.
func (s *Service) Deposit(ctx context.Context, account *domain.Account, amount int) (int, error) {
	return s.commit(ctx, account, amount, true)
}

// Withdraw debits the account for a purchase. The balance may never go
// negative, so purchases above it are refused before anything is written.
func (s *Service) Withdraw(ctx context.Context, account *domain.Account, amount int) (int, error) {
	if amount > account.Balance {
		return 0, ErrInsufficientBalance
	}
	return s.commit(ctx, account, amount, false)
}

// commit applies the balance change and appends the audit record in a single
// database transaction, so the log and the balances can never drift apart.
func (s *Service) commit(ctx context.Context, account *domain.Account, amount int, isDeposit bool) (int, error) {
	delta := amount
	if !isDeposit {
		delta = -amount
	}

	var newBalance int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.accountRepo.ApplyBalanceDelta(ctx, account.Rfid, delta)
		if err != nil {
			return err
		}
		newBalance = balance

		_, err = s.transactionRepo.Append(ctx, &domain.Transaction{
			AccountID:  account.ID,
			Amount:     amount,
			IsDeposit:  isDeposit,
			NewBalance: balance,
			Reference:  uuid.NewString(),
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to commit transaction",
			zap.String("rfid", account.Rfid), zap.Int("amount", amount), zap.Error(err))
		return 0, err
	}

	account.Balance = newBalance
	return newBalance, nil
}

// Merge folds the source account into the destination. History records move
// over unchanged and the full source balance is carried across, so neither the
// record count nor the total balance changes.
func (s *Service) Merge(ctx context.Context, dst, src *domain.Account) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.ReassignHistory(ctx, src.ID, dst.ID); err != nil {
			return err
		}
		return s.accountRepo.TransferBalance(ctx, src.ID, dst.ID)
	})
	if err != nil {
		zap.L().Error("failed to merge accounts",
			zap.String("dst", dst.Rfid), zap.String("src", src.Rfid), zap.Error(err))
		return err
	}

	dst.Balance += src.Balance
	src.Balance = 0
	return nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.Recent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch recent transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) RecentByAccount(ctx context.Context, accountID, limit int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.RecentByAccount(ctx, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch account transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) TotalSpent(ctx context.Context, accountID int) (int, error) {
	spent, err := s.transactionRepo.TotalSpent(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to sum spendings", zap.Error(err))
		return 0, err
	}
	return spent, nil
}

// TopSpenders ranks customers by purchases. A positive hours argument narrows
// the ranking to a trailing window, zero means all time.
func (s *Service) TopSpenders(ctx context.Context, hours int) ([]domain.SpenderTotal, error) {
	var (
		spenders []domain.SpenderTotal
		err      error
	)
	if hours > 0 {
		spenders, err = s.transactionRepo.TopSpendersSince(ctx, hours, topSpendersLimit)
	} else {
		spenders, err = s.transactionRepo.TopSpenders(ctx, topSpendersLimit)
	}
	if err != nil {
		zap.L().Error("failed to rank spenders", zap.Error(err))
		return nil, err
	}
	return spenders, nil
}

func (s *Service) TopDays(ctx context.Context) ([]domain.DaySales, error) {
	days, err := s.transactionRepo.TopDays(ctx)
	if err != nil {
		zap.L().Error("failed to rank sales days", zap.Error(err))
		return nil, err
	}
	return days, nil
}

// TodaySales reports the sales of the POS day in progress, or nil when nothing
// was sold yet.
func (s *Service) TodaySales(ctx context.Context) (*domain.DaySales, error) {
	day, err := s.transactionRepo.SalesForDay(ctx, time.Now())
	if err != nil {
		zap.L().Error("failed to fetch today's sales", zap.Error(err))
		return nil, err
	}
	return day, nil
}
