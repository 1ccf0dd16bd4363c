package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"rfidpos/internal/domain"
	"rfidpos/internal/pg"

	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.Rfid, &acc.RecoveryCode, &acc.Balance, &acc.IsStaff, &acc.CreatedAt, &acc.LastUsedAt)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) FindByRfid(ctx context.Context, rfid string) (*domain.Account, error) {
	query := `
        SELECT id, rfid, recovery_code, balance, is_staff, created_at, last_used_at
        FROM accounts
        WHERE rfid = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, rfid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find account by rfid", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByRecoveryCode(ctx context.Context, code int) (*domain.Account, error) {
	query := `
        SELECT id, rfid, recovery_code, balance, is_staff, created_at, last_used_at
        FROM accounts
        WHERE recovery_code = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find account by recovery code", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) Create(ctx context.Context, rfid string, recoveryCode int) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (rfid, recovery_code, balance)
        VALUES ($1, $2, 0)
        RETURNING id, rfid, recovery_code, balance, is_staff, created_at, last_used_at
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, rfid, recoveryCode))
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) RecoveryCodeExists(ctx context.Context, code int) (bool, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE recovery_code = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, code).Scan(&count); err != nil {
		zap.L().Error("failed to check recovery code", zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) UpdateRfid(ctx context.Context, accountID int, rfid string) error {
	query := `UPDATE accounts SET rfid = $1, last_used_at = NOW() WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, rfid, accountID); err != nil {
		zap.L().Error("failed to update rfid", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Touch(ctx context.Context, accountID int) error {
	query := `UPDATE accounts SET last_used_at = NOW() WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, accountID); err != nil {
		zap.L().Error("failed to touch account", zap.Error(err))
		return err
	}
	return nil
}

// ApplyBalanceDelta adds delta to the stored balance and returns the balance
// after the change. Withdrawal limits are enforced by the caller.
func (r *Repository) ApplyBalanceDelta(ctx context.Context, rfid string, delta int) (int, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $1, last_used_at = NOW()
        WHERE rfid = $2
        RETURNING balance
    `
	var balance int
	if err := r.db.QueryRow(ctx, query, delta, rfid).Scan(&balance); err != nil {
		zap.L().Error("failed to apply balance delta", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// TransferBalance moves the full balance of one account onto another and
// leaves the source at zero. Callers wrap it in a transaction together with
// the history reassignment.
func (r *Repository) TransferBalance(ctx context.Context, fromID, toID int) error {
	creditQuery := `
        UPDATE accounts
        SET balance = balance + (SELECT balance FROM accounts WHERE id = $1)
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, creditQuery, fromID, toID); err != nil {
		zap.L().Error("failed to credit merge target", zap.Error(err))
		return err
	}

	clearQuery := `UPDATE accounts SET balance = 0 WHERE id = $1`
	if _, err := r.db.Exec(ctx, clearQuery, fromID); err != nil {
		zap.L().Error("failed to clear merge source", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetAll(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT id, rfid, recovery_code, balance, is_staff, created_at, last_used_at
        FROM accounts
        ORDER BY last_used_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		err := rows.Scan(&acc.ID, &acc.Rfid, &acc.RecoveryCode, &acc.Balance, &acc.IsStaff, &acc.CreatedAt, &acc.LastUsedAt)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		zap.L().Error("failed to count accounts", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) TotalBalance(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM accounts`).Scan(&total); err != nil {
		zap.L().Error("failed to sum balances", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// PruneInactive removes empty accounts that have not been used for a year and
// have no audit history attached. Accounts with transactions are kept so the
// log stays referentially intact.
func (r *Repository) PruneInactive(ctx context.Context) (int64, error) {
	query := `
        DELETE FROM accounts
        WHERE balance = 0
          AND NOT is_staff
          AND last_used_at < NOW() - INTERVAL '1 year'
          AND NOT EXISTS (
              SELECT 1 FROM transactions t WHERE t.account_id = accounts.id
          )
    `
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("failed to prune inactive accounts", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
