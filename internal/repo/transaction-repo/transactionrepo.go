package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"rfidpos/internal/domain"
	"rfidpos/internal/pg"

	"go.uber.org/zap"
)

// Purchases at or above this amount are treated as balance corrections and
// excluded from the sales statistics.
const statsAmountCap = 1000

// POS days run 09:00-08:59, so sales are bucketed by the timestamp shifted
// back nine hours.
const dayOffset = 9 * time.Hour

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (account_id, amount, is_deposit, new_balance, reference)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, tr.AccountID, tr.Amount, tr.IsDeposit, tr.NewBalance, tr.Reference).
		Scan(&tr.ID, &tr.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append transaction", zap.Error(err))
		return nil, err
	}
	return tr, nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT t.id, t.account_id, a.rfid, t.amount, t.is_deposit, t.new_balance, t.reference, t.created_at
        FROM transactions AS t
        INNER JOIN accounts AS a ON t.account_id = a.id
        ORDER BY t.id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *Repository) RecentByAccount(ctx context.Context, accountID, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT t.id, t.account_id, a.rfid, t.amount, t.is_deposit, t.new_balance, t.reference, t.created_at
        FROM transactions AS t
        INNER JOIN accounts AS a ON t.account_id = a.id
        WHERE a.id = $1
        ORDER BY t.id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch account transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var tr domain.Transaction
		err := rows.Scan(&tr.ID, &tr.AccountID, &tr.Rfid, &tr.Amount, &tr.IsDeposit, &tr.NewBalance, &tr.Reference, &tr.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tr)
	}
	return transactions, nil
}

// ReassignHistory moves every transaction of one account onto another.
// Records are never deleted, only their account association changes.
func (r *Repository) ReassignHistory(ctx context.Context, fromID, toID int) error {
	query := `UPDATE transactions SET account_id = $1 WHERE account_id = $2`
	if _, err := r.db.Exec(ctx, query, toID, fromID); err != nil {
		zap.L().Error("failed to reassign transaction history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) TotalSpent(ctx context.Context, accountID int) (int, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE account_id = $1 AND NOT is_deposit AND amount < $2
    `
	var spent int
	if err := r.db.QueryRow(ctx, query, accountID, statsAmountCap).Scan(&spent); err != nil {
		zap.L().Error("failed to sum spendings", zap.Error(err))
		return 0, err
	}
	return spent, nil
}

func (r *Repository) TopSpenders(ctx context.Context, limit int) ([]domain.SpenderTotal, error) {
	query := `
        SELECT a.rfid, SUM(t.amount) AS spent
        FROM transactions AS t
        INNER JOIN accounts AS a ON t.account_id = a.id
        WHERE NOT t.is_deposit AND t.amount < $1
        GROUP BY a.rfid
        ORDER BY spent DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, statsAmountCap, limit)
	if err != nil {
		zap.L().Error("failed to fetch top spenders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanSpenders(rows)
}

func (r *Repository) TopSpendersSince(ctx context.Context, hours, limit int) ([]domain.SpenderTotal, error) {
	query := `
        SELECT a.rfid, SUM(t.amount) AS spent
        FROM transactions AS t
        INNER JOIN accounts AS a ON t.account_id = a.id
        WHERE NOT t.is_deposit AND t.created_at > NOW() - $1 * INTERVAL '1 hour'
        GROUP BY a.rfid
        ORDER BY spent DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, hours, limit)
	if err != nil {
		zap.L().Error("failed to fetch top spenders for window", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanSpenders(rows)
}

func scanSpenders(rows pgx.Rows) ([]domain.SpenderTotal, error) {
	var spenders []domain.SpenderTotal
	for rows.Next() {
		var sp domain.SpenderTotal
		if err := rows.Scan(&sp.Rfid, &sp.Spent); err != nil {
			zap.L().Error("failed to scan spender row", zap.Error(err))
			return nil, err
		}
		spenders = append(spenders, sp)
	}
	return spenders, nil
}

func (r *Repository) TopDays(ctx context.Context) ([]domain.DaySales, error) {
	query := `
        SELECT TO_CHAR(DATE(created_at - INTERVAL '9 hour'), 'FMDay DD-MM-YYYY') AS day, SUM(amount) AS sales
        FROM transactions
        WHERE NOT is_deposit AND amount < $1
        GROUP BY DATE(created_at - INTERVAL '9 hour')
        ORDER BY sales DESC
    `
	rows, err := r.db.Query(ctx, query, statsAmountCap)
	if err != nil {
		zap.L().Error("failed to fetch top days", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var days []domain.DaySales
	for rows.Next() {
		var day domain.DaySales
		if err := rows.Scan(&day.Date, &day.Sales); err != nil {
			zap.L().Error("failed to scan day sales row", zap.Error(err))
			return nil, err
		}
		day.Rank = len(days) + 1
		days = append(days, day)
	}

	return days, nil
}

// SalesForDay returns the sales bucketed on the POS day containing ts, or nil
// when nothing was sold.
func (r *Repository) SalesForDay(ctx context.Context, ts time.Time) (*domain.DaySales, error) {
	query := `
        SELECT TO_CHAR(DATE(created_at - INTERVAL '9 hour'), 'FMDay DD-MM-YYYY') AS day, SUM(amount) AS sales
        FROM transactions
        WHERE NOT is_deposit AND amount < $1
          AND DATE(created_at - INTERVAL '9 hour') = $2
        GROUP BY DATE(created_at - INTERVAL '9 hour')
    `
	var day domain.DaySales
	err := r.db.QueryRow(ctx, query, statsAmountCap, ts.Add(-dayOffset).Format("2006-01-02")).
		Scan(&day.Date, &day.Sales)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to fetch sales for day", zap.Error(err))
		return nil, err
	}
	return &day, nil
}
