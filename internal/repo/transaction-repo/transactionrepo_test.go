package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"rfidpos/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Record is appended with generated id and timestamp",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (account_id, amount, is_deposit, new_balance, reference)")).
					WithArgs(1, 50, true, 150, "ref-1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (account_id, amount, is_deposit, new_balance, reference)")).
					WithArgs(1, 50, true, 150, "ref-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tr, err := repo.Append(context.Background(), &domain.Transaction{
				AccountID: 1, Amount: 50, IsDeposit: true, NewBalance: 150, Reference: "ref-1",
			})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 10, tr.ID)
			assert.Equal(t, now, tr.CreatedAt)
		})
	}
}

func TestRepository_Recent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "rfid", "amount", "is_deposit", "new_balance", "reference", "created_at"}).
		AddRow(12, 1, "0006655137", 30, false, 120, "ref-2", now).
		AddRow(11, 1, "0006655137", 50, true, 150, "ref-1", now)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.id DESC")).
		WithArgs(2).
		WillReturnRows(rows)

	transactions, err := repo.Recent(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, 12, transactions[0].ID)
	assert.False(t, transactions[0].IsDeposit)
	assert.Equal(t, "0006655137", transactions[1].Rfid)
}

func TestRepository_RecentByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "rfid", "amount", "is_deposit", "new_balance", "reference", "created_at"}).
		AddRow(11, 1, "0006655137", 50, true, 150, "ref-1", now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.id = $1")).
		WithArgs(1, 15).
		WillReturnRows(rows)

	transactions, err := repo.RecentByAccount(context.Background(), 1, 15)
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, 1, transactions[0].AccountID)
}

func TestRepository_ReassignHistory(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET account_id = $1 WHERE account_id = $2")).
		WithArgs(1, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 4))

	err := repo.ReassignHistory(context.Background(), 2, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TotalSpent(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE account_id = $1 AND NOT is_deposit AND amount < $2")).
		WithArgs(1, 1000).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(420))

	spent, err := repo.TotalSpent(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 420, spent)
}

func TestRepository_TopSpenders(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.SpenderTotal
	}{
		{
			name: "Ranking excludes deposits and corrections",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"rfid", "spent"}).
					AddRow("0006655137", 900).
					AddRow("0009999999", 300)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT t.is_deposit AND t.amount < $1")).
					WithArgs(1000, 10).
					WillReturnRows(rows)
			},
			result: []domain.SpenderTotal{
				{Rfid: "0006655137", Spent: 900},
				{Rfid: "0009999999", Spent: 300},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT t.is_deposit AND t.amount < $1")).
					WithArgs(1000, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			spenders, err := repo.TopSpenders(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, spenders)
		})
	}
}

func TestRepository_TopSpendersSince(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"rfid", "spent"}).
		AddRow("0006655137", 120)
	mock.ExpectQuery(regexp.QuoteMeta("t.created_at > NOW() - $1 * INTERVAL '1 hour'")).
		WithArgs(48, 10).
		WillReturnRows(rows)

	spenders, err := repo.TopSpendersSince(context.Background(), 48, 10)
	assert.NoError(t, err)
	assert.Len(t, spenders, 1)
	assert.Equal(t, 120, spenders[0].Spent)
}

func TestRepository_TopDays(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"day", "sales"}).
		AddRow("Friday 29-08-2026", 900).
		AddRow("Thursday 28-08-2026", 750)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY DATE(created_at - INTERVAL '9 hour')")).
		WithArgs(1000).
		WillReturnRows(rows)

	days, err := repo.TopDays(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.DaySales{
		{Rank: 1, Date: "Friday 29-08-2026", Sales: 900},
		{Rank: 2, Date: "Thursday 28-08-2026", Sales: 750},
	}, days)
}

func TestRepository_SalesForDay(t *testing.T) {
	repo, mock := NewMock(t)
	ts := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("Sales exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DATE(created_at - INTERVAL '9 hour') = $2")).
			WithArgs(1000, "2026-08-29").
			WillReturnRows(pgxmock.NewRows([]string{"day", "sales"}).AddRow("Saturday 29-08-2026", 420))

		day, err := repo.SalesForDay(context.Background(), ts)
		assert.NoError(t, err)
		assert.Equal(t, 420, day.Sales)
	})

	t.Run("Early morning belongs to the previous day", func(t *testing.T) {
		early := time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("DATE(created_at - INTERVAL '9 hour') = $2")).
			WithArgs(1000, "2026-08-28").
			WillReturnRows(pgxmock.NewRows([]string{"day", "sales"}).AddRow("Friday 28-08-2026", 900))

		day, err := repo.SalesForDay(context.Background(), early)
		assert.NoError(t, err)
		assert.Equal(t, "Friday 28-08-2026", day.Date)
	})

	t.Run("No sales yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DATE(created_at - INTERVAL '9 hour') = $2")).
			WithArgs(1000, "2026-08-29").
			WillReturnError(pgx.ErrNoRows)

		day, err := repo.SalesForDay(context.Background(), ts)
		assert.NoError(t, err)
		assert.Nil(t, day)
	})
}
