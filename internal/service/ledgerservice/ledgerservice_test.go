package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rfidpos/internal/domain"
	"rfidpos/internal/pg"
)

func setup(t *testing.T) (*Service, *MockAccountRepo, *MockTransactionRepo, *pg.MockTXManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	accountRepo := NewMockAccountRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	return New(accountRepo, transactionRepo, txManager), accountRepo, transactionRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager, ctx context.Context) {
	txManager.EXPECT().Begin(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, transactionRepo, txManager := setup(t)
	account := &domain.Account{ID: 1, Rfid: "0006655137", Balance: 100}

	passthroughTx(txManager, ctx)
	accountRepo.EXPECT().ApplyBalanceDelta(ctx, "0006655137", 50).Return(150, nil)
	transactionRepo.EXPECT().Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, 1, tr.AccountID)
			assert.Equal(t, 50, tr.Amount)
			assert.True(t, tr.IsDeposit)
			assert.Equal(t, 150, tr.NewBalance)
			_, err := uuid.Parse(tr.Reference)
			assert.NoError(t, err)
			return tr, nil
		})

	balance, err := svc.Deposit(ctx, account, 50)
	assert.NoError(t, err)
	assert.Equal(t, 150, balance)
	assert.Equal(t, 150, account.Balance)
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		balance   int
		amount    int
		mockSetup func(accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo, txManager *pg.MockTXManager)
		want      int
		wantErr   error
	}{
		{
			name:    "purchase within balance",
			balance: 100,
			amount:  30,
			mockSetup: func(accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager, ctx)
				accountRepo.EXPECT().ApplyBalanceDelta(ctx, "0006655137", -30).Return(70, nil)
				transactionRepo.EXPECT().Append(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						assert.False(t, tr.IsDeposit)
						assert.Equal(t, 70, tr.NewBalance)
						return tr, nil
					})
			},
			want: 70,
		},
		{
			name:    "purchase equal to balance drains the card",
			balance: 30,
			amount:  30,
			mockSetup: func(accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager, ctx)
				accountRepo.EXPECT().ApplyBalanceDelta(ctx, "0006655137", -30).Return(0, nil)
				transactionRepo.EXPECT().Append(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						return tr, nil
					})
			},
			want: 0,
		},
		{
			name:    "purchase above balance is refused before any write",
			balance: 20,
			amount:  30,
			mockSetup: func(*MockAccountRepo, *MockTransactionRepo, *pg.MockTXManager) {
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:    "failed write leaves the local balance untouched",
			balance: 100,
			amount:  30,
			mockSetup: func(accountRepo *MockAccountRepo, transactionRepo *MockTransactionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager, ctx)
				accountRepo.EXPECT().ApplyBalanceDelta(ctx, "0006655137", -30).
					Return(0, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, transactionRepo, txManager := setup(t)
			tt.mockSetup(accountRepo, transactionRepo, txManager)
			account := &domain.Account{ID: 1, Rfid: "0006655137", Balance: tt.balance}

			balance, err := svc.Withdraw(ctx, account, tt.amount)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, tt.balance, account.Balance)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, balance)
			assert.Equal(t, tt.want, account.Balance)
		})
	}
}

func TestMerge(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, transactionRepo, txManager := setup(t)
	dst := &domain.Account{ID: 1, Rfid: "0006655137", Balance: 100}
	src := &domain.Account{ID: 2, Rfid: "0009999999", Balance: 40}

	passthroughTx(txManager, ctx)
	transactionRepo.EXPECT().ReassignHistory(ctx, 2, 1).Return(nil)
	accountRepo.EXPECT().TransferBalance(ctx, 2, 1).Return(nil)

	err := svc.Merge(ctx, dst, src)
	assert.NoError(t, err)
	assert.Equal(t, 140, dst.Balance)
	assert.Equal(t, 0, src.Balance)
}

func TestMergeRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	svc, _, transactionRepo, txManager := setup(t)
	dst := &domain.Account{ID: 1, Balance: 100}
	src := &domain.Account{ID: 2, Balance: 40}

	passthroughTx(txManager, ctx)
	transactionRepo.EXPECT().ReassignHistory(ctx, 2, 1).Return(errors.New("db down"))

	err := svc.Merge(ctx, dst, src)
	assert.Error(t, err)
	assert.Equal(t, 100, dst.Balance)
	assert.Equal(t, 40, src.Balance)
}

func TestTopSpenders(t *testing.T) {
	ctx := context.Background()
	ranking := []domain.SpenderTotal{{Rfid: "0006655137", Spent: 900}}

	t.Run("zero hours means all time", func(t *testing.T) {
		svc, _, transactionRepo, _ := setup(t)
		transactionRepo.EXPECT().TopSpenders(ctx, 10).Return(ranking, nil)

		got, err := svc.TopSpenders(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, ranking, got)
	})

	t.Run("positive hours narrow the window", func(t *testing.T) {
		svc, _, transactionRepo, _ := setup(t)
		transactionRepo.EXPECT().TopSpendersSince(ctx, 48, 10).Return(ranking, nil)

		got, err := svc.TopSpenders(ctx, 48)
		assert.NoError(t, err)
		assert.Equal(t, ranking, got)
	})
}

func TestTodaySales(t *testing.T) {
	ctx := context.Background()
	svc, _, transactionRepo, _ := setup(t)
	transactionRepo.EXPECT().SalesForDay(ctx, gomock.Any()).
		Return(&domain.DaySales{Date: "Friday 29-08-2026", Sales: 420}, nil)

	day, err := svc.TodaySales(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 420, day.Sales)
}
