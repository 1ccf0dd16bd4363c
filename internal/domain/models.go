package domain

import "time"

type Account struct {
	ID           int       `db:"id"`
	Rfid         string    `db:"rfid"`
	RecoveryCode int       `db:"recovery_code"`
	Balance      int       `db:"balance"`
	IsStaff      bool      `db:"is_staff"`
	CreatedAt    time.Time `db:"created_at"`
	LastUsedAt   time.Time `db:"last_used_at"`
}

type Transaction struct {
	ID         int       `db:"id"`
	AccountID  int       `db:"account_id"`
	Rfid       string    `db:"rfid"`
	Amount     int       `db:"amount"`
	IsDeposit  bool      `db:"is_deposit"`
	NewBalance int       `db:"new_balance"`
	Reference  string    `db:"reference"`
	CreatedAt  time.Time `db:"created_at"`
}

type Version struct {
	ID         int       `db:"id"`
	Version    string    `db:"version"`
	ExecutedOn time.Time `db:"executed_on"`
}

type DaySales struct {
	Rank  int
	Date  string
	Sales int
}

type SpenderTotal struct {
	Rfid  string
	Spent int
}
