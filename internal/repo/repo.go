package repo

import (
	"rfidpos/internal/pg"
	accountrepo "rfidpos/internal/repo/account-repo"
	transactionrepo "rfidpos/internal/repo/transaction-repo"
	versionrepo "rfidpos/internal/repo/version-repo"
	"rfidpos/internal/service/accountservice"
	"rfidpos/internal/service/ledgerservice"
	"rfidpos/internal/updater"
)

type Repositories struct {
	AccountRepo     accountservice.Repo
	TransactionRepo ledgerservice.TransactionRepo
	VersionRepo     updater.VersionStore
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:     accountrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		VersionRepo:     versionrepo.New(conn),
	}
}
