package service

import (
	"rfidpos/internal/config"
	"rfidpos/internal/pg"
	"rfidpos/internal/repo"
	"rfidpos/internal/service/accountservice"
	"rfidpos/internal/service/ledgerservice"
)

type Services struct {
	AccountService *accountservice.Service
	LedgerService  *ledgerservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	accountService := accountservice.New(repo.AccountRepo, cfg.LegacyImport)
	ledgerService := ledgerservice.New(repo.AccountRepo, repo.TransactionRepo, txManager)

	return &Services{
		AccountService: accountService,
		LedgerService:  ledgerService,
	}
}
