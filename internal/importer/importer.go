package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rfidpos/internal/domain"
	"rfidpos/internal/service/accountservice"
)

// The legacy terminal dumped its state to this file on shutdown. Once the
// records are in the database the file is renamed so a restart does not
// import them twice.
const (
	pendingFile  = "pos.unread.db"
	importedFile = "pos.read.db"
)

const workers = 4

// Record is one card in the legacy dump.
type Record struct {
	Rfid    string `json:"rfid"`
	Balance int    `json:"balance"`
}

type AccountService interface {
	Resolve(ctx context.Context, token string) (*domain.Account, error)
	Count(ctx context.Context) (int, error)
}

type Ledger interface {
	Deposit(ctx context.Context, account *domain.Account, amount int) (int, error)
}

type Confirmer interface {
	Confirm(question string) bool
}

type Service struct {
	accounts AccountService
	ledger   Ledger
	ui       Confirmer
	dir      string
}

func New(accounts AccountService, ledger Ledger, ui Confirmer, dir string) *Service {
	return &Service{
		accounts: accounts,
		ledger:   ledger,
		ui:       ui,
		dir:      dir,
	}
}

// Run imports a pending legacy dump, if one exists. Importing into a database
// that already has accounts needs an explicit go-ahead from the operator.
func (s *Service) Run(ctx context.Context) error {
	pending := filepath.Join(s.dir, pendingFile)

	data, err := os.ReadFile(pending)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't read legacy dump: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("can't parse legacy dump: %w", err)
	}

	if len(records) > 0 {
		count, err := s.accounts.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 && !s.ui.Confirm(fmt.Sprintf("Import %d legacy cards into a database that already has %d accounts?", len(records), count)) {
			zap.L().Info("legacy import declined by operator")
			return nil
		}

		if err := s.importAll(ctx, records); err != nil {
			return err
		}
	}

	if err := os.Rename(pending, filepath.Join(s.dir, importedFile)); err != nil {
		return fmt.Errorf("can't mark legacy dump as imported: %w", err)
	}
	zap.L().Info("legacy import finished", zap.Int("records", len(records)))
	return nil
}

func (s *Service) importAll(ctx context.Context, records []Record) error {
	jobs := make(chan Record)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for rec := range jobs {
				if err := s.importOne(ctx, rec); err != nil {
					return err
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for _, rec := range records {
			select {
			case jobs <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}

func (s *Service) importOne(ctx context.Context, rec Record) error {
	if !accountservice.IsRfid(rec.Rfid) {
		zap.L().Warn("skipping legacy record with unusable rfid", zap.String("rfid", rec.Rfid))
		return nil
	}

	account, err := s.accounts.Resolve(ctx, rec.Rfid)
	if err != nil {
		return fmt.Errorf("can't import card %s: %w", rec.Rfid, err)
	}
	if rec.Balance <= 0 {
		return nil
	}
	if _, err := s.ledger.Deposit(ctx, account, rec.Balance); err != nil {
		return fmt.Errorf("can't restore balance of card %s: %w", rec.Rfid, err)
	}
	return nil
}
