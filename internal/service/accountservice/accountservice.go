package accountservice

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"rfidpos/internal/domain"
	"go.uber.org/zap"
)

// An RFID token is any alphanumeric string of at least eight characters; a
// recovery code is exactly six digits. Everything else is not an identity
// token. RFID classification wins for long all-digit tokens.
var (
	rfidPattern         = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)
	recoveryCodePattern = regexp.MustCompile(`^\d{6}$`)
)

const (
	recoveryCodeMin = 100000
	recoveryCodeMax = 999999
)

var (
	ErrNoAccount   = errors.New("no account matches that token")
	ErrNotIdentity = errors.New("not an identity token")
	ErrRfidTaken   = errors.New("rfid already bound to another account")
)

func IsRfid(token string) bool {
	return rfidPattern.MatchString(token)
}

func IsRecoveryCode(token string) bool {
	return recoveryCodePattern.MatchString(token)
}

type Repo interface {
	FindByRfid(ctx context.Context, rfid string) (*domain.Account, error)
	FindByRecoveryCode(ctx context.Context, code int) (*domain.Account, error)
	Create(ctx context.Context, rfid string, recoveryCode int) (*domain.Account, error)
	RecoveryCodeExists(ctx context.Context, code int) (bool, error)
	UpdateRfid(ctx context.Context, accountID int, rfid string) error
	Touch(ctx context.Context, accountID int) error
	GetAll(ctx context.Context) ([]domain.Account, error)
	Count(ctx context.Context) (int, error)
	TotalBalance(ctx context.Context) (int, error)
	ApplyBalanceDelta(ctx context.Context, rfid string, delta int) (int, error)
	TransferBalance(ctx context.Context, fromID, toID int) error
	PruneInactive(ctx context.Context) (int64, error)
}

type Service struct {
	repo         Repo
	legacyCompat bool
}

func New(repo Repo, legacyCompat bool) *Service {
	return &Service{
		repo:         repo,
		legacyCompat: legacyCompat,
	}
}

// Resolve maps a scanned token to an account. RFID tokens are created on
// first sight, recovery codes only ever look up.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Account, error) {
	switch {
	case IsRfid(token):
		return s.resolveRfid(ctx, token)
	case IsRecoveryCode(token):
		return s.resolveRecoveryCode(ctx, token)
	}
	return nil, ErrNotIdentity
}

func (s *Service) resolveRfid(ctx context.Context, token string) (*domain.Account, error) {
	account, err := s.repo.FindByRfid(ctx, token)
	if err != nil {
		zap.L().Error("can't look up rfid", zap.Error(err))
		return nil, err
	}

	if account == nil && s.legacyCompat {
		account, err = s.adoptLegacyRfid(ctx, token)
		if err != nil {
			return nil, err
		}
	}

	if account == nil {
		code, err := s.makeRecoveryCode(ctx)
		if err != nil {
			zap.L().Error("can't generate recovery code", zap.Error(err))
			return nil, err
		}
		account, err = s.repo.Create(ctx, token, code)
		if err != nil {
			zap.L().Error("can't create account", zap.Error(err))
			return nil, err
		}
		zap.L().Info("new account created", zap.String("rfid", token))
		return account, nil
	}

	if err := s.repo.Touch(ctx, account.ID); err != nil {
		zap.L().Error("can't update last used timestamp", zap.Error(err))
	}
	return account, nil
}

// adoptLegacyRfid covers cards stored under the old integer key format. When
// the padded token is unknown but the zero-stripped form matches an account,
// that account is rebound to the padded token and re-fetched so the caller
// sees the canonical record.
func (s *Service) adoptLegacyRfid(ctx context.Context, token string) (*domain.Account, error) {
	stripped := strings.TrimLeft(token, "0")
	if stripped == token || stripped == "" {
		return nil, nil
	}

	legacy, err := s.repo.FindByRfid(ctx, stripped)
	if err != nil {
		zap.L().Error("can't look up legacy rfid", zap.Error(err))
		return nil, err
	}
	if legacy == nil {
		return nil, nil
	}

	if err := s.repo.UpdateRfid(ctx, legacy.ID, token); err != nil {
		zap.L().Error("can't rebind legacy rfid", zap.Error(err))
		return nil, err
	}
	zap.L().Info("legacy card rebound", zap.String("from", stripped), zap.String("to", token))

	account, err := s.repo.FindByRfid(ctx, token)
	if err != nil {
		zap.L().Error("can't re-fetch rebound account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) resolveRecoveryCode(ctx context.Context, token string) (*domain.Account, error) {
	code, _ := strconv.Atoi(token)

	account, err := s.repo.FindByRecoveryCode(ctx, code)
	if err != nil {
		zap.L().Error("can't look up recovery code", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrNoAccount
	}

	if err := s.repo.Touch(ctx, account.ID); err != nil {
		zap.L().Error("can't update last used timestamp", zap.Error(err))
	}
	return account, nil
}

// makeRecoveryCode draws codes uniformly from [100000, 999999] and resamples
// until one is free.
func (s *Service) makeRecoveryCode(ctx context.Context) (int, error) {
	for {
		code := recoveryCodeMin + rand.Intn(recoveryCodeMax-recoveryCodeMin+1)
		exists, err := s.repo.RecoveryCodeExists(ctx, code)
		if err != nil {
			return 0, err
		}
		if !exists {
			return code, nil
		}
	}
}

// Lookup finds an account by its exact rfid without ever creating one.
func (s *Service) Lookup(ctx context.Context, rfid string) (*domain.Account, error) {
	account, err := s.repo.FindByRfid(ctx, rfid)
	if err != nil {
		zap.L().Error("can't look up rfid", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Rebind moves an account onto a new card. The new rfid must not be in use.
func (s *Service) Rebind(ctx context.Context, accountID int, rfid string) error {
	existing, err := s.repo.FindByRfid(ctx, rfid)
	if err != nil {
		zap.L().Error("can't check rfid before rebind", zap.Error(err))
		return err
	}
	if existing != nil {
		return ErrRfidTaken
	}

	if err := s.repo.UpdateRfid(ctx, accountID, rfid); err != nil {
		zap.L().Error("can't rebind rfid", zap.Error(err))
		return err
	}
	zap.L().Info("rfid rebound", zap.Int("accountID", accountID), zap.String("rfid", rfid))
	return nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.GetAll(ctx)
	if err != nil {
		zap.L().Error("can't fetch accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		zap.L().Error("can't count accounts", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (s *Service) TotalBalance(ctx context.Context) (int, error) {
	total, err := s.repo.TotalBalance(ctx)
	if err != nil {
		zap.L().Error("can't sum balances", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (s *Service) Prune(ctx context.Context) (int64, error) {
	affected, err := s.repo.PruneInactive(ctx)
	if err != nil {
		zap.L().Error("can't prune inactive accounts", zap.Error(err))
		return 0, err
	}
	return affected, nil
}
