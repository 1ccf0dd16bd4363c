package pos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"rfidpos/internal/domain"
	"rfidpos/internal/service/accountservice"
	"rfidpos/internal/service/ledgerservice"
	"rfidpos/pkg/checksum"
)

// Purchases and deposits at or above this amount need an explicit
// confirmation before they are written.
const highAmountThreshold = 1000

const (
	defaultHistoryLimit = 15
	defaultTopDaysLimit = 10
)

type AccountService interface {
	Resolve(ctx context.Context, token string) (*domain.Account, error)
	Lookup(ctx context.Context, rfid string) (*domain.Account, error)
	Rebind(ctx context.Context, accountID int, rfid string) error
	GetAll(ctx context.Context) ([]domain.Account, error)
	Count(ctx context.Context) (int, error)
	TotalBalance(ctx context.Context) (int, error)
	Prune(ctx context.Context) (int64, error)
}

type LedgerService interface {
	Deposit(ctx context.Context, account *domain.Account, amount int) (int, error)
	Withdraw(ctx context.Context, account *domain.Account, amount int) (int, error)
	Merge(ctx context.Context, dst, src *domain.Account) error
	Recent(ctx context.Context, limit int) ([]domain.Transaction, error)
	RecentByAccount(ctx context.Context, accountID, limit int) ([]domain.Transaction, error)
	TotalSpent(ctx context.Context, accountID int) (int, error)
	TopSpenders(ctx context.Context, hours int) ([]domain.SpenderTotal, error)
	TopDays(ctx context.Context) ([]domain.DaySales, error)
	TodaySales(ctx context.Context) (*domain.DaySales, error)
}

type VersionStore interface {
	Get(ctx context.Context) (*domain.Version, error)
}

type UI interface {
	TakeInput(prompt string) (string, error)
	Confirm(question string) bool
	Display(lines ...string)
	Error(msg string)
	StartTransaction(account *domain.Account)
	EndTransaction(lines ...string)
	ShowTable(rows []string)
	ShowHelp()
	ShowWelcome(version string)
}

// Engine drives the terminal. It owns the single open transaction: a nil
// session means the terminal is idle, otherwise the scanned account is
// waiting for an amount.
type Engine struct {
	accounts AccountService
	ledger   LedgerService
	versions VersionStore
	ui       UI

	session *domain.Account
}

func New(accounts AccountService, ledger LedgerService, versions VersionStore, ui UI) *Engine {
	return &Engine{
		accounts: accounts,
		ledger:   ledger,
		versions: versions,
		ui:       ui,
	}
}

// Run reads input until the operator exits or the input closes.
func (e *Engine) Run(ctx context.Context) error {
	version := "unknown"
	if v, err := e.versions.Get(ctx); err == nil && v != nil {
		version = v.Version
	}
	e.ui.ShowWelcome(version)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		token, err := e.ui.TakeInput("")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if token == "exit" {
			e.closeSession("Goodbye.")
			return nil
		}
		e.handle(ctx, token)
	}
}

// handle classifies one token. Identity tokens outrank amounts, so a string
// of eight or more digits is always read as a card, never as a price.
func (e *Engine) handle(ctx context.Context, token string) {
	switch {
	case token == "":
		if e.session != nil {
			e.closeSession("Not valid input. Transaction aborted.")
			return
		}
		e.ui.Error("Not valid input.")
	case strings.HasPrefix(token, "/"):
		e.handleCommand(ctx, token)
	case accountservice.IsRfid(token) || accountservice.IsRecoveryCode(token):
		e.handleIdentity(ctx, token)
	default:
		e.handleAmount(ctx, token)
	}
}

func (e *Engine) handleIdentity(ctx context.Context, token string) {
	account, err := e.accounts.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, accountservice.ErrNoAccount) {
			e.ui.Error("No account matches that code.")
			e.closeSession()
			return
		}
		e.fail(err)
		return
	}

	if e.session != nil {
		if account.ID == e.session.ID {
			e.ui.Display(fmt.Sprintf("%s read again. Ignoring..", token))
			return
		}
		e.closeSession("New RFID registered. Transaction aborted.")
	}

	e.session = account
	e.ui.StartTransaction(account)
}

func (e *Engine) handleAmount(ctx context.Context, token string) {
	if e.session == nil {
		e.ui.Error("Not valid input.")
		return
	}

	isDeposit := strings.HasPrefix(token, "+")
	amount, err := strconv.Atoi(strings.TrimPrefix(token, "+"))
	if err != nil {
		e.ui.Error("Not a number.")
		return
	}
	if amount < 0 {
		e.ui.Error("Negative values are not accepted.")
		return
	}
	if amount == 0 {
		e.ui.Error("Not valid input.")
		return
	}

	if amount >= highAmountThreshold {
		if !e.ui.Confirm(fmt.Sprintf("That is a lot: %d. Are you sure?", amount)) {
			// the card stays scanned, only the amount is discarded
			e.ui.Display("Aborting..")
			return
		}
	}

	if isDeposit {
		balance, err := e.ledger.Deposit(ctx, e.session, amount)
		if err != nil {
			e.fail(err)
			return
		}
		e.ui.EndTransaction(fmt.Sprintf("Deposited %d into RFID '%s'. New balance: %d", amount, e.session.Rfid, balance))
		e.session = nil
		return
	}

	balance, err := e.ledger.Withdraw(ctx, e.session, amount)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrInsufficientBalance) {
			e.ui.Error("The balance on this card isn't high enough for that purchase.")
			return
		}
		e.fail(err)
		return
	}
	e.ui.EndTransaction(fmt.Sprintf("Withdrew %d from RFID '%s'. New balance: %d", amount, e.session.Rfid, balance))
	e.session = nil
}

func (e *Engine) handleCommand(ctx context.Context, token string) {
	fields := strings.Fields(token)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/help":
		e.ui.ShowHelp()
	case "/checksum":
		e.runChecksum()
	case "/transactions":
		e.showTransactions(ctx, args)
	case "/users":
		e.showUsers(ctx)
	case "/stats":
		e.showStats(ctx)
	case "/topTen":
		e.showTopSpenders(ctx, args)
	case "/topDays":
		e.showTopDays(ctx, args)
	case "/totalSpent":
		e.showTotalSpent(ctx)
	case "/updateRfid":
		e.updateRfid(ctx)
	case "/merge":
		e.merge(ctx)
	case "/prune":
		e.prune(ctx)
	case "/version":
		e.showVersion(ctx)
	default:
		e.ui.Error("Unknown command. Try /help.")
	}
}

func (e *Engine) runChecksum() {
	if e.session == nil {
		e.ui.Error("Scan a card first.")
		return
	}
	sum, err := checksum.Compute(e.session.Rfid)
	if err != nil {
		e.ui.Error("That card has no valid checksum.")
		return
	}
	e.ui.Display(fmt.Sprintf("Checksum for %s: %d", e.session.Rfid, sum))
}

// showTransactions lists recent history, narrowed to the scanned card while a
// transaction is open.
func (e *Engine) showTransactions(ctx context.Context, args []string) {
	limit := parseArg(args, defaultHistoryLimit)

	var (
		transactions []domain.Transaction
		err          error
	)
	if e.session != nil {
		transactions, err = e.ledger.RecentByAccount(ctx, e.session.ID, limit)
	} else {
		transactions, err = e.ledger.Recent(ctx, limit)
	}
	if err != nil {
		e.fail(err)
		return
	}
	if len(transactions) == 0 {
		e.ui.Display("No transactions yet.")
		return
	}

	rows := []string{"When | RFID | Amount | Type | Balance after", "==="}
	for _, tr := range transactions {
		kind := "purchase"
		if tr.IsDeposit {
			kind = "deposit"
		}
		rows = append(rows, fmt.Sprintf("%s | %s | %d | %s | %d",
			tr.CreatedAt.Format("02-01-2006 15:04"), tr.Rfid, tr.Amount, kind, tr.NewBalance))
	}
	e.ui.ShowTable(rows)
}

func (e *Engine) showUsers(ctx context.Context) {
	accounts, err := e.accounts.GetAll(ctx)
	if err != nil {
		e.fail(err)
		return
	}
	if len(accounts) == 0 {
		e.ui.Display("No accounts yet.")
		return
	}

	rows := []string{"RFID | Balance | Last used", "==="}
	for _, acc := range accounts {
		rows = append(rows, fmt.Sprintf("%s | %d | %s",
			acc.Rfid, acc.Balance, acc.LastUsedAt.Format("02-01-2006 15:04")))
	}
	e.ui.ShowTable(rows)
}

func (e *Engine) showStats(ctx context.Context) {
	count, err := e.accounts.Count(ctx)
	if err != nil {
		e.fail(err)
		return
	}
	total, err := e.accounts.TotalBalance(ctx)
	if err != nil {
		e.fail(err)
		return
	}
	today, err := e.ledger.TodaySales(ctx)
	if err != nil {
		e.fail(err)
		return
	}

	sales := 0
	if today != nil {
		sales = today.Sales
	}
	e.ui.ShowTable([]string{
		"Metric | Value",
		"===",
		fmt.Sprintf("Accounts | %d", count),
		fmt.Sprintf("Total balance | %d", total),
		fmt.Sprintf("Sales today | %d", sales),
	})
}

func (e *Engine) showTopSpenders(ctx context.Context, args []string) {
	hours := parseArg(args, 0)

	spenders, err := e.ledger.TopSpenders(ctx, hours)
	if err != nil {
		e.fail(err)
		return
	}
	if len(spenders) == 0 {
		e.ui.Display("No purchases yet.")
		return
	}

	rows := []string{"RFID | Spent", "==="}
	for _, sp := range spenders {
		rows = append(rows, fmt.Sprintf("%s | %d", sp.Rfid, sp.Spent))
	}
	e.ui.ShowTable(rows)
}

func (e *Engine) showTopDays(ctx context.Context, args []string) {
	limit := parseArg(args, defaultTopDaysLimit)

	days, err := e.ledger.TopDays(ctx)
	if err != nil {
		e.fail(err)
		return
	}
	if len(days) == 0 {
		e.ui.Display("No sales yet.")
		return
	}
	if len(days) > limit {
		days = days[:limit]
	}

	today, err := e.ledger.TodaySales(ctx)
	if err != nil {
		e.fail(err)
		return
	}

	rows := []string{"Rank | Day | Sales", "==="}
	for _, day := range days {
		rows = append(rows, fmt.Sprintf("%d | %s | %d", day.Rank, day.Date, day.Sales))
	}
	if today != nil {
		rows = append(rows, "---", fmt.Sprintf("| Today | %d", today.Sales))
	}
	e.ui.ShowTable(rows)
}

func (e *Engine) showTotalSpent(ctx context.Context) {
	if e.session == nil {
		e.ui.Error("Scan a card first.")
		return
	}

	spent, err := e.ledger.TotalSpent(ctx, e.session.ID)
	if err != nil {
		e.fail(err)
		return
	}
	e.ui.Display(fmt.Sprintf("RFID '%s' has spent %d in total.", e.session.Rfid, spent))
}

func (e *Engine) updateRfid(ctx context.Context) {
	if e.session == nil {
		e.ui.Error("Scan a card first.")
		return
	}

	token, err := e.ui.TakeInput("Scan the new card:")
	if err != nil {
		return
	}
	if !accountservice.IsRfid(token) {
		e.ui.Error("Not valid input.")
		return
	}

	if err := e.accounts.Rebind(ctx, e.session.ID, token); err != nil {
		if errors.Is(err, accountservice.ErrRfidTaken) {
			e.ui.Error("That card is already in use.")
			return
		}
		e.fail(err)
		return
	}
	e.session.Rfid = token
	e.ui.Display(fmt.Sprintf("RFID updated to '%s'.", token))
}

// merge folds another card into the scanned one. It only ever touches
// accounts that already exist and asks three times before doing anything.
func (e *Engine) merge(ctx context.Context) {
	if e.session == nil {
		e.ui.Error("Scan the card to keep first.")
		return
	}

	token, err := e.ui.TakeInput("Scan the card to merge into the active one:")
	if err != nil {
		return
	}
	if !accountservice.IsRfid(token) {
		e.ui.Error("Not valid input.")
		return
	}

	src, err := e.accounts.Lookup(ctx, token)
	if err != nil {
		e.fail(err)
		return
	}
	if src == nil {
		e.ui.Error("That card is not known here.")
		return
	}
	if src.ID == e.session.ID {
		e.ui.Error("Cannot merge a card with itself.")
		return
	}

	questions := []string{
		fmt.Sprintf("Merge '%s' into '%s'?", src.Rfid, e.session.Rfid),
		fmt.Sprintf("All history and balance of '%s' will move over. Continue?", src.Rfid),
		"Last chance. This cannot be undone. Really merge?",
	}
	for _, question := range questions {
		if !e.ui.Confirm(question) {
			e.ui.Display("Aborting..")
			return
		}
	}

	if err := e.ledger.Merge(ctx, e.session, src); err != nil {
		e.fail(err)
		return
	}
	e.ui.Display(fmt.Sprintf("Merged. New balance on '%s': %d", e.session.Rfid, e.session.Balance))
}

func (e *Engine) prune(ctx context.Context) {
	if e.session != nil {
		e.ui.Error("Close the open transaction first.")
		return
	}
	if !e.ui.Confirm("Remove all empty accounts unused for a year?") {
		e.ui.Display("Aborting..")
		return
	}

	affected, err := e.accounts.Prune(ctx)
	if err != nil {
		e.fail(err)
		return
	}
	e.ui.Display(fmt.Sprintf("Removed %d accounts.", affected))
}

func (e *Engine) showVersion(ctx context.Context) {
	v, err := e.versions.Get(ctx)
	if err != nil {
		e.fail(err)
		return
	}
	if v == nil {
		e.ui.Display("Version unknown.")
		return
	}
	e.ui.Display(fmt.Sprintf("Version %s, installed %s.", v.Version, v.ExecutedOn.Format("02-01-2006")))
}

// closeSession ends the open transaction, if any, and shows the given lines.
func (e *Engine) closeSession(lines ...string) {
	if e.session == nil {
		if len(lines) > 0 {
			e.ui.Display(lines...)
		}
		return
	}
	e.ui.EndTransaction(lines...)
	e.session = nil
}

// fail is the catch-all for persistence errors. The terminal drops back to
// idle so the operator starts from a clean state.
func (e *Engine) fail(err error) {
	zap.L().Error("operation failed", zap.Error(err))
	e.ui.Error("Something went wrong. The change was not saved.")
	e.closeSession()
}

func parseArg(args []string, fallback int) int {
	if len(args) == 0 {
		return fallback
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
