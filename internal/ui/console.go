package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"rfidpos/internal/domain"
	"rfidpos/pkg/layout"
)

// Input shortcuts for tokens that are awkward to produce with a numpad and a
// card reader alone.
var shortcuts = map[string]string{
	"***": "exit",
	"/*-": "/help",
	"///": "/users",
}

// The numpad plus key doubles as the affirmative answer.
const confirmToken = "+"

// Console renders the operator terminal. While a transaction is open all
// output is enclosed in a double-ruled frame, outside of one it prints plain
// lines.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	width   int
	active  bool
	notices chan string

	errColor    *color.Color
	noticeColor *color.Color
}

func NewConsole(in io.Reader, out io.Writer, width int) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		width:       width,
		notices:     make(chan string, 8),
		errColor:    color.New(color.FgRed, color.Bold),
		noticeColor: color.New(color.FgYellow),
	}
}

// contentWidth is the room left for text once the frame rules and gutters on
// both sides are accounted for.
func (c *Console) contentWidth() int {
	return c.width - 4
}

// TakeInput prints the prompt and blocks for one line of input. The returned
// token is trimmed and has shortcuts expanded.
func (c *Console) TakeInput(prompt string) (string, error) {
	c.drainNotices()
	if prompt != "" {
		c.Display(prompt)
	}
	fmt.Fprint(c.out, "> ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	token := strings.TrimSpace(line)
	if expanded, ok := shortcuts[token]; ok {
		token = expanded
	}
	return token, nil
}

// Confirm asks a question and reports whether the operator answered with the
// confirmation key. Any other answer, and end of input, count as a decline.
func (c *Console) Confirm(question string) bool {
	answer, err := c.TakeInput(question)
	if err != nil {
		return false
	}
	return answer == confirmToken
}

func (c *Console) Display(lines ...string) {
	if !c.active {
		for _, line := range layout.Wrap(lines, c.width) {
			fmt.Fprintln(c.out, line)
		}
		return
	}
	for _, line := range layout.Wrap(lines, c.contentWidth()) {
		fmt.Fprintln(c.out, layout.Align(line, c.contentWidth(), layout.AlignLeft))
	}
}

// Error interrupts whatever is on screen with a red exclamation banner.
func (c *Console) Error(msg string) {
	for _, line := range layout.Banner(msg, c.width) {
		c.errColor.Fprintln(c.out, line)
	}
}

// StartTransaction opens the frame and shows the card header.
func (c *Console) StartTransaction(account *domain.Account) {
	c.active = true
	fmt.Fprintln(c.out, layout.FrameTop(c.width))
	fmt.Fprintln(c.out, layout.Align(account.Rfid, c.contentWidth(), layout.AlignCenter))
	fmt.Fprintln(c.out, layout.FrameMiddle(c.width))
	c.Display(
		fmt.Sprintf("Last used: %s", account.LastUsedAt.Format("02-01-2006 15:04")),
		fmt.Sprintf("Balance: %d", account.Balance),
	)
}

// EndTransaction shows the closing lines and seals the frame.
func (c *Console) EndTransaction(lines ...string) {
	c.Display(lines...)
	fmt.Fprintln(c.out, layout.FrameBottom(c.width))
	c.active = false
}

func (c *Console) ShowTable(rows []string) {
	for _, line := range layout.Table(rows, "|") {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) ShowWelcome(version string) {
	fmt.Fprintln(c.out, layout.FrameTop(c.width))
	fmt.Fprintln(c.out, layout.Align("RFID POS terminal", c.contentWidth(), layout.AlignCenter))
	fmt.Fprintln(c.out, layout.Align("version "+version, c.contentWidth(), layout.AlignCenter))
	fmt.Fprintln(c.out, layout.FrameBottom(c.width))
}

func (c *Console) ShowHelp() {
	c.ShowTable([]string{
		"Command | Description",
		"===",
		"/help | Show this overview",
		"/checksum | Show the checksum of the active card",
		"/transactions [n] | Show the most recent transactions",
		"/users | List all accounts",
		"/stats | Show account, balance and sales totals",
		"/topTen [hours] | Rank the biggest spenders",
		"/topDays [n] | Rank the best sales days",
		"/totalSpent | Show lifetime spending for the active card",
		"/updateRfid | Move the active account onto a new card",
		"/merge | Fold another account into the active one",
		"/prune | Remove long inactive empty accounts",
		"/version | Show the running version",
		"exit | Quit the terminal",
	})
}

// Notify queues a line to show before the next prompt. Safe to call from
// other goroutines; when the queue is full the notice is dropped.
func (c *Console) Notify(msg string) {
	select {
	case c.notices <- msg:
	default:
	}
}

func (c *Console) drainNotices() {
	for {
		select {
		case msg := <-c.notices:
			c.noticeColor.Fprintln(c.out, "* "+msg)
		default:
			return
		}
	}
}
