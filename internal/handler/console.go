// Package handler implements the operator console: a synchronous menu loop
// where every operation runs to completion before the next input is read.
package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	ulog "github.com/LerianStudio/lib-uncommons/v2/uncommons/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/caixadev/teller/internal/model"
	"github.com/caixadev/teller/internal/registry"
)

const menu = `
================ MENU ================
[1] Deposit
[2] Withdraw
[3] Statement
[4] New client
[5] New account
[6] List accounts
[0] Quit
=> `

// Console handles operator requests read from a line-oriented input
type Console struct {
	registry *registry.Registry
	in       *bufio.Scanner
	out      io.Writer
	logger   ulog.Logger
	title    cases.Caser
}

// NewConsole creates a console bound to the given input and output streams
func NewConsole(reg *registry.Registry, in io.Reader, out io.Writer, logger ulog.Logger) *Console {
	return &Console{
		registry: reg,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
		title:    cases.Title(language.English),
	}
}

// Run drives the menu loop until the operator quits, input is exhausted, or
// ctx is cancelled. Operation failures are reported to the operator and the
// loop re-prompts; nothing is fatal.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := c.prompt(menu)
		if err != nil {
			return nil // input exhausted
		}

		var opErr error
		switch strings.TrimSpace(choice) {
		case "1":
			opErr = c.logged(ctx, "deposit", c.deposit)
		case "2":
			opErr = c.logged(ctx, "withdraw", c.withdraw)
		case "3":
			opErr = c.logged(ctx, "statement", c.statement)
		case "4":
			opErr = c.logged(ctx, "create_client", c.createClient)
		case "5":
			opErr = c.logged(ctx, "open_account", c.openAccount)
		case "6":
			opErr = c.logged(ctx, "list_accounts", c.listAccounts)
		case "0":
			fmt.Fprintln(c.out, "Thank you for using our teller!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option, please choose again.")
		}

		if errors.Is(opErr, io.EOF) {
			return nil
		}
	}
}

// deposit applies a deposit to the client's first account
func (c *Console) deposit() error {
	client, err := c.promptClient()
	if err != nil {
		return err
	}

	amount, err := c.promptAmount("Deposit amount: ")
	if err != nil {
		return err
	}

	account, err := c.registry.FirstAccountOf(client)
	if err != nil {
		fmt.Fprintln(c.out, "Client has no account!")
		return err
	}

	if err := client.Execute(account, model.NewDeposit(amount)); err != nil {
		fmt.Fprintln(c.out, failureMessage(err))
		return err
	}

	fmt.Fprintln(c.out, "=== Deposit completed successfully! ===")
	return nil
}

// withdraw applies a withdrawal to the client's first account
func (c *Console) withdraw() error {
	client, err := c.promptClient()
	if err != nil {
		return err
	}

	amount, err := c.promptAmount("Withdrawal amount: ")
	if err != nil {
		return err
	}

	account, err := c.registry.FirstAccountOf(client)
	if err != nil {
		fmt.Fprintln(c.out, "Client has no account!")
		return err
	}

	if err := client.Execute(account, model.NewWithdrawal(amount)); err != nil {
		fmt.Fprintln(c.out, failureMessage(err))
		return err
	}

	fmt.Fprintln(c.out, "=== Withdrawal completed successfully! ===")
	return nil
}

// statement prints the ledger entries of the client's first account,
// optionally filtered by kind, followed by the current balance
func (c *Console) statement() error {
	client, err := c.promptClient()
	if err != nil {
		return err
	}

	account, err := c.registry.FirstAccountOf(client)
	if err != nil {
		fmt.Fprintln(c.out, "Client has no account!")
		return err
	}

	filter, err := c.prompt("Filter by kind (deposit/withdrawal, empty for all): ")
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\n========== STATEMENT ==========")
	empty := true
	for entry := range account.Ledger().Report(strings.TrimSpace(filter)) {
		empty = false
		fmt.Fprintf(c.out, "%s:\tR$ %s\t%s\n", c.title.String(string(entry.Kind)), entry.Amount.StringFixed(2), entry.Timestamp())
	}
	if empty {
		fmt.Fprintln(c.out, "No movements recorded")
	}
	fmt.Fprintf(c.out, "\nBalance:\tR$ %s\n", account.Balance().StringFixed(2))
	fmt.Fprintln(c.out, "===============================")
	return nil
}

// createClient registers a new client after checking tax id uniqueness
func (c *Console) createClient() error {
	taxID, err := c.prompt("Client tax id: ")
	if err != nil {
		return err
	}
	taxID = strings.TrimSpace(taxID)

	if _, err := c.registry.FindClientByTaxID(taxID); err == nil {
		fmt.Fprintln(c.out, "A client with this tax id already exists, try again.")
		return model.ErrDuplicateClient
	}

	name, err := c.prompt("Full name: ")
	if err != nil {
		return err
	}
	birthDate, err := c.prompt("Birth date (dd-mm-yyyy): ")
	if err != nil {
		return err
	}
	address, err := c.prompt("Address (street, number - district - city/state): ")
	if err != nil {
		return err
	}

	if _, err := c.registry.CreateClient(strings.TrimSpace(name), taxID, strings.TrimSpace(birthDate), strings.TrimSpace(address)); err != nil {
		fmt.Fprintln(c.out, failureMessage(err))
		return err
	}

	fmt.Fprintln(c.out, "=== Client created successfully! ===")
	return nil
}

// openAccount opens a checking account for an existing client
func (c *Console) openAccount() error {
	taxID, err := c.prompt("Client tax id: ")
	if err != nil {
		return err
	}

	account, err := c.registry.OpenAccount(strings.TrimSpace(taxID))
	if err != nil {
		fmt.Fprintln(c.out, "Client not found, try again.")
		return err
	}

	fmt.Fprintf(c.out, "=== Account %d created successfully! ===\n", account.Number())
	return nil
}

// listAccounts prints one summary per account in opening order
func (c *Console) listAccounts() error {
	it := c.registry.NewAccountIterator()
	for {
		summary, ok := it.Next()
		if !ok {
			return nil
		}
		fmt.Fprintln(c.out, strings.Repeat("=", 25))
		fmt.Fprintln(c.out, summary)
	}
}

// promptClient asks for a tax id and resolves the client
func (c *Console) promptClient() (*model.Client, error) {
	taxID, err := c.prompt("Client tax id: ")
	if err != nil {
		return nil, err
	}

	client, err := c.registry.FindClientByTaxID(strings.TrimSpace(taxID))
	if err != nil {
		fmt.Fprintln(c.out, "Client not found!")
		return nil, err
	}
	return client, nil
}

// promptAmount asks for a decimal amount. Non-numeric input fails before any
// transaction is constructed, so no spurious ledger activity can occur.
func (c *Console) promptAmount(label string) (decimal.Decimal, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return decimal.Decimal{}, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(c.out, "The amount entered is invalid, try again.")
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", strings.TrimSpace(raw), model.ErrInvalidAmount)
	}
	return amount, nil
}

// prompt writes label and reads one line. Returns io.EOF when input is exhausted.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

// failureMessage maps domain errors to operator-facing diagnostics
func failureMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		return "The amount entered is invalid, try again."
	case errors.Is(err, model.ErrInsufficientFunds):
		return "You do not have sufficient funds."
	case errors.Is(err, model.ErrWithdrawalCeilingExceeded):
		return "Operation rejected. The amount exceeds the withdrawal ceiling!"
	case errors.Is(err, model.ErrWithdrawalCountExceeded):
		return "Operation rejected. Maximum number of withdrawals exceeded!"
	case errors.Is(err, model.ErrDuplicateClient):
		return "A client with this tax id already exists, try again."
	case errors.Is(err, model.ErrClientNotFound):
		return "Client not found!"
	case errors.Is(err, model.ErrAccountNotFound):
		return "Client has no account!"
	default:
		return err.Error()
	}
}
