package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/core/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/pkg/config"
	"github.com/ledgerline/booksclient/pkg/localstore"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := localstore.Open(cfg.StateFile)
	if err != nil {
		logger.Error("Failed to open state file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	api := rest.New(rest.Options{
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.HTTPTimeout,
		RequestsPerSec: cfg.RequestsPerSec,
		Token:          func() string { return store.Get(localstore.KeyAccessToken) },
		Logger:         logger,
	})

	track := utils.NewTrack(cfg.PosthogAPIKey, logger)
	defer track.Close()

	svcs := services.NewServiceContainer(api, store, track, cfg.APIBaseURL, cfg.OAuthClientID)

	ctx := rest.WithLogger(context.Background(), logger)
	if err := run(ctx, svcs, os.Args[1:]); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, svcs *ports.ServiceContainer, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: books login <email> <password>")
		}
		result, err := svcs.Auth.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as user %d\n", result.UserID)
		return pickFirstAccount(ctx, svcs)

	case "logout":
		return svcs.Auth.Logout(ctx)

	case "me":
		user, err := svcs.User.GetMe(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
		for _, acct := range user.Accounts {
			marker := " "
			if acct.ID == svcs.Account.ActiveAccountID() {
				marker = "*"
			}
			fmt.Printf("%s %d\t%s\n", marker, acct.ID, acct.Name)
		}
		return nil

	case "switch":
		if len(args) != 2 {
			return fmt.Errorf("usage: books switch <account-id>")
		}
		id, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("bad account id %q", args[1])
		}
		return svcs.Account.SwitchAccount(ctx, uint(id))

	case "ledger":
		return listLedger(ctx, svcs, args[1:])

	case "contacts":
		contacts, _, err := svcs.Contact.ListContacts(ctx, dto.ContactListOptions{})
		if err != nil {
			return err
		}
		for _, c := range contacts {
			fmt.Printf("%d\t%s\n", c.ID, c.DisplayName())
		}
		return nil

	case "categories":
		cats, _, err := svcs.Category.ListCategories(ctx, dto.CategoryListOptions{})
		if err != nil {
			return err
		}
		for _, c := range cats {
			fmt.Printf("%d\t%s\t%s\n", c.ID, c.Type, c.Name)
		}
		return nil

	case "pnl":
		pnl, err := svcs.Ledger.PnlSummary(ctx, "", "")
		if err != nil {
			return err
		}
		fmt.Printf("income %s  expense %s  profit %s\n", pnl.Income, pnl.Expense, pnl.Profit)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// pickFirstAccount makes the first membership active when no account is
// selected yet, so scoped commands work right after login.
func pickFirstAccount(ctx context.Context, svcs *ports.ServiceContainer) error {
	if svcs.Account.ActiveAccountID() != 0 {
		return nil
	}
	user, err := svcs.User.GetMe(ctx)
	if err != nil {
		return err
	}
	if len(user.Accounts) == 0 {
		return fmt.Errorf("login has no accounts")
	}
	return svcs.Account.SwitchAccount(ctx, user.Accounts[0].ID)
}

func listLedger(ctx context.Context, svcs *ports.ServiceContainer, args []string) error {
	opts := dto.LedgerListOptions{Page: 1}
	if len(args) > 0 {
		opts.Search = args[0]
	}

	entries, meta, err := svcs.Ledger.ListLedgers(ctx, opts)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n",
			e.ID, e.Date.Format("2006-01-02"), e.Amount, e.Contact.DisplayName(), e.Note)
	}
	if !meta.LastPage {
		fmt.Printf("(%d total entries)\n", meta.NoLimitCount)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: books <command>

  login <email> <password>   log in and pick an account
  logout                     drop local auth state
  me                         show the logged-in user and accounts
  switch <account-id>        change the active account
  ledger [search]            list ledger entries
  contacts                   list contacts
  categories                 list categories
  pnl                        income/expense/profit for the account`)
}
