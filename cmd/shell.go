package cmd

import (
	"errors"

	"github.com/pterm/pterm"

	"github.com/rowanlk/passbook/internal/app"
	"github.com/rowanlk/passbook/internal/errhandler"
	"github.com/rowanlk/passbook/internal/ledger"
	"github.com/rowanlk/passbook/internal/money"
	"github.com/rowanlk/passbook/internal/ui"
	"github.com/rowanlk/passbook/internal/ui/prompts"
	"github.com/rowanlk/passbook/internal/ui/views"
	"github.com/rowanlk/passbook/internal/validation"
)

// runShell drives the two-level menu loop. All ledger rules live in
// internal/ledger; this loop only collects input and renders results.
func runShell(application *app.App) error {
	ui.PrintL1Title("passbook")

	accountView := views.NewAccountView(cfg.Display.CurrencySymbol)
	historyView := views.NewHistoryView(cfg.Display.CurrencySymbol, cfg.Display.TimeFormat)

	for {
		ui.Separator()

		choice, err := prompts.PromptMainMenu()
		if err != nil {
			if errhandler.IsCancel(err) {
				return nil
			}
			return err
		}

		switch choice {
		case prompts.MenuOpenAccount:
			if err := runOpenAccount(application, accountView); err != nil {
				if errhandler.IsCancel(err) {
					continue
				}
				return err
			}

		case prompts.MenuAccessAccount:
			quit, err := runAccessAccount(application, accountView, historyView)
			if err != nil {
				if errhandler.IsCancel(err) {
					continue
				}
				return err
			}
			if quit {
				return nil
			}

		case prompts.MenuQuit:
			pterm.Info.Println("Quitting the program.")
			return nil
		}
	}
}

func runOpenAccount(application *app.App, accountView *views.AccountView) error {
	name, err := prompts.PromptHolderName()
	if err != nil {
		return err
	}

	depositStr, err := prompts.PromptInitialDeposit()
	if err != nil {
		return err
	}

	deposit, err := money.ParseToCents(depositStr)
	if err != nil {
		return err
	}

	number, err := application.Ledger.OpenAccount(name, deposit)
	if err != nil {
		return err
	}

	acc, err := application.Ledger.RetrieveAccount(number)
	if err != nil {
		return err
	}

	ui.Separator()
	accountView.RenderOpened(acc)
	return nil
}

func runAccessAccount(application *app.App, accountView *views.AccountView, historyView *views.HistoryView) (bool, error) {
	if active, ok := application.Ledger.ActiveAccount(); ok {
		pterm.Warning.Printf("You are already logged in with account number %d\n", active)
		return false, nil
	}

	number, err := prompts.PromptAccountNumber()
	if err != nil {
		return false, err
	}

	if err := application.Ledger.Login(number); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			pterm.Warning.Println("Account not found. Please check your account number.")
			return false, nil
		}
		return false, err
	}

	acc, err := application.Ledger.RetrieveAccount(number)
	if err != nil {
		return false, err
	}

	ui.Separator()
	accountView.RenderAccessed(acc)

	return runSession(application, accountView, historyView)
}

// runSession loops the logged-in menu until logout or quit. The quit
// return asks the caller to exit the whole shell.
func runSession(application *app.App, accountView *views.AccountView, historyView *views.HistoryView) (bool, error) {
	for {
		if _, ok := application.Ledger.ActiveAccount(); !ok {
			return false, nil
		}

		ui.Separator()

		choice, err := prompts.PromptSessionMenu()
		if err != nil {
			return false, err
		}

		switch choice {
		case prompts.SessionDeposit:
			if err := runDeposit(application); err != nil {
				if errhandler.IsCancel(err) {
					continue
				}
				return false, err
			}

		case prompts.SessionWithdraw:
			if err := runWithdraw(application); err != nil {
				if errhandler.IsCancel(err) {
					continue
				}
				return false, err
			}

		case prompts.SessionBalance:
			balance, err := application.Ledger.Balance()
			if err != nil {
				pterm.Warning.Println("Error fetching account balance. Please try again.")
				continue
			}
			accountView.RenderBalance(balance)

		case prompts.SessionHistory:
			if err := historyView.Render(application.Ledger.History()); err != nil {
				return false, err
			}

		case prompts.SessionLogout:
			application.Ledger.Logout()
			pterm.Success.Println("Logged out successfully!")
			return false, nil

		case prompts.SessionQuit:
			pterm.Info.Println("Quitting the program.")
			return true, nil
		}
	}
}

func runDeposit(application *app.App) error {
	amountStr, err := prompts.PromptAmount("Deposit amount:", "", validation.ValidateAmount)
	if err != nil {
		return err
	}

	amount, err := money.ParseToCents(amountStr)
	if err != nil {
		return err
	}

	if err := application.Ledger.Deposit(amount); err != nil {
		switch {
		case errors.Is(err, ledger.ErrNoActiveSession):
			pterm.Warning.Println("Error making deposit. Please try again.")
		case errors.Is(err, ledger.ErrInvalidAmount):
			pterm.Warning.Println(capitalize(err.Error()))
		default:
			return err
		}
		return nil
	}

	pterm.Success.Println("Deposit successful!")
	return nil
}

func runWithdraw(application *app.App) error {
	amountStr, err := prompts.PromptAmount("Withdrawal amount:", "", validation.ValidateAmount)
	if err != nil {
		return err
	}

	amount, err := money.ParseToCents(amountStr)
	if err != nil {
		return err
	}

	if err := application.Ledger.Withdraw(amount); err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientFunds), errors.Is(err, ledger.ErrNoActiveSession):
			pterm.Warning.Println("Insufficient funds or error making withdrawal. Please try again.")
		case errors.Is(err, ledger.ErrInvalidAmount):
			pterm.Warning.Println(capitalize(err.Error()))
		default:
			return err
		}
		return nil
	}

	pterm.Success.Println("Withdrawal successful!")
	return nil
}
