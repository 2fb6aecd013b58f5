package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/rowanlk/passbook/internal/model"
	"github.com/rowanlk/passbook/internal/money"
)

type AccountView struct {
	currencySymbol string
}

func NewAccountView(currencySymbol string) *AccountView {
	return &AccountView{currencySymbol: currencySymbol}
}

// RenderOpened shows the summary table after an account is opened.
func (v *AccountView) RenderOpened(acc *model.Account) {
	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), fmt.Sprintf("%d", acc.Number)},
		{pterm.Blue("Holder Name"), acc.HolderName},
		{pterm.Blue("Balance"), v.amount(acc.Balance)},
	}

	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Printf("Account created successfully! Your account number is: %d\n", acc.Number)
}

// RenderAccessed shows the summary table after a successful login.
func (v *AccountView) RenderAccessed(acc *model.Account) {
	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), fmt.Sprintf("%d", acc.Number)},
		{pterm.Blue("Holder Name"), acc.HolderName},
	}

	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account accessed successfully!")
}

func (v *AccountView) RenderBalance(balance int64) {
	pterm.Info.Printf("Account Balance: %s\n", v.amount(balance))
}

func (v *AccountView) amount(cents int64) string {
	return fmt.Sprintf("%s%s", v.currencySymbol, money.FormatFromCents(cents))
}
