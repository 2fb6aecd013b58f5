package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/rowanlk/passbook/internal/model"
	"github.com/rowanlk/passbook/internal/money"
)

type HistoryView struct {
	currencySymbol string
	timeFormat     string
}

func NewHistoryView(currencySymbol, timeFormat string) *HistoryView {
	return &HistoryView{
		currencySymbol: currencySymbol,
		timeFormat:     timeFormat,
	}
}

// Render prints the transaction log oldest-first. Withdrawals show in
// red, everything that credits the account in green.
func (v *HistoryView) Render(records []model.TransactionRecord) error {
	if len(records) == 0 {
		pterm.Info.Println("No transaction history available.")
		return nil
	}

	headers := []string{"Time", "Type", "Amount"}
	tableData := pterm.TableData{headers}

	for _, rec := range records {
		amount := fmt.Sprintf("%s%s", v.currencySymbol, money.FormatFromCents(rec.Amount))

		var coloredKind, coloredAmount string
		switch rec.Kind {
		case model.KindWithdrawal:
			coloredKind = pterm.Red(rec.Kind.String())
			coloredAmount = pterm.Red(amount)
		default:
			coloredKind = pterm.Green(rec.Kind.String())
			coloredAmount = pterm.Green(amount)
		}

		tableData = append(tableData, []string{
			rec.Timestamp.Format(v.timeFormat),
			coloredKind,
			coloredAmount,
		})
	}

	pterm.DefaultSection.Printf("Transaction History")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(records))

	return nil
}
