package app

import (
	"github.com/rowanlk/passbook/internal/config"
	"github.com/rowanlk/passbook/internal/ledger"
)

type App struct {
	Ledger *ledger.Ledger
	Config *config.Config
}

// NewApp wires the configuration into a fresh ledger. All ledger state
// is in-memory and lives exactly as long as the process.
func NewApp(cfg *config.Config) *App {
	led := ledger.New(ledger.Config{
		StrictAmounts: cfg.Ledger.StrictAmounts,
	})

	return &App{
		Ledger: led,
		Config: cfg,
	}
}
