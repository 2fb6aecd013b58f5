package config

type Config struct {
	Display    DisplayConfig `mapstructure:"display"`
	Ledger     LedgerConfig  `mapstructure:"ledger"`
	ConfigPath string        `mapstructure:"-"`
}

type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	TimeFormat     string `mapstructure:"time_format"`
}

type LedgerConfig struct {
	// StrictAmounts makes the ledger reject zero and negative amounts
	// instead of accepting them like the classic passbook did.
	StrictAmounts bool `mapstructure:"strict_amounts"`
}

func NewDefault() *Config {
	return &Config{
		Display: DisplayConfig{
			CurrencySymbol: "$",
			TimeFormat:     "2006-01-02 15:04:05",
		},
		Ledger: LedgerConfig{StrictAmounts: false},
	}
}
