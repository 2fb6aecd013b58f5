package prompts

// Menu choices for the top-level loop.
const (
	MenuOpenAccount   = "Open a new account"
	MenuAccessAccount = "Access an existing account"
	MenuQuit          = "Quit"
)

// Menu choices for the logged-in loop.
const (
	SessionDeposit  = "Make a deposit"
	SessionWithdraw = "Make a withdrawal"
	SessionBalance  = "View account balance"
	SessionHistory  = "View transaction history"
	SessionLogout   = "Log out"
	SessionQuit     = "Quit"
)

func PromptMainMenu() (string, error) {
	return PromptSelect("Main Menu:", []string{
		MenuOpenAccount,
		MenuAccessAccount,
		MenuQuit,
	}, MenuOpenAccount)
}

func PromptSessionMenu() (string, error) {
	return PromptSelect("Logged-in Menu:", []string{
		SessionDeposit,
		SessionWithdraw,
		SessionBalance,
		SessionHistory,
		SessionLogout,
		SessionQuit,
	}, SessionDeposit)
}
