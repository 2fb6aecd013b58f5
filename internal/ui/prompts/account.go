package prompts

import (
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"

	"github.com/rowanlk/passbook/internal/ui"
	"github.com/rowanlk/passbook/internal/validation"
)

// PromptHolderName prompts for the account holder's name.
func PromptHolderName() (string, error) {
	var name string

	prompt := &survey.Input{
		Message: "Holder name:",
	}

	err := survey.AskOne(prompt, &name,
		ui.IconOption(),
		survey.WithValidator(validation.ValidateHolderName),
	)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// PromptInitialDeposit prompts for the opening deposit and returns the
// raw input string (cents conversion happens at the caller).
func PromptInitialDeposit() (string, error) {
	return PromptAmount(
		"Initial deposit:",
		"Amount credited by the opening record, e.g. 100.00",
		validation.ValidateNonNegativeAmount,
	)
}

// PromptAccountNumber prompts for a ten-digit account number.
func PromptAccountNumber() (int64, error) {
	var input string

	err := huh.NewInput().
		Title("Account number:").
		Description("The ten-digit number issued when the account was opened").
		Value(&input).
		Validate(validation.ValidateAccountNumber).
		Run()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(strings.TrimSpace(input), 10, 64)
}
