package cqrs

import "github.com/eaglebank/banking-console/internal/models"

type CreateCardCommand struct{}

type LoginCommand struct {
	Number string `validate:"len=16,number"`
	PIN    string `validate:"len=4,number"`
}

type AddIncomeCommand struct {
	Card   *models.Card `validate:"required"`
	Amount int64        `validate:"gt=0"`
}

// TransferCommand moves Amount from the session card to To.
type TransferCommand struct {
	From   *models.Card `validate:"required"`
	To     *models.Card `validate:"required"`
	Amount int64        `validate:"gt=0"`
}

type CloseCardCommand struct {
	Card *models.Card `validate:"required"`
}
