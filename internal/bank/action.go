package bank

import (
	"context"
	"fmt"

	"github.com/eaglebank/banking-console/internal/cqrs"
	"github.com/eaglebank/banking-console/internal/models"
)

// Outcome tells the control loop whether to keep going.
type Outcome int

const (
	Continue Outcome = iota
	Stop
)

// Action is a numbered menu entry.
type Action interface {
	ID() int
	Label() string
	// Run performs the action. Expected failures are reported to the operator
	// and return a nil error; a non-nil error means the store misbehaved.
	Run(ctx context.Context, s *Session) (Outcome, error)
}

// Banker is the card service the actions drive.
type Banker interface {
	CreateCard(ctx context.Context, cmd cqrs.CreateCardCommand) (*models.Card, error)
	Login(ctx context.Context, cmd cqrs.LoginCommand) (*models.Card, error)
	AddIncome(ctx context.Context, cmd cqrs.AddIncomeCommand) error
	ResolveTransferTarget(ctx context.Context, from *models.Card, number string) (*models.Card, error)
	Transfer(ctx context.Context, cmd cqrs.TransferCommand) error
	CloseCard(ctx context.Context, cmd cqrs.CloseCardCommand) error
}

// Terminal is the operator's line-oriented console. Interrupt makes any
// blocked read return an error.
type Terminal interface {
	ReadLine() (string, error)
	Interrupt()
	Prompt(msg string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
}

// MenuLine renders an action the way the menu lists it.
func MenuLine(a Action) string {
	return fmt.Sprintf("%d. %s", a.ID(), a.Label())
}
