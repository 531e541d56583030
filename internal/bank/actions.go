package bank

import (
	"context"
	"errors"
	"strconv"

	"github.com/eaglebank/banking-console/internal/command"
	"github.com/eaglebank/banking-console/internal/cqrs"
)

const (
	msgWrongCredentials = "Wrong card number or PIN!"
	msgInvalidAmount    = "Amount must be a positive whole number!"
)

// ---------- anonymous actions ----------

type CreateAccount struct {
	bank Banker
	term Terminal
}

func (a *CreateAccount) ID() int       { return 1 }
func (a *CreateAccount) Label() string { return "Create an account" }

func (a *CreateAccount) Run(ctx context.Context, _ *Session) (Outcome, error) {
	card, err := a.bank.CreateCard(ctx, cqrs.CreateCardCommand{})
	if err != nil {
		return Continue, err
	}
	a.term.Println("Your card has been created")
	a.term.Println("Your card number:")
	a.term.Println(card.Number)
	a.term.Println("Your card PIN:")
	a.term.Println(card.PIN)
	return Continue, nil
}

type LogIntoAccount struct {
	bank Banker
	term Terminal
}

func (a *LogIntoAccount) ID() int       { return 2 }
func (a *LogIntoAccount) Label() string { return "Log into account" }

func (a *LogIntoAccount) Run(ctx context.Context, s *Session) (Outcome, error) {
	number, err := a.term.Prompt("Enter your card number:")
	if err != nil {
		return Continue, err
	}
	pin, err := a.term.Prompt("Enter your PIN:")
	if err != nil {
		return Continue, err
	}

	card, err := a.bank.Login(ctx, cqrs.LoginCommand{Number: number, PIN: pin})
	if errors.Is(err, command.ErrInvalidCredentials) {
		a.term.Println(msgWrongCredentials)
		return Continue, nil
	}
	if err != nil {
		return Continue, err
	}
	s.LogIn(card)
	a.term.Println("You have successfully logged in!")
	return Continue, nil
}

// Exit is offered in both menus and ends the control loop.
type Exit struct{}

func (Exit) ID() int       { return 0 }
func (Exit) Label() string { return "Exit" }

func (Exit) Run(context.Context, *Session) (Outcome, error) {
	return Stop, nil
}

// ---------- authenticated actions ----------

type Balance struct {
	term Terminal
}

func (a *Balance) ID() int       { return 1 }
func (a *Balance) Label() string { return "Balance" }

func (a *Balance) Run(_ context.Context, s *Session) (Outcome, error) {
	a.term.Printf("Balance: %d\n", s.Card().Balance)
	return Continue, nil
}

type AddIncome struct {
	bank Banker
	term Terminal
}

func (a *AddIncome) ID() int       { return 2 }
func (a *AddIncome) Label() string { return "Add income" }

func (a *AddIncome) Run(ctx context.Context, s *Session) (Outcome, error) {
	line, err := a.term.Prompt("Enter income:")
	if err != nil {
		return Continue, err
	}
	amount, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		a.term.Println(msgInvalidAmount)
		return Continue, nil
	}

	err = a.bank.AddIncome(ctx, cqrs.AddIncomeCommand{Card: s.Card(), Amount: amount})
	if errors.Is(err, command.ErrInvalidAmount) {
		a.term.Println(msgInvalidAmount)
		return Continue, nil
	}
	if err != nil {
		return Continue, err
	}
	a.term.Println("Income was added!")
	return Continue, nil
}

type DoTransfer struct {
	bank Banker
	term Terminal
}

func (a *DoTransfer) ID() int       { return 3 }
func (a *DoTransfer) Label() string { return "Do transfer" }

func (a *DoTransfer) Run(ctx context.Context, s *Session) (Outcome, error) {
	a.term.Println("Transfer")
	number, err := a.term.Prompt("Enter card number:")
	if err != nil {
		return Continue, err
	}

	from := s.Card()
	to, err := a.bank.ResolveTransferTarget(ctx, from, number)
	switch {
	case errors.Is(err, command.ErrInvalidCard):
		a.term.Println("Probably you made a mistake in the card number. Please try again!")
		return Continue, nil
	case errors.Is(err, command.ErrSameCard):
		a.term.Println("You can't transfer money to the same account!")
		return Continue, nil
	case errors.Is(err, command.ErrCardNotFound):
		a.term.Println("Such a card does not exist.")
		return Continue, nil
	case err != nil:
		return Continue, err
	}

	line, err := a.term.Prompt("Enter how much money you want to transfer:")
	if err != nil {
		return Continue, err
	}
	amount, err := strconv.ParseInt(line, 10, 64)
	if err != nil || amount <= 0 {
		a.term.Println(msgInvalidAmount)
		return Continue, nil
	}
	if amount > from.Balance {
		a.term.Println("Not enough money!")
		return Continue, nil
	}

	err = a.bank.Transfer(ctx, cqrs.TransferCommand{From: from, To: to, Amount: amount})
	switch {
	case errors.Is(err, command.ErrInsufficientFunds):
		a.term.Println("Not enough money!")
		return Continue, nil
	case errors.Is(err, command.ErrCardNotFound):
		a.term.Println("Such a card does not exist.")
		return Continue, nil
	case err != nil:
		return Continue, err
	}
	a.term.Println("Success!")
	return Continue, nil
}

type CloseAccount struct {
	bank Banker
	term Terminal
}

func (a *CloseAccount) ID() int       { return 4 }
func (a *CloseAccount) Label() string { return "Close account" }

func (a *CloseAccount) Run(ctx context.Context, s *Session) (Outcome, error) {
	// A card that has already disappeared is as closed as it gets.
	err := a.bank.CloseCard(ctx, cqrs.CloseCardCommand{Card: s.Card()})
	if err != nil && !errors.Is(err, command.ErrCardNotFound) {
		return Continue, err
	}
	s.LogOut()
	a.term.Println("The account has been closed!")
	return Continue, nil
}

type LogOut struct {
	term Terminal
}

func (a *LogOut) ID() int       { return 5 }
func (a *LogOut) Label() string { return "Log out" }

func (a *LogOut) Run(_ context.Context, s *Session) (Outcome, error) {
	s.LogOut()
	a.term.Println("You have successfully logged out!")
	return Continue, nil
}
