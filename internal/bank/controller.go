package bank

import (
	"context"
	"errors"
	"io"
	"strconv"

	"go.uber.org/zap"
)

const msgUnexpected = "Something went wrong, please try again."

// Controller owns the session and runs the menu loop. Which actions are on
// offer depends only on whether a card is logged in.
type Controller struct {
	session       *Session
	anonymous     []Action
	authenticated []Action
	term          Terminal
	log           *zap.Logger
}

func NewController(bank Banker, term Terminal, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		session: &Session{},
		anonymous: []Action{
			&CreateAccount{bank: bank, term: term},
			&LogIntoAccount{bank: bank, term: term},
			Exit{},
		},
		authenticated: []Action{
			&Balance{term: term},
			&AddIncome{bank: bank, term: term},
			&DoTransfer{bank: bank, term: term},
			&CloseAccount{bank: bank, term: term},
			&LogOut{term: term},
			Exit{},
		},
		term: term,
		log:  log,
	}
}

func (c *Controller) Session() *Session { return c.session }

// Actions returns the action set for the current session state.
func (c *Controller) Actions() []Action {
	if c.session.Authenticated() {
		return c.authenticated
	}
	return c.anonymous
}

// Menu prints the current action set.
func (c *Controller) Menu() {
	for _, a := range c.Actions() {
		c.term.Println(MenuLine(a))
	}
}

// Dispatch runs the action whose ID equals option. An unknown option runs
// nothing and yields Continue.
func (c *Controller) Dispatch(ctx context.Context, option int) (Outcome, error) {
	for _, a := range c.Actions() {
		if a.ID() == option {
			return a.Run(ctx, c.session)
		}
	}
	return Continue, nil
}

// Run shows the menu and dispatches one option at a time until Exit is
// chosen, input ends or ctx is cancelled. Cancellation interrupts a pending
// read and Run returns ctx.Err() without dispatching further input.
func (c *Controller) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, c.term.Interrupt)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Menu()
		line, err := c.term.ReadLine()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		option, err := strconv.Atoi(line)
		if err != nil {
			c.term.Println()
			continue
		}

		c.term.Println()
		outcome, err := c.Dispatch(ctx, option)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.log.Error("action failed", zap.Int("option", option), zap.Error(err))
			c.term.Println(msgUnexpected)
		}
		c.term.Println()
		if outcome == Stop {
			break
		}
	}
	c.term.Println("Bye!")
	return nil
}
