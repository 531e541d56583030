package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/eaglebank/banking-console/internal/cqrs"
	"github.com/eaglebank/banking-console/internal/events"
	"github.com/eaglebank/banking-console/internal/luhn"
	"github.com/eaglebank/banking-console/internal/models"
	"github.com/eaglebank/banking-console/internal/repository"
	"github.com/eaglebank/banking-console/internal/utils"
	"github.com/eaglebank/banking-console/internal/validation"
	"go.uber.org/zap"
)

const maxIssueAttempts = 5

// CardWriter is the write side of the card store.
type CardWriter interface {
	Create(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id int64) error
	IncrementBalance(ctx context.Context, id, delta int64) (int64, error)
	Transfer(ctx context.Context, fromID, toID, amount int64) (int64, int64, error)
}

// CardReader is the read side of the card store.
type CardReader interface {
	FindByNumber(ctx context.Context, number string) (*models.Card, error)
	CacheCardView(ctx context.Context, view *models.CardView)
	InvalidateCardView(ctx context.Context, number string)
}

// CardCommandService issues cards, authenticates them and applies balance
// mutations, keeping the in-memory card in step with the store.
type CardCommandService struct {
	writeRepo CardWriter
	readRepo  CardReader
	publisher events.Emitter
	pins      utils.PINHasher
	log       *zap.Logger

	newNumber func() string
	newPIN    func() string
}

func NewCardCommandService(
	writeRepo CardWriter,
	readRepo CardReader,
	publisher events.Emitter,
	pins utils.PINHasher,
	log *zap.Logger,
) *CardCommandService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CardCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		publisher: publisher,
		pins:      pins,
		log:       log,
		newNumber: utils.GenerateCardNumber,
		newPIN:    utils.GeneratePIN,
	}
}

// CreateCard issues and persists a new card with a zero balance. The
// returned card carries the clear PIN so it can be shown to the operator.
func (s *CardCommandService) CreateCard(ctx context.Context, _ cqrs.CreateCardCommand) (*models.Card, error) {
	pin := s.newPIN()
	sealed, err := s.pins.Seal(pin)
	if err != nil {
		return nil, fmt.Errorf("failed to seal PIN: %w", err)
	}

	for attempt := 1; attempt <= maxIssueAttempts; attempt++ {
		card := &models.Card{Number: s.newNumber(), PIN: sealed}
		err := s.writeRepo.Create(ctx, card)
		if errors.Is(err, repository.ErrDuplicateNumber) {
			s.log.Warn("card number collision, regenerating", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}

		s.readRepo.CacheCardView(ctx, models.ToView(card))
		s.publish(ctx, events.CardCreated, events.CardCreatedEvent{Number: card.Number})
		s.log.Info("card issued", zap.Int64("id", card.ID))

		card.PIN = pin
		return card, nil
	}
	return nil, fmt.Errorf("failed to issue a unique card number after %d attempts", maxIssueAttempts)
}

// Login checks length, check digit, existence and PIN in that order and
// stops at the first failure.
func (s *CardCommandService) Login(ctx context.Context, cmd cqrs.LoginCommand) (*models.Card, error) {
	if validation.Struct(cmd) != nil || !luhn.Valid(cmd.Number) {
		return nil, ErrInvalidCredentials
	}
	card, err := s.readRepo.FindByNumber(ctx, cmd.Number)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.pins.Match(cmd.PIN, card.PIN) {
		return nil, ErrInvalidCredentials
	}
	s.log.Info("card logged in", zap.Int64("id", card.ID))
	return card, nil
}

// AddIncome credits the card in the store and then mirrors the persisted
// balance onto cmd.Card.
func (s *CardCommandService) AddIncome(ctx context.Context, cmd cqrs.AddIncomeCommand) error {
	if validation.Struct(cmd) != nil {
		return ErrInvalidAmount
	}
	balance, err := s.writeRepo.IncrementBalance(ctx, cmd.Card.ID, cmd.Amount)
	if err != nil {
		return fmt.Errorf("failed to add income: %w", err)
	}
	cmd.Card.Balance = balance

	s.readRepo.InvalidateCardView(ctx, cmd.Card.Number)
	s.publish(ctx, events.BalanceUpdated, events.BalanceUpdatedEvent{
		Number:     cmd.Card.Number,
		Change:     cmd.Amount,
		NewBalance: balance,
	})
	return nil
}

// ResolveTransferTarget validates a destination number entered by the
// operator and loads the card it names.
func (s *CardCommandService) ResolveTransferTarget(ctx context.Context, from *models.Card, number string) (*models.Card, error) {
	if !luhn.Valid(number) {
		return nil, ErrInvalidCard
	}
	if from != nil && number == from.Number {
		return nil, ErrSameCard
	}
	card, err := s.readRepo.FindByNumber(ctx, number)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// Transfer debits cmd.From and credits cmd.To atomically. Neither in-memory
// card changes unless the store committed both sides.
func (s *CardCommandService) Transfer(ctx context.Context, cmd cqrs.TransferCommand) error {
	if validation.Has(validation.Struct(cmd), "Amount") {
		return ErrInvalidAmount
	}
	if cmd.From == nil || cmd.To == nil {
		return ErrInvalidCard
	}
	if cmd.From.ID == cmd.To.ID {
		return ErrSameCard
	}
	if cmd.Amount > cmd.From.Balance {
		return ErrInsufficientFunds
	}

	fromBalance, toBalance, err := s.writeRepo.Transfer(ctx, cmd.From.ID, cmd.To.ID, cmd.Amount)
	switch {
	case errors.Is(err, repository.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, repository.ErrNotFound):
		return ErrCardNotFound
	case err != nil:
		return fmt.Errorf("failed to transfer: %w", err)
	}
	cmd.From.Balance = fromBalance
	cmd.To.Balance = toBalance

	s.readRepo.InvalidateCardView(ctx, cmd.From.Number)
	s.readRepo.InvalidateCardView(ctx, cmd.To.Number)
	s.publish(ctx, events.TransferCompleted, events.TransferCompletedEvent{
		From:   cmd.From.Number,
		To:     cmd.To.Number,
		Amount: cmd.Amount,
	})
	s.log.Info("transfer completed",
		zap.Int64("from", cmd.From.ID),
		zap.Int64("to", cmd.To.ID),
		zap.Int64("amount", cmd.Amount),
	)
	return nil
}

// CloseCard deletes the card from the store. A card that is no longer
// stored yields ErrCardNotFound.
func (s *CardCommandService) CloseCard(ctx context.Context, cmd cqrs.CloseCardCommand) error {
	if validation.Struct(cmd) != nil {
		return ErrInvalidCard
	}
	err := s.writeRepo.Delete(ctx, cmd.Card.ID)
	if errors.Is(err, repository.ErrNotFound) {
		s.readRepo.InvalidateCardView(ctx, cmd.Card.Number)
		s.log.Warn("card already gone on close", zap.Int64("id", cmd.Card.ID))
		return ErrCardNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to close card: %w", err)
	}
	s.readRepo.InvalidateCardView(ctx, cmd.Card.Number)
	s.publish(ctx, events.CardClosed, events.CardClosedEvent{Number: cmd.Card.Number})
	s.log.Info("card closed", zap.Int64("id", cmd.Card.ID))
	return nil
}

func (s *CardCommandService) publish(ctx context.Context, eventType string, data any) {
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.log.Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
