package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/banking-console/internal/models"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// CardWriteRepository handles all state-mutating operations on the card table.
type CardWriteRepository struct {
	db *sql.DB
}

func NewCardWriteRepository(db *sql.DB) *CardWriteRepository {
	return &CardWriteRepository{db: db}
}

// Create inserts card and assigns the store identity to card.ID.
func (r *CardWriteRepository) Create(ctx context.Context, card *models.Card) error {
	if card.Persisted() {
		return fmt.Errorf("card %d is already persisted", card.ID)
	}
	query := `
		INSERT INTO card (number, pin, balance)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, card.Number, card.PIN, card.Balance).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create card: %w", err)
	}
	card.ID = id
	return nil
}

func (r *CardWriteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM card WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementBalance adds delta to the stored balance and returns the new value.
func (r *CardWriteRepository) IncrementBalance(ctx context.Context, id, delta int64) (int64, error) {
	query := `UPDATE card SET balance = balance + $1 WHERE id = $2 RETURNING balance`
	var balance int64
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}
	return balance, nil
}

// Transfer moves amount between two cards in a single transaction and
// returns both new balances. The debit never takes a balance below zero.
func (r *CardWriteRepository) Transfer(ctx context.Context, fromID, toID, amount int64) (fromBalance, toBalance int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transfer: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	debit := `UPDATE card SET balance = balance - $1 WHERE id = $2 AND balance >= $1 RETURNING balance`
	err = tx.QueryRowContext(ctx, debit, amount, fromID).Scan(&fromBalance)
	if err == sql.ErrNoRows {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM card WHERE id = $1)`, fromID).Scan(&exists); err != nil {
			return 0, 0, fmt.Errorf("failed to check source card: %w", err)
		}
		if !exists {
			return 0, 0, ErrNotFound
		}
		return 0, 0, ErrInsufficientFunds
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to debit card: %w", err)
	}

	credit := `UPDATE card SET balance = balance + $1 WHERE id = $2 RETURNING balance`
	err = tx.QueryRowContext(ctx, credit, amount, toID).Scan(&toBalance)
	if err == sql.ErrNoRows {
		return 0, 0, ErrNotFound
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to credit card: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transfer: %w", err)
	}
	return fromBalance, toBalance, nil
}
