package events

import "time"

// Event types
const (
	CardCreated       = "card.created"
	CardClosed        = "card.closed"
	BalanceUpdated    = "balance.updated"
	TransferCompleted = "transfer.completed"
)

// DefaultStream is the Redis stream card events are appended to.
const DefaultStream = "card.events"

type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type CardCreatedEvent struct {
	Number string `json:"number"`
}

type CardClosedEvent struct {
	Number string `json:"number"`
}

type BalanceUpdatedEvent struct {
	Number     string `json:"number"`
	Change     int64  `json:"change"`
	NewBalance int64  `json:"newBalance"`
}

type TransferCompletedEvent struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}
