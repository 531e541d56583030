package models

// Card is a stored bank card. ID is zero until the card has been persisted
// and never changes afterwards.
type Card struct {
	ID      int64  `json:"id"`
	Number  string `json:"number"`
	PIN     string `json:"-"`
	Balance int64  `json:"balance"`
}

// Persisted reports whether the store has assigned the card an identity.
func (c *Card) Persisted() bool {
	return c.ID != 0
}
