package models

// CardView is the cached projection of a card row. PINHash carries whatever
// the pin column holds, which is a bcrypt hash when PIN hashing is enabled.
type CardView struct {
	ID      int64  `json:"id"`
	Number  string `json:"number"`
	PINHash string `json:"pin"`
	Balance int64  `json:"balance"`
}

// ToView projects a card into its cache representation.
func ToView(c *Card) *CardView {
	return &CardView{ID: c.ID, Number: c.Number, PINHash: c.PIN, Balance: c.Balance}
}

// ToCard converts a cached view back into a card.
func (v *CardView) ToCard() *Card {
	return &Card{ID: v.ID, Number: v.Number, PIN: v.PINHash, Balance: v.Balance}
}
