package bank

import "github.com/eaglebank/banking-console/internal/models"

// Session holds the card that is currently logged in, if any.
type Session struct {
	card *models.Card
}

func (s *Session) Card() *models.Card { return s.card }

func (s *Session) Authenticated() bool { return s.card != nil }

func (s *Session) LogIn(card *models.Card) { s.card = card }

func (s *Session) LogOut() { s.card = nil }
