package utils

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/eaglebank/banking-console/internal/luhn"
)

const (
	// MajorIndustryIdentifier is the leading digit of every issued card.
	MajorIndustryIdentifier = "4"
	// IssuerIdentificationNumber is the fixed six digit card prefix.
	IssuerIdentificationNumber = MajorIndustryIdentifier + "00000"

	accountDigits = 9
	pinDigits     = 4
)

// GenerateCardNumber returns a new 16 digit card number: the issuer prefix,
// nine random account digits and a check digit.
func GenerateCardNumber() string {
	body := IssuerIdentificationNumber + randomDigits(accountDigits)
	return body + string(luhn.CheckDigit(body))
}

// GeneratePIN returns a random 4 digit PIN.
func GeneratePIN() string {
	return randomDigits(pinDigits)
}

func randomDigits(n int) string {
	var b strings.Builder
	b.Grow(n)
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, _ := rand.Int(rand.Reader, ten)
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String()
}
