// Package luhn computes and verifies card check digits.
package luhn

// CardLength is the length of a complete card number including its check digit.
const CardLength = 16

// CheckDigit returns the check digit for digits. Digits at even 0-based
// positions are doubled and reduced by 9 when they exceed 9.
//
// digits must contain only ASCII decimal digits; use Valid for raw input.
func CheckDigit(digits string) byte {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 == 0 {
			d *= 2
		}
		if d > 9 {
			d -= 9
		}
		sum += d
	}
	rem := sum % 10
	if rem == 0 {
		return '0'
	}
	return byte('0' + 10 - rem)
}

// Valid reports whether number is a 16 digit card number whose last digit
// matches the check digit of the first 15.
func Valid(number string) bool {
	if len(number) != CardLength || !isDigits(number) {
		return false
	}
	return number[CardLength-1] == CheckDigit(number[:CardLength-1])
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
