package luhn

import "testing"

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   byte
	}{
		{name: "all zeros", digits: "000000000000000", want: '0'},
		{name: "issuer prefix only", digits: "400000000000000", want: '2'},
		{name: "mixed digits", digits: "400000844943340", want: '3'},
		{name: "sum with remainder", digits: "400000493832089", want: '6'},
		{name: "doubled digits above nine", digits: "999999999999999", want: '5'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckDigit(tt.digits); got != tt.want {
				t.Errorf("CheckDigit(%q) = %c, want %c", tt.digits, got, tt.want)
			}
		})
	}
}

func TestCheckDigitDeterministic(t *testing.T) {
	const digits = "400000123456789"
	first := CheckDigit(digits)
	for i := 0; i < 100; i++ {
		if got := CheckDigit(digits); got != first {
			t.Fatalf("run %d: got %c, want %c", i, got, first)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{name: "valid", number: "4000008449433403", want: true},
		{name: "valid generated shape", number: "4000004938320896", want: true},
		{name: "wrong check digit", number: "4000008449433400", want: false},
		{name: "too short", number: "400000844943340", want: false},
		{name: "too long", number: "40000084494334030", want: false},
		{name: "non digit", number: "40000084494334a3", want: false},
		{name: "empty", number: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.number); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}
