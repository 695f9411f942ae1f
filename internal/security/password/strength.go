package password

import (
	"strings"
	"unicode"
)

// Strength gives a coarse 0..4 score and a short hint for anything below 3.
// It is advisory only; hash-password prints the hint and hashes anyway.
func Strength(plain string, hints ...string) (int, string) {
	var lower, upper, digit, other bool
	for _, r := range plain {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}
	classes := 0
	for _, ok := range []bool{lower, upper, digit, other} {
		if ok {
			classes++
		}
	}

	n := len([]rune(plain))
	// containing the username is a common giveaway
	low := strings.ToLower(plain)
	for _, h := range hints {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && strings.Contains(low, h) && n < 16 && classes > 1 {
			classes--
			break
		}
	}

	switch {
	case n >= 14 && classes >= 3:
		return 4, ""
	case n >= 12 && classes >= 3:
		return 3, ""
	case n >= 10 && classes >= 2:
		return 2, "short or low variety; add length and mix letters, digits and symbols"
	case n >= 8:
		return 1, "too short or predictable; use at least 12 characters"
	default:
		return 0, "very weak; use 12+ characters with mixed types"
	}
}
