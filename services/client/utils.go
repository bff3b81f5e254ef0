package client

import (
	"fmt"
	"strings"
)

// phoneDigits strips everything but digits from a phone value.
func phoneDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders a digit string in Brazilian display format:
// (DD) XXXX-XXXX for 10 digits, (DD) 9XXXX-XXXX for 11.
func FormatPhone(digits string) string {
	switch len(digits) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:])
	}
	return digits
}
