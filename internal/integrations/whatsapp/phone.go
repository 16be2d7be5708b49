package whatsapp

import (
	"fmt"
	"strings"
)

const minRecipientDigits = 6

// toE164 приводит номер к международному формату
// Номер без '+' считается локальным: ведущие нули отбрасываются, добавляется defaultCountryCode
func toE164(number, defaultCountryCode string) (string, error) {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "+") {
		digits := onlyDigits(number)
		if len(digits) < minRecipientDigits {
			return "", fmt.Errorf("%w: %q", ErrInvalidRecipient, number)
		}
		return "+" + digits, nil
	}

	digits := strings.TrimLeft(onlyDigits(number), "0")
	if len(digits) < minRecipientDigits {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecipient, number)
	}

	code := onlyDigits(defaultCountryCode)
	return "+" + code + digits, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
