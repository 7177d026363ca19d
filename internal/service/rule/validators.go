package rule

import (
	"regexp"
	"strconv"
	"strings"
)

var pincodeRx = regexp.MustCompile(`^\d{6}$`)

func isValidPincode(pincode string) bool {
	return pincodeRx.MatchString(pincode)
}

// coerceBool повторяет коэрцию булевых полей формы: true/1/yes (без учёта
// регистра) — true, всё остальное — false.
func coerceBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// parseOptionalNonNegative пустая строка — отсутствие значения (nil).
func parseOptionalNonNegative(value string) (*int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, true
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return nil, false
	}
	return &parsed, true
}
