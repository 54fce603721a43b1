package domain

import "strings"

const (
	zipcodeLength = 5

	// InvalidPhoneNumber is the sentinel written when a phone number cannot be normalized.
	InvalidPhoneNumber = "000-000-0000"
)

// CleanZipcode left-pads raw with "0" to five characters and keeps the first five.
func CleanZipcode(raw string) string {
	runes := []rune(raw)
	if n := len(runes); n < zipcodeLength {
		runes = append([]rune(strings.Repeat("0", zipcodeLength-n)), runes...)
	}
	return string(runes[:zipcodeLength])
}

// CleanPhoneNumber strips every non-digit and formats the remaining ten digits
// as DDD-DDD-DDDD. An eleven-digit number with a leading 1 loses the 1; any
// other count yields InvalidPhoneNumber.
func CleanPhoneNumber(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch n := len(digits); {
	case n < 10:
		return InvalidPhoneNumber
	case n == 11 && digits[0] == '1':
		return formatPhone(digits[1:])
	case n > 10:
		return InvalidPhoneNumber
	default:
		return formatPhone(digits)
	}
}

func formatPhone(d string) string {
	return d[:3] + "-" + d[3:6] + "-" + d[6:]
}
