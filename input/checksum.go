package input

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidationResult is the outcome of a checksum validation.
type ValidationResult int

const (
	ValidChecksum     ValidationResult = iota + 1 // The checksum matches.
	InvalidChecksum                               // Well formed, but the checksum does not match.
	InvalidLength                                 // Too short or too long to be validated.
	InvalidCharacters                             // Contains characters the algorithm cannot process.
)

func (r ValidationResult) String() string {
	switch r {
	case ValidChecksum:
		return "valid_checksum"
	case InvalidChecksum:
		return "invalid_checksum"
	case InvalidLength:
		return "invalid_length"
	case InvalidCharacters:
		return "invalid_characters"
	default:
		return "unknown"
	}
}

const (
	minimumIBANLength = 9
	ibanCountryLength = 4
)

// ValidateCardNumber runs the Luhn algorithm over number after removing
// whitespace. Brand specific length bounds are checked by [CardType.Validate].
func ValidateCardNumber(number string) ValidationResult {
	condensed := removeWhitespace(number)
	if condensed == "" {
		return InvalidLength
	}
	sum := 0
	doubling := false
	for i := len(condensed) - 1; i >= 0; i-- {
		c := condensed[i]
		if c < '0' || c > '9' {
			return InvalidCharacters
		}
		digit := int(c - '0')
		if doubling {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		doubling = !doubling
	}
	if sum%10 != 0 {
		return InvalidChecksum
	}
	return ValidChecksum
}

// ValidateIBAN validates iban with the ISO 7064 mod-97 checksum. Whitespace
// and letter case are ignored.
func ValidateIBAN(iban string) ValidationResult {
	if utf8.RuneCountInString(iban) < minimumIBANLength {
		return InvalidLength
	}
	condensed := []rune(strings.ToUpper(removeWhitespace(iban)))
	if len(condensed) < ibanCountryLength {
		return InvalidLength
	}
	rearranged := make([]rune, 0, len(condensed))
	rearranged = append(rearranged, condensed[ibanCountryLength:]...)
	rearranged = append(rearranged, condensed[:ibanCountryLength]...)
	digits, ok := numericIBAN(rearranged)
	if !ok {
		return InvalidCharacters
	}
	if mod97(digits) != 1 {
		return InvalidChecksum
	}
	return ValidChecksum
}

// numericIBAN replaces A..Z with 10..35. It reports false when anything other
// than ASCII letters and digits remains.
func numericIBAN(rearranged []rune) (string, bool) {
	var b strings.Builder
	for _, r := range rearranged {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteString(strconv.Itoa(int(r-'A') + 10))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			return "", false
		}
	}
	return b.String(), true
}

// mod97 consumes the first nine digits, then seven digits at a time prefixed
// with the previous remainder, so intermediate values always fit an int.
func mod97(digits string) int {
	n := min(9, len(digits))
	remainder, _ := strconv.Atoi(digits[:n])
	remainder %= 97
	for rest := digits[n:]; rest != ""; rest = rest[n:] {
		n = min(7, len(rest))
		value, _ := strconv.Atoi(strconv.Itoa(remainder) + rest[:n])
		remainder = value % 97
	}
	return remainder
}
