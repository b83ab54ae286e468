package input

import "unicode/utf8"

const visibleCardDigits = 4

// Mask hides all but the last four characters of number behind a single "*".
// Numbers of four characters or less are masked completely.
func Mask(number string) string {
	runes := []rune(number)
	if utf8.RuneCountInString(number) <= visibleCardDigits {
		return "*"
	}
	return "*" + string(runes[len(runes)-visibleCardDigits:])
}
