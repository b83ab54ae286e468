package input

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Input is the formatted and validated view of one raw user entry. Inputs
// are immutable: build a new one for every change of the raw text.
type Input interface {
	// FormattedValue is the value grouped for display, e.g. "AT12 1233 1234 1234".
	FormattedValue() string
	// TrimmedValue is FormattedValue without leading and trailing separators.
	TrimmedValue() string
	Valid() bool
	// GroupingSeparator is the separator used for display, or "" if the
	// value is not grouped.
	GroupingSeparator() string
}

const (
	cardNumberSeparator = " "
	ibanSeparator       = " "
	expirySeparator     = "/"

	maximumIBANLength   = 34
	cvvLength           = 3
	expiryLength        = 4
	minimumBICLength    = 8
	expiryCenturyOffset = 2000
)

var (
	_ Input = CreditCardInput{}
	_ Input = IBANInput{}
	_ Input = CvvInput{}
	_ Input = CardExpiryInput{}
	_ Input = BICInput{}
)

// CreditCardInput holds an entered card number.
type CreditCardInput struct {
	// Number is the condensed number, cut to the brand's maximum length.
	Number string
	Type   CardType
	Result ValidationResult

	formatted string
}

// NewCreditCardInput detects the brand of raw, cuts it to the brand's maximum
// length and validates it.
func NewCreditCardInput(raw string) CreditCardInput {
	condensed := UngroupString(raw, cardNumberSeparator)
	cardType := CardTypeFromNumber(condensed)
	number := limit(condensed, cardType.MaximumLength())
	return CreditCardInput{
		Number:    number,
		Type:      cardType,
		Result:    cardType.Validate(number),
		formatted: cardType.GroupingStyle().GroupString(number, cardNumberSeparator),
	}
}

func (i CreditCardInput) FormattedValue() string    { return i.formatted }
func (i CreditCardInput) TrimmedValue() string      { return trimSeparator(i.formatted, cardNumberSeparator) }
func (i CreditCardInput) Valid() bool               { return i.Result == ValidChecksum }
func (i CreditCardInput) GroupingSeparator() string { return cardNumberSeparator }

// IBANInput holds an entered IBAN.
type IBANInput struct {
	// IBAN is the condensed value with disallowed characters removed. It
	// backs the display values only.
	IBAN string
	// Condensed is the entered value without whitespace, upper cased and
	// otherwise unfiltered. Result describes this value; submit it.
	Condensed string
	Result    ValidationResult
}

// NewIBANInput filters raw for display and validates the unfiltered value.
// The first two characters must be letters, the rest digits; characters
// violating that are dropped from IBAN.
func NewIBANInput(raw string) IBANInput {
	condensed := limit(UngroupString(raw, ibanSeparator), maximumIBANLength)
	return IBANInput{
		IBAN:      filterIBAN(condensed),
		Condensed: strings.ToUpper(UngroupString(raw, ibanSeparator)),
		Result:    ValidateIBAN(raw),
	}
}

func filterIBAN(s string) string {
	var b strings.Builder
	for i, r := range []rune(s) {
		upper := r
		if r >= 'a' && r <= 'z' {
			upper = r - 'a' + 'A'
		}
		if i < 2 && (upper < 'A' || upper > 'Z') {
			continue
		}
		if i >= 2 && (r < '0' || r > '9') {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (i IBANInput) FormattedValue() string {
	return FixedGroups{GroupSize: 4, MaximumLength: maximumIBANLength}.GroupString(i.IBAN, ibanSeparator)
}
func (i IBANInput) TrimmedValue() string      { return trimSeparator(i.FormattedValue(), ibanSeparator) }
func (i IBANInput) Valid() bool               { return i.Result == ValidChecksum }
func (i IBANInput) GroupingSeparator() string { return ibanSeparator }

// CvvInput holds an entered card verification value. Only the length is checked.
type CvvInput struct {
	CVV string
}

// NewCvvInput cuts raw to three characters.
func NewCvvInput(raw string) CvvInput {
	return CvvInput{CVV: limit(raw, cvvLength)}
}

func (i CvvInput) FormattedValue() string    { return i.CVV }
func (i CvvInput) TrimmedValue() string      { return i.CVV }
func (i CvvInput) Valid() bool               { return utf8.RuneCountInString(i.CVV) == cvvLength }
func (i CvvInput) GroupingSeparator() string { return "" }

// CardExpiryInput holds an entered expiry date in MM/YY form.
type CardExpiryInput struct {
	// ExpiryDate is the condensed MMYY value, or the partial input while typing.
	ExpiryDate string
	// Month is 1..12, or -1 unless four valid digits were entered.
	Month int
	// Year is the four digit year, or -1 unless four digits were entered.
	Year int

	valid bool
}

// NewCardExpiryInput parses raw and checks that the expiry is not in the past.
func NewCardExpiryInput(raw string) CardExpiryInput {
	return newCardExpiryInputAt(raw, time.Now())
}

func newCardExpiryInputAt(raw string, now time.Time) CardExpiryInput {
	condensed := limit(UngroupString(raw, expirySeparator), expiryLength)
	expiry := condensed
	// A single leading digit above 1 can only be a month like "03".
	if len(condensed) == 1 && condensed != "0" && condensed != "1" {
		expiry = "0" + condensed + expirySeparator
	}
	in := CardExpiryInput{ExpiryDate: expiry, Month: -1, Year: -1}
	if utf8.RuneCountInString(expiry) != expiryLength {
		return in
	}
	if month, err := strconv.Atoi(expiry[:2]); err == nil && month >= 1 && month <= 12 {
		in.Month = month
	}
	if year, err := strconv.Atoi(expiry[2:]); err == nil {
		in.Year = year + expiryCenturyOffset
	}
	if in.Month == -1 || in.Year == -1 {
		return in
	}
	currentYear, currentMonth := now.Year(), int(now.Month())
	in.valid = in.Year > currentYear || (in.Year == currentYear && in.Month >= currentMonth)
	return in
}

func (i CardExpiryInput) FormattedValue() string {
	return FixedGroups{GroupSize: 2, MaximumLength: expiryLength}.GroupString(i.ExpiryDate, expirySeparator)
}
func (i CardExpiryInput) TrimmedValue() string      { return trimSeparator(i.FormattedValue(), expirySeparator) }
func (i CardExpiryInput) GroupingSeparator() string { return expirySeparator }

// Valid reports whether the expiry month is the current month or later.
// A card expiring this month is still usable until the month ends.
func (i CardExpiryInput) Valid() bool { return i.valid }

// BICInput holds an entered bank identifier code. Only the length is checked.
type BICInput struct {
	BIC string
}

// NewBICInput wraps raw unchanged.
func NewBICInput(raw string) BICInput {
	return BICInput{BIC: raw}
}

func (i BICInput) FormattedValue() string    { return i.BIC }
func (i BICInput) TrimmedValue() string      { return i.BIC }
func (i BICInput) Valid() bool               { return utf8.RuneCountInString(i.BIC) >= minimumBICLength }
func (i BICInput) GroupingSeparator() string { return "" }
