package input

import (
	"slices"
	"unicode/utf8"
)

// CardType is a card brand as detected from the leading digit of the number.
type CardType int

const (
	CardTypeUnknown CardType = iota
	CardTypeVisa
	CardTypeAmericanExpress
	CardTypeMasterCard
	CardTypeMaestro
)

type cardTypeSpec struct {
	name          string
	minimumLength int
	maximumLength int
	groupSizes    []int
}

var cardTypeSpecs = map[CardType]cardTypeSpec{
	CardTypeUnknown:         {name: "unknown", minimumLength: 16, maximumLength: 16},
	CardTypeVisa:            {name: "visa", minimumLength: 16, maximumLength: 16},
	CardTypeAmericanExpress: {name: "american_express", minimumLength: 15, maximumLength: 15, groupSizes: []int{4, 6, 5}},
	CardTypeMasterCard:      {name: "mastercard", minimumLength: 16, maximumLength: 16},
	CardTypeMaestro:         {name: "maestro", minimumLength: 12, maximumLength: 19},
}

// CardTypeFromNumber detects the brand from the first character of number.
func CardTypeFromNumber(number string) CardType {
	if number == "" {
		return CardTypeUnknown
	}
	switch number[0] {
	case '2', '5':
		return CardTypeMasterCard
	case '3':
		return CardTypeAmericanExpress
	case '4':
		return CardTypeVisa
	case '6', '7', '9':
		return CardTypeMaestro
	default:
		return CardTypeUnknown
	}
}

func (c CardType) spec() cardTypeSpec {
	if spec, ok := cardTypeSpecs[c]; ok {
		return spec
	}
	return cardTypeSpecs[CardTypeUnknown]
}

func (c CardType) String() string { return c.spec().name }

// MinimumLength is the shortest number accepted for the brand.
func (c CardType) MinimumLength() int { return c.spec().minimumLength }

// MaximumLength is the longest number accepted for the brand.
func (c CardType) MaximumLength() int { return c.spec().maximumLength }

// GroupingStyle returns how numbers of this brand are displayed.
func (c CardType) GroupingStyle() GroupingStyle {
	spec := c.spec()
	if len(spec.groupSizes) > 0 {
		return VariableGroups{GroupSizes: slices.Clone(spec.groupSizes), MaximumLength: spec.maximumLength}
	}
	return FixedGroups{GroupSize: 4, MaximumLength: spec.maximumLength}
}

// Validate checks the brand's length bounds and then the Luhn checksum.
func (c CardType) Validate(number string) ValidationResult {
	length := utf8.RuneCountInString(removeWhitespace(number))
	if length < c.MinimumLength() || length > c.MaximumLength() {
		return InvalidLength
	}
	return ValidateCardNumber(number)
}
