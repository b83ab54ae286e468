package input

import "testing"

func TestCardTypeFromNumber(t *testing.T) {
	t.Parallel()

	tests := map[string]CardType{
		"":     CardTypeUnknown,
		"2221": CardTypeMasterCard,
		"5389": CardTypeMasterCard,
		"3703": CardTypeAmericanExpress,
		"4539": CardTypeVisa,
		"6759": CardTypeMaestro,
		"7":    CardTypeMaestro,
		"9":    CardTypeMaestro,
		"1":    CardTypeUnknown,
		"8":    CardTypeUnknown,
		"x":    CardTypeUnknown,
	}

	for number, want := range tests {
		if got := CardTypeFromNumber(number); got != want {
			t.Fatalf("%q: expected %s got %s", number, want, got)
		}
	}
}

func TestCardTypeValidateChecksLengthFirst(t *testing.T) {
	t.Parallel()

	if got := CardTypeVisa.Validate("4539 2607 8095 2497"); got != ValidChecksum {
		t.Fatalf("expected valid visa got %s", got)
	}
	if got := CardTypeVisa.Validate("453926078095249"); got != InvalidLength {
		t.Fatalf("expected invalid length got %s", got)
	}
	if got := CardTypeAmericanExpress.Validate("370355496876137"); got != ValidChecksum {
		t.Fatalf("expected valid amex got %s", got)
	}
	if got := CardTypeMaestro.Validate("67596498264"); got != InvalidLength {
		t.Fatalf("expected maestro minimum length to apply got %s", got)
	}
}

func TestCardTypeGroupingStyleIsNotShared(t *testing.T) {
	t.Parallel()

	style, ok := CardTypeAmericanExpress.GroupingStyle().(VariableGroups)
	if !ok {
		t.Fatalf("expected variable groups for american express")
	}
	style.GroupSizes[0] = 1
	if got := CardTypeAmericanExpress.GroupingStyle().GroupString("370355496876137", " "); got != "3703 554968 76137" {
		t.Fatalf("unexpected grouping %q", got)
	}
	if _, ok := CardTypeMaestro.GroupingStyle().(FixedGroups); !ok {
		t.Fatalf("expected fixed groups for maestro")
	}
}
