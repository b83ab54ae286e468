package input

import "testing"

func TestMask(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"4444333322221111": "*1111",
		"12345":            "*2345",
		"1234":             "*",
		"1":                "*",
		"":                 "*",
	}
	for number, want := range tests {
		if got := Mask(number); got != want {
			t.Fatalf("%q: expected %q got %q", number, want, got)
		}
	}
}
