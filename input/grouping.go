package input

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// GroupingStyle inserts a separator into a condensed string to make it
// readable, e.g. "1234 5678 9012 3456".
type GroupingStyle interface {
	// GroupString condenses s (whitespace and separator removed) and rebuilds
	// it with groups separated by separator.
	GroupString(s, separator string) string
}

// FixedGroups groups characters into groups of GroupSize. Characters past
// MaximumLength are dropped.
type FixedGroups struct {
	GroupSize     int
	MaximumLength int
}

// GroupString implements [GroupingStyle].
func (g FixedGroups) GroupString(s, separator string) string {
	return group(UngroupString(s, separator), separator, g.MaximumLength, func(int) int {
		return g.GroupSize
	})
}

// VariableGroups takes the size of group i from GroupSizes[i]. Once the
// sizes are exhausted no further separators are inserted.
type VariableGroups struct {
	GroupSizes    []int
	MaximumLength int
}

// GroupString implements [GroupingStyle].
func (g VariableGroups) GroupString(s, separator string) string {
	return group(UngroupString(s, separator), separator, g.MaximumLength, func(i int) int {
		if i < len(g.GroupSizes) {
			return g.GroupSizes[i]
		}
		return 0
	})
}

// UngroupString removes every occurrence of separator and all whitespace.
func UngroupString(s, separator string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if separator == "" {
		return s
	}
	return strings.ReplaceAll(s, separator, "")
}

// group writes at most maximumLength characters of condensed, appending the
// separator whenever the current group is full and more characters may follow.
func group(condensed, separator string, maximumLength int, sizeOf func(group int) int) string {
	var b strings.Builder
	count, inGroup, index := 0, 0, 0
	for _, r := range condensed {
		if count >= maximumLength {
			break
		}
		b.WriteRune(r)
		count++
		inGroup++
		if size := sizeOf(index); size > 0 && inGroup == size && count < maximumLength {
			b.WriteString(separator)
			index++
			inGroup = 0
		}
	}
	return b.String()
}

func trimSeparator(s, separator string) string {
	if separator == "" {
		return s
	}
	return strings.Trim(s, separator)
}

func limit(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return string([]rune(s)[:maxLength])
}

func removeWhitespace(s string) string {
	return UngroupString(s, "")
}
