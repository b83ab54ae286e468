// Package input formats and validates payment details as they are typed.
//
// Every Input is built from the raw text of one field and is never changed
// afterwards; construct a new value on each edit:
//
//	in := input.NewCreditCardInput("4539 2607 8095 2497")
//	in.FormattedValue() // "4539 2607 8095 2497"
//	in.Valid()          // true
//
// The checksum functions [ValidateCardNumber] and [ValidateIBAN] can also be
// used on their own.
package input
