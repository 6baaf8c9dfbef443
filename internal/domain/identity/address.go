package identity

import (
	"strings"
	"unicode"

	"rentflow/internal/domain/normalize"
)

// AddressMatcher decides whether a declared address agrees with the address
// read from the ID card.
type AddressMatcher interface {
	Match(declared, extracted string) bool
}

// AddressMatcherFunc adapts a function to AddressMatcher.
type AddressMatcherFunc func(declared, extracted string) bool

// Match implements AddressMatcher.
func (f AddressMatcherFunc) Match(declared, extracted string) bool {
	return f(declared, extracted)
}

// SubstringMatcher accepts when the declared address, lower-cased and
// whitespace-collapsed, is contained in the extracted one. OCR addresses are
// usually the longer, administrative form.
var SubstringMatcher AddressMatcher = AddressMatcherFunc(func(declared, extracted string) bool {
	d := lowerCollapse(declared)
	e := lowerCollapse(extracted)
	if d == "" || e == "" {
		return false
	}

	return strings.Contains(e, d)
})

// FoldedMatcher is SubstringMatcher after diacritic folding and punctuation removal.
var FoldedMatcher AddressMatcher = AddressMatcherFunc(func(declared, extracted string) bool {
	d := foldAddress(declared)
	e := foldAddress(extracted)
	if d == "" || e == "" {
		return false
	}

	return strings.Contains(e, d)
})

// MatcherByName returns the strategy registered under name, defaulting to SubstringMatcher.
func MatcherByName(name string) AddressMatcher {
	if strings.EqualFold(name, "folded") {
		return FoldedMatcher
	}

	return SubstringMatcher
}

func lowerCollapse(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func foldAddress(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return ' '
		}

		return r
	}, normalize.Fold(s))

	return lowerCollapse(cleaned)
}
