/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: predicates.go
Description: Named, reusable word predicates for filtering and culling dictionaries.
*/

package lexical

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Predicate decides whether a word is kept by Filter
type Predicate func(word string) bool

// Predicate names
const (
	FilterShorterThan10 = "shorter_than_10"
	FilterShorterThan8  = "shorter_than_8"
	FilterLongerThan3   = "longer_than_3"
	FilterAlphaOnly     = "alpha_only"
	FilterASCIIOnly     = "ascii_only"
)

// ShorterThan10 keeps words of fewer than 10 characters
func ShorterThan10(word string) bool { return utf8.RuneCountInString(word) < 10 }

// ShorterThan8 keeps words of fewer than 8 characters
func ShorterThan8(word string) bool { return utf8.RuneCountInString(word) < 8 }

// LongerThan3 keeps words of more than 3 characters
func LongerThan3(word string) bool { return utf8.RuneCountInString(word) > 3 }

// AlphaOnly keeps non-empty words made only of letters
func AlphaOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ASCIIOnly keeps words whose every code point is below 128
func ASCIIOnly(word string) bool {
	for _, r := range word {
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

var predicates = map[string]Predicate{
	FilterShorterThan10: ShorterThan10,
	FilterShorterThan8:  ShorterThan8,
	FilterLongerThan3:   LongerThan3,
	FilterAlphaOnly:     AlphaOnly,
	FilterASCIIOnly:     ASCIIOnly,
}

// LookupPredicate returns the predicate registered under name
func LookupPredicate(name string) (Predicate, bool) {
	p, ok := predicates[name]
	return p, ok
}

// PredicateNames lists the registered predicate names, sorted
func PredicateNames() []string {
	names := make([]string, 0, len(predicates))
	for name := range predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
