/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: charclass.go
Description: Character-class category source. Resolves the tokens lower, upper, punc,
digit, letter and any to fixed single-character candidate lists built once at
construction from the ASCII class definitions.
*/

package charclass

import (
	"strings"

	"github.com/kleascm/entro/pkg/interfaces"
)

// Character class tokens
const (
	TokenLower  = "lower"
	TokenUpper  = "upper"
	TokenPunc   = "punc"
	TokenDigit  = "digit"
	TokenLetter = "letter"
	TokenAny    = interfaces.AnyToken
)

// ASCII class definitions
const (
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits           = "0123456789"
	Punctuation      = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var tokenOrder = []string{TokenLower, TokenUpper, TokenPunc, TokenDigit, TokenLetter, TokenAny}

// Source implements interfaces.CategorySource over fixed character classes.
// Its lists never change, so it does not implement interfaces.Invalidator.
type Source struct {
	classes map[string][]string
}

// NewSource creates a character-class source with every class pre-populated
func NewSource() *Source {
	letter := LowercaseLetters + UppercaseLetters
	return &Source{
		classes: map[string][]string{
			TokenLower:  strings.Split(LowercaseLetters, ""),
			TokenUpper:  strings.Split(UppercaseLetters, ""),
			TokenPunc:   strings.Split(Punctuation, ""),
			TokenDigit:  strings.Split(Digits, ""),
			TokenLetter: strings.Split(letter, ""),
			TokenAny:    strings.Split(Punctuation+Digits+letter, ""),
		},
	}
}

// CategoryMembers returns the characters of the named class.
// The returned slice is a copy; callers may keep or modify it.
func (s *Source) CategoryMembers(token string) ([]string, error) {
	members, ok := s.classes[token]
	if !ok {
		return nil, &interfaces.UnknownTokenError{Token: token, Source: s.Name()}
	}
	out := make([]string, len(members))
	copy(out, members)
	return out, nil
}

// Tokens lists the recognized class names
func (s *Source) Tokens() []string {
	out := make([]string, len(tokenOrder))
	copy(out, tokenOrder)
	return out
}

// Name returns the source name
func (s *Source) Name() string {
	return interfaces.SourceCharClass
}
