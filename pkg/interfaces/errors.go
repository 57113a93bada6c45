/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy shared by the mask engine and the category sources.
*/

package interfaces

import (
	"errors"
	"fmt"
)

// ErrEmptyMask is returned when a mask string contains no tokens.
var ErrEmptyMask = errors.New("mask is empty")

// EmptyCategoryError reports a token that resolved to zero candidates,
// which makes every mask containing it unsatisfiable.
type EmptyCategoryError struct {
	Token string
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("category %q has no candidates", e.Token)
}

// UnknownTokenError reports a token the source cannot resolve at all.
type UnknownTokenError struct {
	Token  string
	Source string
}

func (e *UnknownTokenError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("unknown token %q", e.Token)
	}
	return fmt.Sprintf("unknown token %q for %s source", e.Token, e.Source)
}

// DictionaryLoadError wraps I/O and structural failures while loading a dictionary
// or a hash list.
type DictionaryLoadError struct {
	Path string
	Err  error
}

func (e *DictionaryLoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *DictionaryLoadError) Unwrap() error {
	return e.Err
}
