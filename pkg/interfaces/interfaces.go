/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the Entro passphrase analyzer. Defines the category
source capability used by the mask engine so that the lexical and character-class
sources can live in their own packages without import cycles.
*/

package interfaces

// CategorySource resolves a mask token to the ordered list of values it may take.
// Implementations return *UnknownTokenError for tokens outside their vocabulary and
// an empty, non-nil slice for recognized categories that currently have no members.
type CategorySource interface {
	// CategoryMembers returns every candidate value for the token.
	CategoryMembers(token string) ([]string, error)
	// Tokens lists the token names the source recognizes.
	Tokens() []string
	// Name identifies the source in logs and errors.
	Name() string
}

// Invalidator is implemented by sources whose contents can change after construction.
// Callers holding derived data (such as a category cache) register a hook that the
// source invokes after every mutation.
type Invalidator interface {
	OnInvalidate(hook func())
}

// AnyToken is the wildcard token every source understands.
const AnyToken = "any"
