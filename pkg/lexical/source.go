/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Lexical category source. Resolves part-of-speech tokens (and the "any"
wildcard) to dictionary words, filters or culls the dictionary with named predicates,
and tallies category membership. Culling notifies registered invalidation hooks so
that caches built on top of the source never go stale.
*/

package lexical

import (
	"fmt"
	"io"
	"sort"

	"github.com/kleascm/entro/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Source implements interfaces.CategorySource and interfaces.Invalidator over a Dictionary.
// It is single-writer: Filter with destructive set must not race with readers.
type Source struct {
	dict   Dictionary
	hooks  []func()
	logger *logrus.Logger
}

// NewSource creates a lexical source owning dict
func NewSource(dict Dictionary) *Source {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Source{
		dict:   dict,
		logger: logger,
	}
}

// NewSourceFromFile loads the dictionary at path and wraps it in a source
func NewSourceFromFile(path string, logger *logrus.Logger) (*Source, error) {
	dict, err := LoadDictionary(path)
	if err != nil {
		return nil, err
	}
	s := NewSource(dict)
	if logger != nil {
		s.SetLogger(logger)
	}
	s.logger.WithFields(logrus.Fields{
		"path":  path,
		"words": len(dict),
	}).Info("Dictionary loaded")
	return s, nil
}

// SetLogger replaces the source logger
func (s *Source) SetLogger(logger *logrus.Logger) {
	s.logger = logger
}

// Name returns the source name
func (s *Source) Name() string {
	return interfaces.SourceLexical
}

// Tokens lists the recognized part-of-speech labels followed by "any"
func (s *Source) Tokens() []string {
	out := make([]string, 0, len(Labels)+1)
	out = append(out, Labels...)
	return append(out, interfaces.AnyToken)
}

// Len returns the number of words in the dictionary
func (s *Source) Len() int {
	return len(s.dict)
}

// Dictionary returns the current dictionary. The map is shared; treat it as read-only.
func (s *Source) Dictionary() Dictionary {
	return s.dict
}

// CategoryMembers returns the words carrying the token's part of speech, sorted.
// "any" returns every word, including words with no recognized label.
// Tokens that are neither a recognized label nor "any" yield *interfaces.UnknownTokenError;
// a recognized label with no words yields an empty slice.
func (s *Source) CategoryMembers(token string) ([]string, error) {
	if token != interfaces.AnyToken && !IsLabel(token) {
		return nil, &interfaces.UnknownTokenError{Token: token, Source: s.Name()}
	}

	words := make([]string, 0)
	for word, entry := range s.dict {
		if token == interfaces.AnyToken || entry.HasPartOfSpeech(token) {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	return words, nil
}

// PartsOfSpeech returns the distinct labels found across a word's definitions
func (s *Source) PartsOfSpeech(word string) ([]string, error) {
	entry, ok := s.dict[word]
	if !ok {
		return nil, fmt.Errorf("word %q not in dictionary", word)
	}
	return entry.PartsOfSpeech(), nil
}

// Filter returns the sub-dictionary of words satisfying pred.
// When destructive is set the source's own dictionary is replaced by the result
// and every invalidation hook runs.
func (s *Source) Filter(pred Predicate, destructive bool) Dictionary {
	filtered := make(Dictionary)
	for word, entry := range s.dict {
		if pred(word) {
			filtered[word] = entry
		}
	}

	if destructive {
		before := len(s.dict)
		s.dict = filtered
		s.invalidate()
		s.logger.WithFields(logrus.Fields{
			"before": before,
			"after":  len(filtered),
		}).Debug("Dictionary culled")
	}
	return filtered
}

// Cull destructively filters the dictionary with each named predicate in turn
func (s *Source) Cull(names ...string) error {
	for _, name := range names {
		pred, ok := LookupPredicate(name)
		if !ok {
			return fmt.Errorf("unknown filter: %s", name)
		}
		s.Filter(pred, true)
	}
	return nil
}

// OnInvalidate registers a hook run after every dictionary mutation
func (s *Source) OnInvalidate(hook func()) {
	s.hooks = append(s.hooks, hook)
}

func (s *Source) invalidate() {
	for _, hook := range s.hooks {
		hook()
	}
}

// CategoryCounts tallies each recognized label across the dictionary, plus "any"
// holding the total entry count. A word is counted once per distinct label it carries.
// When override is non-nil it is tallied instead of the source's own dictionary.
func (s *Source) CategoryCounts(override Dictionary) map[string]int {
	dict := s.dict
	if override != nil {
		dict = override
	}

	counts := make(map[string]int, len(Labels)+1)
	for _, l := range Labels {
		counts[l] = 0
	}
	for _, entry := range dict {
		for _, label := range entry.PartsOfSpeech() {
			if _, ok := counts[label]; ok {
				counts[label]++
			}
		}
	}
	counts[interfaces.AnyToken] = len(dict)
	return counts
}
