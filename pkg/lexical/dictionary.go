/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dictionary.go
Description: Dictionary data model and loader for the lexical category source. A
dictionary is a JSON object keyed by word whose values carry a list of definitions,
each tagged with a single part of speech.
*/

package lexical

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kleascm/entro/pkg/interfaces"
)

// Recognized part-of-speech labels
const (
	Noun         = "noun"
	Verb         = "verb"
	Adverb       = "adverb"
	Adjective    = "adjective"
	Pronoun      = "pronoun"
	Conjunction  = "conjunction"
	Preposition  = "preposition"
	Interjection = "interjection"
)

// Labels lists the recognized part-of-speech labels in reporting order.
// Labels outside this set still count toward "any" but get no bucket of their own.
var Labels = []string{Noun, Verb, Adverb, Adjective, Pronoun, Conjunction, Preposition, Interjection}

// IsLabel reports whether label is one of the recognized parts of speech
func IsLabel(label string) bool {
	for _, l := range Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Definition is a single dictionary definition record
type Definition struct {
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition,omitempty"`
}

// Entry holds every definition of one word
type Entry struct {
	Definitions []Definition `json:"definitions"`
}

// Dictionary maps each unique word to its entry
type Dictionary map[string]Entry

// LoadDictionary reads a JSON dictionary from path.
// Any failure is returned as *interfaces.DictionaryLoadError.
func LoadDictionary(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &interfaces.DictionaryLoadError{Path: path, Err: err}
	}
	defer f.Close()

	dict, err := DecodeDictionary(f)
	if err != nil {
		return nil, &interfaces.DictionaryLoadError{Path: path, Err: err}
	}
	return dict, nil
}

// DecodeDictionary parses a JSON dictionary and checks its structure.
// Every entry must carry a definitions list and every definition a part of speech.
func DecodeDictionary(r io.Reader) (Dictionary, error) {
	var raw map[string]struct {
		Definitions *[]struct {
			PartOfSpeech *string `json:"part_of_speech"`
			Definition   string  `json:"definition"`
		} `json:"definitions"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after dictionary object")
	}
	if raw == nil {
		return nil, fmt.Errorf("dictionary is not a JSON object")
	}

	dict := make(Dictionary, len(raw))
	for word, rawEntry := range raw {
		if rawEntry.Definitions == nil {
			return nil, fmt.Errorf("word %q has no definitions list", word)
		}
		entry := Entry{Definitions: make([]Definition, 0, len(*rawEntry.Definitions))}
		for i, d := range *rawEntry.Definitions {
			if d.PartOfSpeech == nil {
				return nil, fmt.Errorf("word %q definition %d has no part_of_speech", word, i)
			}
			entry.Definitions = append(entry.Definitions, Definition{
				PartOfSpeech: *d.PartOfSpeech,
				Definition:   d.Definition,
			})
		}
		dict[word] = entry
	}
	return dict, nil
}

// PartsOfSpeech returns the distinct labels across the entry's definitions,
// in first-seen order.
func (e Entry) PartsOfSpeech() []string {
	labels := make([]string, 0, len(e.Definitions))
	for _, d := range e.Definitions {
		seen := false
		for _, l := range labels {
			if l == d.PartOfSpeech {
				seen = true
				break
			}
		}
		if !seen {
			labels = append(labels, d.PartOfSpeech)
		}
	}
	return labels
}

// HasPartOfSpeech reports whether any definition carries label
func (e Entry) HasPartOfSpeech(label string) bool {
	for _, d := range e.Definitions {
		if d.PartOfSpeech == label {
			return true
		}
	}
	return false
}
