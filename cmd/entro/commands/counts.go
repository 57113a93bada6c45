/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: counts.go
Description: Dictionary inspection commands. Tallies words per part of speech and
shows the parts of speech of individual words.
*/

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kleascm/entro/pkg/interfaces"
	"github.com/kleascm/entro/pkg/lexical"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// RunCounts prints the number of words carrying each part of speech
func RunCounts(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.requireLexicon("counts"); err != nil {
		return err
	}

	counts := s.lexicon.CategoryCounts(nil)
	data := pterm.TableData{{"Part of speech", "Words"}}
	for _, label := range lexical.Labels {
		data = append(data, []string{label, strconv.Itoa(counts[label])})
	}
	data = append(data, []string{interfaces.AnyToken, strconv.Itoa(counts[interfaces.AnyToken])})
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	s.writeReport("counts", "", counts)
	return nil
}

// RunPartsOfSpeech prints the parts of speech of each word
func RunPartsOfSpeech(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.requireLexicon("pos"); err != nil {
		return err
	}

	for _, word := range args {
		labels, err := s.lexicon.PartsOfSpeech(word)
		if err != nil {
			pterm.Warning.Printf("%s: %v\n", word, err)
			continue
		}
		if len(labels) == 0 {
			fmt.Printf("%s: (none)\n", word)
			continue
		}
		fmt.Printf("%s: %s\n", word, strings.Join(labels, ", "))
	}
	return nil
}
