/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: estimate.go
Description: Estimate command implementation. Resolves a mask against the configured
source and prints its possibility count, bits of entropy and crack time, with a
per-token breakdown.
*/

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// RunEstimate computes and prints the entropy of a mask
func RunEstimate(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	est, err := s.engine.Estimate(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.logger.LogEstimate(est.Mask, est.Possibilities.String(), est.Bits, est.CrackTime.Hours, est.HashRate)

	fmt.Printf("🔢 Mask: %s (%s source)\n", est.Mask, est.Source)
	fmt.Println()

	data := pterm.TableData{{"#", "Token", "Candidates"}}
	for i, t := range est.Tokens {
		data = append(data, []string{strconv.Itoa(i + 1), t.Token, strconv.Itoa(t.Candidates)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("Computed %s or approximately 2^%.4f bits of entropy\n", est.Possibilities.String(), est.Bits)
	fmt.Printf("Time to crack: %.2f hrs (%.2f days) @ %s h/s\n",
		est.CrackTime.Hours, est.CrackTime.Days, strconv.FormatFloat(est.HashRate, 'f', -1, 64))

	s.writeReport("estimate", "", est)
	return nil
}
