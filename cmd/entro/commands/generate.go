/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate command implementation. Draws random passphrases from a mask and
optionally compares each one with a zxcvbn strength estimate.
*/

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kleascm/entro/pkg/mask"
	"github.com/kleascm/entro/pkg/strength"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GenerateResult is the report written by the generate command
type GenerateResult struct {
	Estimate    *mask.Estimate     `json:"estimate"`
	Passphrases []string           `json:"passphrases"`
	Strength    []*strength.Report `json:"strength,omitempty"`
}

// RunGenerate prints random passphrases drawn from a mask
func RunGenerate(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	count := viper.GetInt("generate.count")
	if count < 1 {
		return fmt.Errorf("count must be positive")
	}

	est, err := s.engine.Estimate(strings.Join(args, " "))
	if err != nil {
		return err
	}
	m, err := mask.Parse(est.Mask)
	if err != nil {
		return err
	}

	result := &GenerateResult{Estimate: est}
	for i := 0; i < count; i++ {
		pass, err := s.engine.Generate(m)
		if err != nil {
			return err
		}
		result.Passphrases = append(result.Passphrases, pass)
	}

	if !viper.GetBool("generate.compare") {
		for _, pass := range result.Passphrases {
			fmt.Println(pass)
		}
		s.writeReport("generate", "", result)
		return nil
	}

	data := pterm.TableData{{"Passphrase", "Mask bits", "zxcvbn bits", "Score", "zxcvbn crack time"}}
	for _, pass := range result.Passphrases {
		report := strength.Evaluate(pass, est.Bits, nil)
		result.Strength = append(result.Strength, report)
		data = append(data, []string{
			pass,
			fmt.Sprintf("%.2f", report.MaskBits),
			fmt.Sprintf("%.2f", report.ZxcvbnBits),
			strconv.Itoa(report.Score),
			report.CrackTimeDisplay,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	s.writeReport("generate", "", result)
	return nil
}
