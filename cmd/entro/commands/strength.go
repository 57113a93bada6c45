/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strength.go
Description: Strength command implementation. Scores a concrete passphrase with zxcvbn
and, when the generating mask is given, compares it with the mask's entropy.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/entro/pkg/strength"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunStrength prints the zxcvbn estimate of a passphrase
func RunStrength(cmd *cobra.Command, args []string) error {
	passphrase := args[0]
	maskString := viper.GetString("strength.mask")

	if maskString == "" {
		report := strength.Evaluate(passphrase, 0, nil)
		printStrength(report, false)
		return nil
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	est, err := s.engine.Estimate(maskString)
	if err != nil {
		return err
	}
	report := strength.Evaluate(passphrase, est.Bits, nil)
	printStrength(report, true)
	s.writeReport("strength", "", report)
	return nil
}

func printStrength(report *strength.Report, withMask bool) {
	fmt.Printf("Passphrase: %s\n", report.Passphrase)
	fmt.Printf("zxcvbn: %.2f bits, score %d/4, crack time %s\n", report.ZxcvbnBits, report.Score, report.CrackTimeDisplay)
	if !withMask {
		return
	}
	fmt.Printf("Mask model: %.2f bits\n", report.MaskBits)
	if report.Delta() < 0 {
		pterm.Warning.Printf("zxcvbn rates this passphrase %.2f bits below its generation space\n", -report.Delta())
	} else {
		pterm.Info.Printf("zxcvbn rates this passphrase %.2f bits above its generation space\n", report.Delta())
	}
}
