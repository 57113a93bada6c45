/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strength.go
Description: Independent strength estimate of a concrete passphrase using zxcvbn. The mask
model measures the entropy of the generation process; zxcvbn measures how guessable the
resulting string looks to a pattern-matching attacker. Reporting both shows when a mask
produces passphrases that look weaker (or stronger) than their true search space.
*/

package strength

import (
	"github.com/nbutton23/zxcvbn-go"
)

// Report compares the mask-model entropy with the zxcvbn estimate for one passphrase
type Report struct {
	Passphrase       string  `json:"passphrase"`
	MaskBits         float64 `json:"mask_bits"`
	ZxcvbnBits       float64 `json:"zxcvbn_bits"`
	Score            int     `json:"score"` // 0 (weakest) to 4
	CrackTimeSeconds float64 `json:"crack_time_seconds"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

// Delta returns zxcvbn bits minus mask bits. Negative values mean zxcvbn
// underestimates the passphrase relative to its generation space.
func (r *Report) Delta() float64 {
	return r.ZxcvbnBits - r.MaskBits
}

// Evaluate runs zxcvbn on passphrase. userInputs are extra words (such as the
// dictionary entries that produced it) zxcvbn should treat as known.
func Evaluate(passphrase string, maskBits float64, userInputs []string) *Report {
	result := zxcvbn.PasswordStrength(passphrase, userInputs)
	return &Report{
		Passphrase:       passphrase,
		MaskBits:         maskBits,
		ZxcvbnBits:       result.Entropy,
		Score:            result.Score,
		CrackTimeSeconds: result.CrackTime,
		CrackTimeDisplay: result.CrackTimeDisplay,
	}
}
