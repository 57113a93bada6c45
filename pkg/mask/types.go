/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the mask engine. Defines masks, entropy estimates, search
runs and search outcomes shared by the engine, its reporters and the command-line
interface.
*/

package mask

import (
	"math/big"
	"strings"
	"time"
)

// Mask is an ordered sequence of category tokens.
// Token order fixes the concatenation order of the resulting passphrase.
type Mask []string

// String joins the tokens with single spaces
func (m Mask) String() string {
	return strings.Join(m, " ")
}

// TokenSize records how many candidates a token resolved to
type TokenSize struct {
	Token      string `json:"token"`
	Candidates int    `json:"candidates"`
}

// CrackTime is the expected time to exhaust a possibility space at a given rate
type CrackTime struct {
	Hours float64 `json:"hours"`
	Days  float64 `json:"days"`
}

// Estimate summarizes the guessing entropy of a mask over a source
type Estimate struct {
	Mask          string      `json:"mask"`
	Source        string      `json:"source"`
	Tokens        []TokenSize `json:"tokens"`
	Possibilities *big.Int    `json:"possibilities"`
	Bits          float64     `json:"bits"`
	HashRate      float64     `json:"hash_rate"`
	CrackTime     CrackTime   `json:"crack_time"`
}

// SearchMode identifies the search algorithm of a run
type SearchMode string

const (
	ModeExhaustive SearchMode = "exhaustive"
	ModeRandom     SearchMode = "random"
)

// SearchRun describes a search while it is in progress
type SearchRun struct {
	ID         string     `json:"id"`
	Mode       SearchMode `json:"mode"`
	Mask       string     `json:"mask"`
	Algorithm  string     `json:"algorithm"`
	Total      *big.Int   `json:"total"`       // Size of the candidate space
	TargetSize int        `json:"target_size"` // Distinct digests being searched for
	SetMode    bool       `json:"set_mode"`
	StartedAt  time.Time  `json:"started_at"`
}

// StopReason explains why a search returned
type StopReason string

const (
	StopFound     StopReason = "found"     // Single target matched
	StopExhausted StopReason = "exhausted" // Whole space enumerated (or every set member found)
	StopTimeout   StopReason = "timeout"   // Time budget spent
	StopAttempts  StopReason = "attempts"  // Attempt budget spent
	StopCancelled StopReason = "cancelled" // Context cancelled
)

// SearchOutcome is the result of a search. Timeouts and cancellation are outcomes,
// not errors: the partial progress is reported here.
type SearchOutcome struct {
	Run       *SearchRun    `json:"run"`
	Reason    StopReason    `json:"reason"`
	Found     bool          `json:"found"`
	Candidate string        `json:"candidate,omitempty"` // Matching candidate in single-target mode
	Matches   int           `json:"matches"`             // Distinct target digests matched
	Matched   []string      `json:"matched,omitempty"`   // First candidate matching each digest
	Tested    int64         `json:"tested"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Complete reports whether the search ran to its natural end
func (o *SearchOutcome) Complete() bool {
	return o.Reason == StopFound || o.Reason == StopExhausted
}

// RandomSearchLimits bounds a random search. Zero values mean unlimited.
type RandomSearchLimits struct {
	MaxAttempts int64
	Timeout     time.Duration
}
