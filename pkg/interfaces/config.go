/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Analyzer configuration shared by the command-line interface and the
library packages. Populated from viper (flags, environment, config file) and
validated before any source or engine is built.
*/

package interfaces

import (
	"fmt"
	"math"
	"time"
)

// Source kinds understood by the analyzer
const (
	SourceLexical   = "lexical"
	SourceCharClass = "charclass"
)

// DefaultHashRate is the reference GPU rate used for crack-time estimates (hashes/sec)
const DefaultHashRate = 70_000_000.0

// DefaultHashAlgorithm is the digest used when none is configured
const DefaultHashAlgorithm = "sha1"

// AnalyzerConfig represents the configuration for an analysis or search session
type AnalyzerConfig struct {
	Source         string        // Category source kind: "lexical" or "charclass"
	DictionaryPath string        // JSON dictionary file (lexical source only)
	Filters        []string      // Named predicates applied destructively before analysis
	HashAlgorithm  string        // Digest algorithm name
	HashRate       float64       // Hashes per second for crack-time estimates
	Timeout        time.Duration // Exhaustive search budget (0 = unlimited)
	MaxAttempts    int64         // Random search attempt budget (0 = unlimited)
	Seed           uint64        // Generator seed (0 = random)
	ReportDir      string        // Directory for JSON reports (empty = no reports)
	LogLevel       string
	LogDir         string
	LogFormat      string
	JSONLogs       bool
}

// DefaultAnalyzerConfig returns a configuration with the reference defaults
func DefaultAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		Source:        SourceLexical,
		HashAlgorithm: DefaultHashAlgorithm,
		HashRate:      DefaultHashRate,
		LogLevel:      "info",
		LogFormat:     "custom",
	}
}

// Validate checks the configuration for invalid or missing values.
func (c *AnalyzerConfig) Validate() error {
	switch c.Source {
	case SourceLexical:
		if c.DictionaryPath == "" {
			return fmt.Errorf("dictionary path is required for the lexical source")
		}
	case SourceCharClass:
		if len(c.Filters) > 0 {
			return fmt.Errorf("filters only apply to the lexical source")
		}
	default:
		return fmt.Errorf("unsupported source: %s", c.Source)
	}
	if math.IsNaN(c.HashRate) || math.IsInf(c.HashRate, 0) || c.HashRate <= 0 {
		return fmt.Errorf("hash rate must be a positive finite number")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must not be negative")
	}
	if c.HashAlgorithm == "" {
		return fmt.Errorf("hash algorithm must not be empty")
	}
	return nil
}
