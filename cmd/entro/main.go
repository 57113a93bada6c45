/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Entro. Estimates the guessing entropy of
mask-built passphrases, generates passphrases from masks, and searches a mask's
candidate space for known digests.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/entro/cmd/entro/commands"
	"github.com/kleascm/entro/pkg/interfaces"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "entro",
		Short: "Entro - passphrase entropy analyzer and mask-driven hash search",
		Long: `Entro models passphrases as masks: ordered sequences of category tokens such as
parts of speech ("adjective noun verb") or character classes ("upper lower digit punc").
It counts the possibility space of a mask, reports bits of entropy and crack time,
generates random passphrases, and searches the space for known digests.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().String("config", "", "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "warn", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().String("log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().String("log-format", "custom", "Log format (text, json, custom)")

	// Add source flags
	rootCmd.PersistentFlags().String("source", interfaces.SourceLexical, "Category source (lexical, charclass)")
	rootCmd.PersistentFlags().StringP("dictionary", "d", "", "JSON dictionary file for the lexical source")
	rootCmd.PersistentFlags().StringSlice("filter", []string{}, "Cull the dictionary with named filters before analysis")
	rootCmd.PersistentFlags().String("hash", interfaces.DefaultHashAlgorithm, "Digest algorithm")
	rootCmd.PersistentFlags().Float64("hash-rate", interfaces.DefaultHashRate, "Attacker hash rate (hashes/sec) for crack-time estimates")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Generator seed for reproducible output (0 = random)")
	rootCmd.PersistentFlags().String("report-dir", "", "Directory for JSON reports (empty = no reports)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("dictionary", rootCmd.PersistentFlags().Lookup("dictionary"))
	viper.BindPFlag("filters", rootCmd.PersistentFlags().Lookup("filter"))
	viper.BindPFlag("hash_algorithm", rootCmd.PersistentFlags().Lookup("hash"))
	viper.BindPFlag("hash_rate", rootCmd.PersistentFlags().Lookup("hash-rate"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("report_dir", rootCmd.PersistentFlags().Lookup("report-dir"))

	// Add estimate command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "estimate MASK...",
		Short: "Compute possibilities, bits of entropy and crack time for a mask",
		Long: `Resolve every token of the mask against the selected source and report the size of
the candidate space, its bits of entropy, and the time to exhaust it at the configured
hash rate.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunEstimate,
	})

	// Add generate command
	generateCmd := &cobra.Command{
		Use:   "generate MASK...",
		Short: "Generate random passphrases from a mask",
		Args:  cobra.MinimumNArgs(1),
		RunE:  commands.RunGenerate,
	}
	generateCmd.Flags().IntP("count", "n", 1, "Number of passphrases to generate")
	generateCmd.Flags().Bool("compare", false, "Compare each passphrase with a zxcvbn estimate")
	viper.BindPFlag("generate.count", generateCmd.Flags().Lookup("count"))
	viper.BindPFlag("generate.compare", generateCmd.Flags().Lookup("compare"))
	rootCmd.AddCommand(generateCmd)

	// Add crack command
	crackCmd := &cobra.Command{
		Use:   "crack MASK...",
		Short: "Search a mask's candidate space for a digest or a list of digests",
		Long: `Enumerate (exhaustive mode) or sample (random mode) the candidate space of a mask,
hashing each candidate and comparing it with the target. A single digest stops at the
first match; a hash list counts every digest reached. Ctrl+C or the timeout ends the
search early and reports the progress made so far.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunCrack,
	}
	crackCmd.Flags().String("target", "", "Hex digest to search for")
	crackCmd.Flags().String("hash-list", "", "File of digests to count (one per line or a JSON array)")
	crackCmd.Flags().String("mode", string(commands.CrackModeExhaustive), "Search mode (exhaustive, random)")
	crackCmd.Flags().Duration("timeout", 0, "Search time budget (0 = unlimited)")
	crackCmd.Flags().Int64("max-attempts", 0, "Random mode attempt budget (0 = unlimited)")
	crackCmd.Flags().Bool("progress", true, "Show a progress bar")
	crackCmd.MarkFlagsMutuallyExclusive("target", "hash-list")
	crackCmd.MarkFlagsOneRequired("target", "hash-list")
	viper.BindPFlag("crack.target", crackCmd.Flags().Lookup("target"))
	viper.BindPFlag("crack.hash_list", crackCmd.Flags().Lookup("hash-list"))
	viper.BindPFlag("crack.mode", crackCmd.Flags().Lookup("mode"))
	viper.BindPFlag("timeout", crackCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("max_attempts", crackCmd.Flags().Lookup("max-attempts"))
	viper.BindPFlag("crack.progress", crackCmd.Flags().Lookup("progress"))
	rootCmd.AddCommand(crackCmd)

	// Add counts command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "counts",
		Short: "Tally dictionary words per part of speech",
		Args:  cobra.NoArgs,
		RunE:  commands.RunCounts,
	})

	// Add pos command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "pos WORD...",
		Short: "Show the parts of speech of dictionary words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  commands.RunPartsOfSpeech,
	})

	// Add strength command
	strengthCmd := &cobra.Command{
		Use:   "strength PASSPHRASE",
		Short: "Score a passphrase with zxcvbn, optionally against its generating mask",
		Args:  cobra.ExactArgs(1),
		RunE:  commands.RunStrength,
	}
	strengthCmd.Flags().String("mask", "", "Mask that generated the passphrase")
	viper.BindPFlag("strength.mask", strengthCmd.Flags().Lookup("mask"))
	rootCmd.AddCommand(strengthCmd)

	// Add list-tokens command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-tokens",
		Short: "List mask tokens, dictionary filters and digest algorithms",
		Args:  cobra.NoArgs,
		Run:   commands.ListTokens,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(commands.ExitCode(err))
	}
}
