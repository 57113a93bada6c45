/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: crack.go
Description: Crack command implementation. Searches a mask's candidate space for a
single digest or a list of digests, exhaustively or by random sampling, with signal
handling, progress display and a final outcome summary.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kleascm/entro/pkg/digest"
	"github.com/kleascm/entro/pkg/mask"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CrackMode selects the search algorithm of the crack command
type CrackMode string

const (
	CrackModeExhaustive CrackMode = CrackMode(mask.ModeExhaustive)
	CrackModeRandom     CrackMode = CrackMode(mask.ModeRandom)
)

// RunCrack searches a mask for the configured target
func RunCrack(cmd *cobra.Command, args []string) error {
	fmt.Println("🔓 Entro - Starting Search")
	fmt.Println("==========================")
	fmt.Println()

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	mode := CrackMode(strings.ToLower(viper.GetString("crack.mode")))
	if mode != CrackModeExhaustive && mode != CrackModeRandom {
		return fmt.Errorf("unsupported search mode: %s", mode)
	}

	target, err := loadTarget()
	if err != nil {
		return err
	}
	if mode == CrackModeRandom && target.IsSet() {
		return fmt.Errorf("random mode searches a single digest, not a hash list")
	}

	m, err := mask.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	s.engine.AddReporter(mask.NewLoggerReporter(s.logger.GetLogger()))
	if viper.GetBool("crack.progress") {
		s.engine.AddReporter(newProgressReporter(os.Stderr))
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Received shutdown signal, stopping search...")
			cancel()
		case <-ctx.Done():
		}
	}()

	var outcome *mask.SearchOutcome
	switch mode {
	case CrackModeRandom:
		outcome, err = s.engine.RandomSearchBounded(ctx, target, m, mask.RandomSearchLimits{
			MaxAttempts: s.config.MaxAttempts,
			Timeout:     s.config.Timeout,
		})
	default:
		outcome, err = s.engine.ExhaustiveSearch(ctx, target, m, s.config.Timeout)
	}
	if err != nil {
		return err
	}

	printOutcome(outcome)
	s.writeReport("search", outcome.Run.ID, outcome)

	fmt.Println("\n✨ Search completed!")
	return nil
}

// loadTarget builds the search target from --target or --hash-list
func loadTarget() (*digest.Target, error) {
	if path := viper.GetString("crack.hash_list"); path != "" {
		return digest.LoadHashList(path)
	}
	if hex := viper.GetString("crack.target"); hex != "" {
		return digest.NewSingleTarget(hex)
	}
	return nil, fmt.Errorf("a target digest or hash list is required")
}

// printOutcome prints the final search statistics
func printOutcome(outcome *mask.SearchOutcome) {
	run := outcome.Run

	fmt.Println()
	fmt.Println("📊 Search Results")
	fmt.Println("=================")
	fmt.Printf("Run ID: %s\n", run.ID)
	fmt.Printf("Mode: %s (%s)\n", run.Mode, run.Algorithm)
	fmt.Printf("Mask: %s\n", run.Mask)
	fmt.Printf("Space: %s candidates\n", run.Total.String())
	fmt.Printf("Tested: %d\n", outcome.Tested)
	fmt.Printf("Elapsed: %v\n", outcome.Elapsed)
	if secs := outcome.Elapsed.Seconds(); secs > 0 {
		fmt.Printf("Rate: %.0f hashes/sec\n", float64(outcome.Tested)/secs)
	}
	fmt.Printf("Stopped: %s\n", outcome.Reason)
	fmt.Println()

	if !outcome.Complete() {
		pterm.Warning.Printf("Search ended early (%s); results cover the %d candidates tested\n", outcome.Reason, outcome.Tested)
	}

	switch {
	case !run.SetMode && outcome.Found:
		pterm.Success.Printf("Found: %s\n", outcome.Candidate)
	case !run.SetMode:
		pterm.Info.Println("No candidate matched the digest")
	default:
		pterm.Info.Printf("Matched %d of %d digests\n", outcome.Matches, run.TargetSize)
		for _, candidate := range outcome.Matched {
			pterm.Success.Println(candidate)
		}
	}
}
