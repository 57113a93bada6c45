/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter interface and implementations for search telemetry. Reporters are
notified when a search starts, after every tested candidate, on every match, and when
the search returns.
*/

package mask

import (
	"github.com/sirupsen/logrus"
)

// Reporter defines the interface for search event hooks.
// Hooks run synchronously on the searching goroutine and should return quickly.
type Reporter interface {
	// OnSearchStarted is called once the mask has been resolved.
	OnSearchStarted(run *SearchRun)
	// OnCandidateTested is called after each candidate digest is compared.
	OnCandidateTested(run *SearchRun, candidate string)
	// OnMatch is called for every new match.
	OnMatch(run *SearchRun, candidate string)
	// OnSearchFinished is called with the final outcome.
	OnSearchFinished(run *SearchRun, outcome *SearchOutcome)
}

// LoggerReporter logs search events with logrus. Tested candidates are not logged.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnSearchStarted logs the run parameters.
func (r *LoggerReporter) OnSearchStarted(run *SearchRun) {
	r.logger.WithFields(logrus.Fields{
		"run_id":    run.ID,
		"mode":      run.Mode,
		"mask":      run.Mask,
		"algorithm": run.Algorithm,
		"space":     run.Total.String(),
		"targets":   run.TargetSize,
	}).Info("Search started")
}

// OnCandidateTested does nothing.
func (r *LoggerReporter) OnCandidateTested(run *SearchRun, candidate string) {}

// OnMatch logs the matching candidate.
func (r *LoggerReporter) OnMatch(run *SearchRun, candidate string) {
	r.logger.WithFields(logrus.Fields{"run_id": run.ID, "candidate": candidate}).Warn("Digest matched")
}

// OnSearchFinished logs the outcome.
func (r *LoggerReporter) OnSearchFinished(run *SearchRun, outcome *SearchOutcome) {
	fields := logrus.Fields{
		"run_id":  run.ID,
		"reason":  outcome.Reason,
		"tested":  outcome.Tested,
		"matches": outcome.Matches,
		"elapsed": outcome.Elapsed,
	}
	if outcome.Complete() {
		r.logger.WithFields(fields).Info("Search finished")
	} else {
		r.logger.WithFields(fields).Warn("Search stopped early")
	}
}

// CountingReporter tallies events. Useful for tests and progress summaries.
type CountingReporter struct {
	Started  int
	Tested   int64
	Matches  []string
	Finished []*SearchOutcome
}

// OnSearchStarted counts a started run.
func (r *CountingReporter) OnSearchStarted(run *SearchRun) { r.Started++ }

// OnCandidateTested counts a tested candidate.
func (r *CountingReporter) OnCandidateTested(run *SearchRun, candidate string) { r.Tested++ }

// OnMatch records the match.
func (r *CountingReporter) OnMatch(run *SearchRun, candidate string) {
	r.Matches = append(r.Matches, candidate)
}

// OnSearchFinished records the outcome.
func (r *CountingReporter) OnSearchFinished(run *SearchRun, outcome *SearchOutcome) {
	r.Finished = append(r.Finished, outcome)
}
