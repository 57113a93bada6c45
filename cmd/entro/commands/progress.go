/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: progress.go
Description: Progress bar reporter for the crack command. Sizes the bar from the
candidate space and advances it on every tested candidate.
*/

package commands

import (
	"io"
	"time"

	"github.com/kleascm/entro/pkg/mask"
	"github.com/schollz/progressbar/v3"
)

// progressReporter drives a progress bar from search events
type progressReporter struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newProgressReporter(out io.Writer) *progressReporter {
	return &progressReporter{out: out}
}

// OnSearchStarted sizes the bar. Spaces beyond int64 or random runs get a spinner.
func (r *progressReporter) OnSearchStarted(run *mask.SearchRun) {
	total := int64(-1)
	if run.Mode == mask.ModeExhaustive && run.Total.IsInt64() {
		total = run.Total.Int64()
	}
	r.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(string(run.Mode)),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionThrottle(250*time.Millisecond),
		progressbar.OptionSetWidth(25),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() { io.WriteString(r.out, "\n") }),
	)
}

func (r *progressReporter) OnCandidateTested(run *mask.SearchRun, candidate string) {
	r.bar.Add(1)
}

func (r *progressReporter) OnMatch(run *mask.SearchRun, candidate string) {
	r.bar.Describe("match")
}

func (r *progressReporter) OnSearchFinished(run *mask.SearchRun, outcome *mask.SearchOutcome) {
	r.bar.Describe(string(outcome.Reason))
	r.bar.Finish()
}
