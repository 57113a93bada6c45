/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: search.go
Description: Search algorithms over the candidate space of a mask. Exhaustive search walks
the cartesian product in odometer order (first token slowest, last token fastest) with
cooperative cancellation and a time budget; random search repeatedly samples fresh
combinations until a target digest matches.
*/

package mask

import (
	"context"
	"iter"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/kleascm/entro/pkg/digest"
	"github.com/sirupsen/logrus"
)

// Candidates returns an iterator over the full cartesian product of the mask's
// categories in odometer order. Token errors surface before iteration starts.
func (e *Engine) Candidates(m Mask) (iter.Seq[string], error) {
	lists, err := e.prepare(m)
	if err != nil {
		return nil, err
	}
	return odometer(lists), nil
}

func odometer(lists [][]string) iter.Seq[string] {
	return func(yield func(string) bool) {
		indices := make([]int, len(lists))
		var b strings.Builder
		for {
			b.Reset()
			for i, idx := range indices {
				b.WriteString(lists[i][idx])
			}
			if !yield(b.String()) {
				return
			}

			i := len(indices) - 1
			for ; i >= 0; i-- {
				indices[i]++
				if indices[i] < len(lists[i]) {
					break
				}
				indices[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// ExhaustiveSearch enumerates every candidate of m and compares its digest against target.
//
// With a single-digest target the search stops at the first match. With a set target it
// counts the distinct target digests reached, stopping early only once every digest has
// matched. A non-zero timeout, or cancellation of ctx, ends the search with the partial
// outcome; neither is reported as an error. Mask errors are returned before enumeration.
func (e *Engine) ExhaustiveSearch(ctx context.Context, target *digest.Target, m Mask, timeout time.Duration) (*SearchOutcome, error) {
	lists, err := e.prepare(m)
	if err != nil {
		return nil, err
	}
	if err := target.CheckHasher(e.hasher); err != nil {
		return nil, err
	}

	run := e.newRun(ModeExhaustive, m, target, lists)
	outcome := &SearchOutcome{Run: run, Reason: StopExhausted}
	matched := mapset.NewThreadUnsafeSet[string]()
	e.notifyStarted(run)

	for candidate := range odometer(lists) {
		if ctx.Err() != nil {
			outcome.Reason = StopCancelled
			break
		}
		if timeout > 0 && time.Since(run.StartedAt) > timeout {
			outcome.Reason = StopTimeout
			break
		}

		sum := e.hasher.Sum(candidate)
		outcome.Tested++
		e.notifyTested(run, candidate)

		if !target.Matches(sum) {
			continue
		}
		if !target.IsSet() {
			outcome.Found = true
			outcome.Candidate = candidate
			outcome.Matches = 1
			outcome.Matched = []string{candidate}
			outcome.Reason = StopFound
			e.notifyMatch(run, candidate)
			break
		}
		if matched.Add(sum) {
			outcome.Matched = append(outcome.Matched, candidate)
			e.notifyMatch(run, candidate)
			if matched.Cardinality() == target.Len() {
				break
			}
		}
	}

	outcome.Matches = max(outcome.Matches, matched.Cardinality())
	outcome.Found = outcome.Matches > 0
	outcome.Elapsed = time.Since(run.StartedAt)
	e.notifyFinished(run, outcome)
	return outcome, nil
}

// RandomSearch draws random candidates of m until one matches target or ctx is cancelled.
// It has no attempt or time budget: with a background context and an unreachable target
// it never returns. Use RandomSearchBounded when a budget is needed.
func (e *Engine) RandomSearch(ctx context.Context, target *digest.Target, m Mask) (*SearchOutcome, error) {
	return e.RandomSearchBounded(ctx, target, m, RandomSearchLimits{})
}

// RandomSearchBounded draws random candidates of m until one matches target, the limits
// are spent, or ctx is cancelled. Candidates are sampled with replacement, so the same
// candidate may be tested more than once.
func (e *Engine) RandomSearchBounded(ctx context.Context, target *digest.Target, m Mask, limits RandomSearchLimits) (*SearchOutcome, error) {
	lists, err := e.prepare(m)
	if err != nil {
		return nil, err
	}
	if err := target.CheckHasher(e.hasher); err != nil {
		return nil, err
	}

	run := e.newRun(ModeRandom, m, target, lists)
	outcome := &SearchOutcome{Run: run}
	e.notifyStarted(run)

	for {
		if ctx.Err() != nil {
			outcome.Reason = StopCancelled
			break
		}
		if limits.Timeout > 0 && time.Since(run.StartedAt) > limits.Timeout {
			outcome.Reason = StopTimeout
			break
		}
		if limits.MaxAttempts > 0 && outcome.Tested >= limits.MaxAttempts {
			outcome.Reason = StopAttempts
			break
		}

		candidate := e.draw(lists)
		outcome.Tested++
		e.notifyTested(run, candidate)

		if target.Matches(e.hasher.Sum(candidate)) {
			outcome.Found = true
			outcome.Candidate = candidate
			outcome.Matches = 1
			outcome.Matched = []string{candidate}
			outcome.Reason = StopFound
			e.notifyMatch(run, candidate)
			break
		}
	}

	outcome.Elapsed = time.Since(run.StartedAt)
	e.notifyFinished(run, outcome)
	return outcome, nil
}

func (e *Engine) newRun(mode SearchMode, m Mask, target *digest.Target, lists [][]string) *SearchRun {
	run := &SearchRun{
		ID:         uuid.New().String(),
		Mode:       mode,
		Mask:       m.String(),
		Algorithm:  e.hasher.Name(),
		Total:      product(lists),
		TargetSize: target.Len(),
		SetMode:    target.IsSet(),
		StartedAt:  time.Now(),
	}
	e.logger.WithFields(logrus.Fields{
		"run_id":    run.ID,
		"mode":      run.Mode,
		"mask":      run.Mask,
		"algorithm": run.Algorithm,
		"total":     run.Total.String(),
		"targets":   run.TargetSize,
	}).Debug("Search run created")
	return run
}

func (e *Engine) notifyStarted(run *SearchRun) {
	for _, r := range e.reporters {
		r.OnSearchStarted(run)
	}
}

func (e *Engine) notifyTested(run *SearchRun, candidate string) {
	for _, r := range e.reporters {
		r.OnCandidateTested(run, candidate)
	}
}

func (e *Engine) notifyMatch(run *SearchRun, candidate string) {
	for _, r := range e.reporters {
		r.OnMatch(run, candidate)
	}
}

func (e *Engine) notifyFinished(run *SearchRun, outcome *SearchOutcome) {
	for _, r := range e.reporters {
		r.OnSearchFinished(run, outcome)
	}
}
