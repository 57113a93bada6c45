/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: search_test.go
Description: Tests for exhaustive and random search: enumeration order, single and set
targets, cancellation, time and attempt budgets, and reporter notifications.
*/

package mask_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kleascm/entro/pkg/charclass"
	"github.com/kleascm/entro/pkg/digest"
	"github.com/kleascm/entro/pkg/interfaces"
	"github.com/kleascm/entro/pkg/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unreachableSHA1 = "0000000000000000000000000000000000000000"

func sha1Of(t *testing.T, s string) string {
	t.Helper()
	h, err := digest.Lookup("sha1")
	require.NoError(t, err)
	return h.Sum(s)
}

func singleTarget(t *testing.T, candidate string) *digest.Target {
	t.Helper()
	target, err := digest.NewSingleTarget(sha1Of(t, candidate))
	require.NoError(t, err)
	return target
}

// cancelAfter cancels its context once n candidates have been tested
type cancelAfter struct {
	mask.CountingReporter
	n      int64
	cancel context.CancelFunc
}

func (r *cancelAfter) OnCandidateTested(run *mask.SearchRun, candidate string) {
	r.CountingReporter.OnCandidateTested(run, candidate)
	if r.Tested >= r.n {
		r.cancel()
	}
}

// slowReporter stalls every tested candidate
type slowReporter struct {
	mask.CountingReporter
	delay time.Duration
}

func (r *slowReporter) OnCandidateTested(run *mask.SearchRun, candidate string) {
	r.CountingReporter.OnCandidateTested(run, candidate)
	time.Sleep(r.delay)
}

// TestCandidatesOrder checks odometer order: first token slowest, last token fastest
func TestCandidatesOrder(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource())

	seq, err := engine.Candidates(mask.Mask{"digit", "digit"})
	require.NoError(t, err)

	var all []string
	for c := range seq {
		all = append(all, c)
	}
	require.Len(t, all, 100)
	assert.Equal(t, []string{"00", "01", "02"}, all[:3])
	assert.Equal(t, "10", all[10])
	assert.Equal(t, "99", all[99])

	// Early break stops the iterator
	n := 0
	for range seq {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)

	_, err = engine.Candidates(mask.Mask{"digit", "nope"})
	assert.Error(t, err)
}

// TestExhaustiveSearchSingle checks the first match is returned and the search stops
func TestExhaustiveSearchSingle(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource())

	outcome, err := engine.ExhaustiveSearch(context.Background(), singleTarget(t, "42"), mask.Mask{"digit", "digit"}, 0)
	require.NoError(t, err)
	assert.True(t, outcome.Found)
	assert.Equal(t, "42", outcome.Candidate)
	assert.Equal(t, mask.StopFound, outcome.Reason)
	assert.Equal(t, int64(43), outcome.Tested)
	assert.Equal(t, 1, outcome.Matches)
	assert.True(t, outcome.Complete())
	assert.NotEmpty(t, outcome.Run.ID)
	assert.Equal(t, "100", outcome.Run.Total.String())
}

// TestExhaustiveSearchNotFound checks an unreachable single target exhausts the space
func TestExhaustiveSearchNotFound(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource())

	target, err := digest.NewSingleTarget(unreachableSHA1)
	require.NoError(t, err)

	outcome, err := engine.ExhaustiveSearch(context.Background(), target, mask.Mask{"lower", "digit"}, 0)
	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.Equal(t, mask.StopExhausted, outcome.Reason)
	assert.Equal(t, int64(260), outcome.Tested)
	assert.Empty(t, outcome.Candidate)
}

// TestExhaustiveSearchRoundTrip checks a generated candidate is found from its digest
func TestExhaustiveSearchRoundTrip(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource(), mask.WithSeed(7))
	m := mask.Mask{"upper", "digit", "lower"}

	for i := 0; i < 5; i++ {
		c, err := engine.Generate(m)
		require.NoError(t, err)

		outcome, err := engine.ExhaustiveSearch(context.Background(), singleTarget(t, c), m, 0)
		require.NoError(t, err)
		assert.True(t, outcome.Found)
		assert.Equal(t, c, outcome.Candidate)
	}
}

// TestExhaustiveSearchSet checks set mode counts reachable target members only
func TestExhaustiveSearchSet(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource())

	target, err := digest.NewSetTarget(sha1Of(t, "07"), sha1Of(t, "55"), unreachableSHA1)
	require.NoError(t, err)

	outcome, err := engine.ExhaustiveSearch(context.Background(), target, mask.Mask{"digit", "digit"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Matches)
	assert.True(t, outcome.Found)
	assert.Equal(t, []string{"07", "55"}, outcome.Matched)
	assert.Equal(t, int64(100), outcome.Tested)
	assert.Equal(t, mask.StopExhausted, outcome.Reason)
	assert.LessOrEqual(t, int64(outcome.Matches), outcome.Run.Total.Int64())
}

// TestExhaustiveSearchSetAllFound checks the search ends once every member matched
func TestExhaustiveSearchSetAllFound(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource())

	target, err := digest.NewSetTarget(sha1Of(t, "00"), sha1Of(t, "01"))
	require.NoError(t, err)

	outcome, err := engine.ExhaustiveSearch(context.Background(), target, mask.Mask{"digit", "digit"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Matches)
	assert.Equal(t, int64(2), outcome.Tested)
	assert.Equal(t, mask.StopExhausted, outcome.Reason)
}

// TestExhaustiveSearchCancelled checks cancellation returns the partial outcome
func TestExhaustiveSearchCancelled(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	target, err := digest.NewSetTarget(sha1Of(t, "00"))
	require.NoError(t, err)

	outcome, err := engine.ExhaustiveSearch(ctx, target, mask.Mask{"digit", "digit"}, 0)
	require.NoError(t, err)
	assert.Equal(t, mask.StopCancelled, outcome.Reason)
	assert.Equal(t, int64(0), outcome.Tested)
	assert.Equal(t, 0, outcome.Matches)
	assert.False(t, outcome.Complete())
}

// TestExhaustiveSearchMonotonic checks partial set counts never decrease with a larger budget
func TestExhaustiveSearchMonotonic(t *testing.T) {
	var digests []string
	for _, c := range []string{"03", "17", "18", "42", "77", "98"} {
		digests = append(digests, sha1Of(t, c))
	}
	target, err := digest.NewSetTarget(digests...)
	require.NoError(t, err)

	previous := 0
	for _, budget := range []int64{1, 4, 18, 19, 50, 90, 98} {
		ctx, cancel := context.WithCancel(context.Background())
		reporter := &cancelAfter{n: budget, cancel: cancel}
		engine := mask.NewEngine(charclass.NewSource(), mask.WithReporter(reporter))

		outcome, err := engine.ExhaustiveSearch(ctx, target, mask.Mask{"digit", "digit"}, 0)
		cancel()
		require.NoError(t, err)
		assert.Equal(t, mask.StopCancelled, outcome.Reason)
		assert.Equal(t, budget, outcome.Tested)
		assert.GreaterOrEqual(t, outcome.Matches, previous)
		previous = outcome.Matches
	}
	assert.Equal(t, 5, previous)
}

// TestExhaustiveSearchTimeout checks the time budget stops enumeration without an error
func TestExhaustiveSearchTimeout(t *testing.T) {
	reporter := &slowReporter{delay: time.Millisecond}
	engine := mask.NewEngine(charclass.NewSource(), mask.WithReporter(reporter))

	target, err := digest.NewSetTarget(unreachableSHA1)
	require.NoError(t, err)

	outcome, err := engine.ExhaustiveSearch(context.Background(), target, mask.Mask{"lower", "lower", "lower"}, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, mask.StopTimeout, outcome.Reason)
	assert.Greater(t, outcome.Tested, int64(0))
	assert.Less(t, outcome.Tested, int64(26*26*26))
	assert.Len(t, reporter.Finished, 1)
}

// TestSearchFailsFast checks mask errors surface before any enumeration
func TestSearchFailsFast(t *testing.T) {
	reporter := &mask.CountingReporter{}
	engine := mask.NewEngine(sampleLexicalSource(), mask.WithReporter(reporter))
	target := singleTarget(t, "catrun")

	_, err := engine.ExhaustiveSearch(context.Background(), target, mask.Mask{"noun", "adverb"}, 0)
	var empty *interfaces.EmptyCategoryError
	assert.True(t, errors.As(err, &empty))

	_, err = engine.RandomSearch(context.Background(), target, mask.Mask{"noun", "lower"})
	var unknown *interfaces.UnknownTokenError
	assert.True(t, errors.As(err, &unknown))

	assert.Equal(t, 0, reporter.Started)
}

// TestSearchRejectsMismatchedDigest checks digests of the wrong length are rejected
func TestSearchRejectsMismatchedDigest(t *testing.T) {
	sha256, err := digest.Lookup("sha256")
	require.NoError(t, err)
	engine := mask.NewEngine(charclass.NewSource(), mask.WithHasher(sha256))

	_, err = engine.ExhaustiveSearch(context.Background(), singleTarget(t, "1"), mask.Mask{"digit"}, 0)
	assert.Error(t, err)
}

// TestExhaustiveSearchLexical checks search over the sample dictionary
func TestExhaustiveSearchLexical(t *testing.T) {
	reporter := &mask.CountingReporter{}
	engine := mask.NewEngine(sampleLexicalSource(), mask.WithReporter(reporter))

	outcome, err := engine.ExhaustiveSearch(context.Background(), singleTarget(t, "runrun"), mask.Mask{"noun", "verb"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "runrun", outcome.Candidate)
	assert.Equal(t, int64(2), outcome.Tested)

	assert.Equal(t, 1, reporter.Started)
	assert.Equal(t, int64(2), reporter.Tested)
	assert.Equal(t, []string{"runrun"}, reporter.Matches)
	require.Len(t, reporter.Finished, 1)
	assert.Same(t, outcome, reporter.Finished[0])
}

// TestRandomSearch checks random search finds a reachable digest
func TestRandomSearch(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource(), mask.WithSeed(1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	outcome, err := engine.RandomSearch(ctx, singleTarget(t, "7"), mask.Mask{"digit"})
	require.NoError(t, err)
	assert.True(t, outcome.Found)
	assert.Equal(t, "7", outcome.Candidate)
	assert.Equal(t, mask.StopFound, outcome.Reason)
	assert.Equal(t, mask.ModeRandom, outcome.Run.Mode)
}

// TestRandomSearchBounded checks the attempt and time budgets
func TestRandomSearchBounded(t *testing.T) {
	engine := mask.NewEngine(charclass.NewSource(), mask.WithSeed(1))
	target, err := digest.NewSingleTarget(unreachableSHA1)
	require.NoError(t, err)

	outcome, err := engine.RandomSearchBounded(context.Background(), target, mask.Mask{"digit"}, mask.RandomSearchLimits{MaxAttempts: 25})
	require.NoError(t, err)
	assert.False(t, outcome.Found)
	assert.Equal(t, mask.StopAttempts, outcome.Reason)
	assert.Equal(t, int64(25), outcome.Tested)

	outcome, err = engine.RandomSearchBounded(context.Background(), target, mask.Mask{"digit"}, mask.RandomSearchLimits{Timeout: 10 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, mask.StopTimeout, outcome.Reason)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcome, err = engine.RandomSearch(ctx, target, mask.Mask{"digit"})
	require.NoError(t, err)
	assert.Equal(t, mask.StopCancelled, outcome.Reason)
}
