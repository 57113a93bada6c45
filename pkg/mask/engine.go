/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Mask engine implementation. Parses masks, resolves tokens through a
category source with a cache that is invalidated whenever the source mutates, and
computes possibility counts, bits of entropy and crack-time estimates. Random
passphrase generation draws one independent candidate per token.
*/

package mask

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/big"
	"math/rand/v2"
	"strings"

	"github.com/kleascm/entro/pkg/digest"
	"github.com/kleascm/entro/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Engine runs entropy, generation and search algorithms over one category source
type Engine struct {
	source    interfaces.CategorySource
	cache     *CategoryCache
	hasher    digest.Hasher
	hashRate  float64
	rng       *rand.Rand
	logger    *logrus.Logger
	reporters []Reporter
}

// Option configures an Engine
type Option func(*Engine)

// WithHasher sets the digest used by searches
func WithHasher(h digest.Hasher) Option {
	return func(e *Engine) { e.hasher = h }
}

// WithHashRate sets the hashes per second used for crack-time estimates
func WithHashRate(rate float64) Option {
	return func(e *Engine) { e.hashRate = rate }
}

// WithSeed makes generation and random search reproducible
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		var s [32]byte
		binary.LittleEndian.PutUint64(s[:8], seed)
		e.rng = rand.New(rand.NewChaCha8(s))
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *logrus.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithReporter registers a search reporter
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporters = append(e.reporters, r) }
}

// NewEngine creates an engine bound to source. If the source implements
// interfaces.Invalidator the engine's cache is cleared on every source mutation.
func NewEngine(source interfaces.CategorySource, opts ...Option) *Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e := &Engine{
		source:   source,
		cache:    NewCategoryCache(),
		hasher:   digest.Default(),
		hashRate: interfaces.DefaultHashRate,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		var s [32]byte
		if _, err := crand.Read(s[:]); err != nil {
			panic(fmt.Sprintf("failed to seed generator: %v", err))
		}
		e.rng = rand.New(rand.NewChaCha8(s))
	}

	if inv, ok := source.(interfaces.Invalidator); ok {
		inv.OnInvalidate(e.InvalidateCache)
	}
	return e
}

// Source returns the engine's category source
func (e *Engine) Source() interfaces.CategorySource {
	return e.source
}

// Cache returns the engine's category cache
func (e *Engine) Cache() *CategoryCache {
	return e.cache
}

// Hasher returns the digest used by searches
func (e *Engine) Hasher() digest.Hasher {
	return e.hasher
}

// AddReporter registers a reporter for search events
func (e *Engine) AddReporter(r Reporter) {
	e.reporters = append(e.reporters, r)
}

// InvalidateCache drops every cached category
func (e *Engine) InvalidateCache() {
	e.logger.WithField("tokens", e.cache.Len()).Debug("Category cache invalidated")
	e.cache.Clear()
}

// Parse splits a mask string on whitespace
func Parse(maskString string) (Mask, error) {
	tokens := strings.Fields(maskString)
	if len(tokens) == 0 {
		return nil, interfaces.ErrEmptyMask
	}
	return Mask(tokens), nil
}

// Resolve returns a copy of the candidate list of token, consulting the cache first.
// Source errors are returned unwrapped and never cached.
func (e *Engine) Resolve(token string) ([]string, error) {
	members, err := e.resolve(token)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), members...), nil
}

// resolve returns the cached list itself; callers must not modify it
func (e *Engine) resolve(token string) ([]string, error) {
	if members, ok := e.cache.Get(token); ok {
		return members, nil
	}
	members, err := e.source.CategoryMembers(token)
	if err != nil {
		return nil, err
	}
	e.cache.Put(token, members)
	e.logger.WithFields(logrus.Fields{
		"token":      token,
		"candidates": len(members),
	}).Debug("Category resolved")
	return members, nil
}

// prepare resolves every token of m, failing before any enumeration if a token is
// unknown or resolves to no candidates.
func (e *Engine) prepare(m Mask) ([][]string, error) {
	if len(m) == 0 {
		return nil, interfaces.ErrEmptyMask
	}
	lists := make([][]string, len(m))
	for i, token := range m {
		members, err := e.resolve(token)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			return nil, &interfaces.EmptyCategoryError{Token: token}
		}
		lists[i] = members
	}
	return lists, nil
}

// PossibilityCount returns the size of the cartesian product of the mask's categories
func (e *Engine) PossibilityCount(m Mask) (*big.Int, error) {
	lists, err := e.prepare(m)
	if err != nil {
		return nil, err
	}
	return product(lists), nil
}

func product(lists [][]string) *big.Int {
	total := big.NewInt(1)
	for _, l := range lists {
		total.Mul(total, big.NewInt(int64(len(l))))
	}
	return total
}

// BitsOfEntropy returns log2(possibilities). Non-positive input is an error.
func BitsOfEntropy(possibilities *big.Int) (float64, error) {
	if possibilities == nil || possibilities.Sign() <= 0 {
		return 0, fmt.Errorf("entropy is undefined for %v possibilities", possibilities)
	}
	// possibilities = mant × 2^exp with 0.5 <= mant < 1
	mant := new(big.Float)
	exp := new(big.Float).SetInt(possibilities).MantExp(mant)
	m, _ := mant.Float64()
	return float64(exp) + math.Log2(m), nil
}

// CrackTimeEstimate returns the time to exhaust possibilities at hashRate hashes/sec
func CrackTimeEstimate(possibilities *big.Int, hashRate float64) (CrackTime, error) {
	if math.IsNaN(hashRate) || math.IsInf(hashRate, 0) || hashRate <= 0 {
		return CrackTime{}, fmt.Errorf("hash rate must be a positive finite number, got %v", hashRate)
	}
	if possibilities == nil || possibilities.Sign() < 0 {
		return CrackTime{}, fmt.Errorf("possibilities must not be negative")
	}
	seconds := new(big.Float).Quo(new(big.Float).SetInt(possibilities), big.NewFloat(hashRate))
	hours, _ := new(big.Float).Quo(seconds, big.NewFloat(3600)).Float64()
	return CrackTime{Hours: hours, Days: hours / 24}, nil
}

// Estimate computes the full security summary for a mask string
func (e *Engine) Estimate(maskString string) (*Estimate, error) {
	m, err := Parse(maskString)
	if err != nil {
		return nil, err
	}
	lists, err := e.prepare(m)
	if err != nil {
		return nil, err
	}

	possibilities := product(lists)
	bits, err := BitsOfEntropy(possibilities)
	if err != nil {
		return nil, err
	}
	crack, err := CrackTimeEstimate(possibilities, e.hashRate)
	if err != nil {
		return nil, err
	}

	tokens := make([]TokenSize, len(m))
	for i, token := range m {
		tokens[i] = TokenSize{Token: token, Candidates: len(lists[i])}
	}

	est := &Estimate{
		Mask:          m.String(),
		Source:        e.source.Name(),
		Tokens:        tokens,
		Possibilities: possibilities,
		Bits:          bits,
		HashRate:      e.hashRate,
		CrackTime:     crack,
	}
	e.logger.WithFields(logrus.Fields{
		"mask":          est.Mask,
		"possibilities": possibilities.String(),
		"bits":          fmt.Sprintf("%.4f", bits),
		"hours":         crack.Hours,
	}).Debug("Entropy estimated")
	return est, nil
}

// Generate draws one uniformly random candidate per token and concatenates them in order
func (e *Engine) Generate(m Mask) (string, error) {
	lists, err := e.prepare(m)
	if err != nil {
		return "", err
	}
	return e.draw(lists), nil
}

// GenerateString parses maskString and generates a passphrase from it
func (e *Engine) GenerateString(maskString string) (string, error) {
	m, err := Parse(maskString)
	if err != nil {
		return "", err
	}
	return e.Generate(m)
}

func (e *Engine) draw(lists [][]string) string {
	var b strings.Builder
	for _, l := range lists {
		b.WriteString(l[e.rng.IntN(len(l))])
	}
	return b.String()
}
