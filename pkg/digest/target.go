/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: target.go
Description: Hash targets for search. A target is either a single digest (search stops at
the first match) or a membership set of digests (search counts every match). Includes the
hash-list loader used for set-mode search.
*/

package digest

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/kleascm/entro/pkg/interfaces"
)

// Target is the digest or digest set a search tries to match
type Target struct {
	single string
	set    mapset.Set[string]
}

// NewSingleTarget creates a target matching exactly one digest
func NewSingleTarget(digest string) (*Target, error) {
	d, err := normalize(digest)
	if err != nil {
		return nil, err
	}
	return &Target{single: d}, nil
}

// NewSetTarget creates a target matching any digest of the deduplicated set
func NewSetTarget(digests ...string) (*Target, error) {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, digest := range digests {
		d, err := normalize(digest)
		if err != nil {
			return nil, err
		}
		set.Add(d)
	}
	if set.Cardinality() == 0 {
		return nil, fmt.Errorf("hash set is empty")
	}
	return &Target{set: set}, nil
}

func normalize(digest string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(digest))
	if d == "" {
		return "", fmt.Errorf("digest is empty")
	}
	if _, err := hex.DecodeString(d); err != nil {
		return "", fmt.Errorf("digest %q is not hexadecimal: %w", digest, err)
	}
	return d, nil
}

// IsSet reports whether the target is a membership set
func (t *Target) IsSet() bool {
	return t.set != nil
}

// Digest returns the single digest, or "" for set targets
func (t *Target) Digest() string {
	return t.single
}

// Len returns the number of distinct digests in the target
func (t *Target) Len() int {
	if t.IsSet() {
		return t.set.Cardinality()
	}
	return 1
}

// Matches reports whether digest is part of the target
func (t *Target) Matches(digest string) bool {
	if t.IsSet() {
		return t.set.Contains(digest)
	}
	return digest == t.single
}

// Digests returns every digest of the target
func (t *Target) Digests() []string {
	if t.IsSet() {
		return t.set.ToSlice()
	}
	return []string{t.single}
}

// CheckHasher verifies every digest has the length the hasher produces
func (t *Target) CheckHasher(h Hasher) error {
	for _, d := range t.Digests() {
		if len(d) != h.HexLen() {
			return fmt.Errorf("digest %q has %d hex characters, %s produces %d", d, len(d), h.Name(), h.HexLen())
		}
	}
	return nil
}

// LoadHashList reads a set target from path. The file is either a JSON array of digest
// strings or plain text with one digest per line (blank lines ignored).
// Failures are returned as *interfaces.DictionaryLoadError.
func LoadHashList(path string) (*Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &interfaces.DictionaryLoadError{Path: path, Err: err}
	}
	defer f.Close()

	digests, err := DecodeHashList(f)
	if err != nil {
		return nil, &interfaces.DictionaryLoadError{Path: path, Err: err}
	}
	target, err := NewSetTarget(digests...)
	if err != nil {
		return nil, &interfaces.DictionaryLoadError{Path: path, Err: err}
	}
	return target, nil
}

// DecodeHashList parses a hash list in either accepted format
func DecodeHashList(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read hash list: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var digests []string
		if err := json.Unmarshal(trimmed, &digests); err != nil {
			return nil, fmt.Errorf("failed to decode hash list: %w", err)
		}
		return digests, nil
	}

	var digests []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		digests = append(digests, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan hash list: %w", err)
	}
	return digests, nil
}
