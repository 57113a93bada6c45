/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: digest.go
Description: Pluggable one-way digest functions. Each hasher maps a candidate string to a
fixed-length lowercase hexadecimal digest; hashers are looked up by name so the search
algorithm can be selected from configuration.
*/

package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher computes the hex digest of a candidate
type Hasher interface {
	// Name returns the registry name of the algorithm
	Name() string
	// Sum returns the lowercase hex digest of candidate
	Sum(candidate string) string
	// HexLen returns the length of every digest Sum produces
	HexLen() int
}

type byteHasher struct {
	name string
	size int
	sum  func([]byte) []byte
}

func (h *byteHasher) Name() string { return h.name }

func (h *byteHasher) Sum(candidate string) string {
	return hex.EncodeToString(h.sum([]byte(candidate)))
}

func (h *byteHasher) HexLen() int { return h.size * 2 }

type xxh64Hasher struct{}

func (xxh64Hasher) Name() string { return "xxh64" }

func (xxh64Hasher) Sum(candidate string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(candidate))
}

func (xxh64Hasher) HexLen() int { return 16 }

var registry = map[string]Hasher{
	"md5": &byteHasher{name: "md5", size: md5.Size, sum: func(b []byte) []byte {
		s := md5.Sum(b)
		return s[:]
	}},
	"sha1": &byteHasher{name: "sha1", size: sha1.Size, sum: func(b []byte) []byte {
		s := sha1.Sum(b)
		return s[:]
	}},
	"sha256": &byteHasher{name: "sha256", size: sha256.Size, sum: func(b []byte) []byte {
		s := sha256.Sum256(b)
		return s[:]
	}},
	"sha512": &byteHasher{name: "sha512", size: sha512.Size, sum: func(b []byte) []byte {
		s := sha512.Sum512(b)
		return s[:]
	}},
	"sha3-256": &byteHasher{name: "sha3-256", size: 32, sum: func(b []byte) []byte {
		s := sha3.Sum256(b)
		return s[:]
	}},
	"sha3-512": &byteHasher{name: "sha3-512", size: 64, sum: func(b []byte) []byte {
		s := sha3.Sum512(b)
		return s[:]
	}},
	"blake2b-256": &byteHasher{name: "blake2b-256", size: blake2b.Size256, sum: func(b []byte) []byte {
		s := blake2b.Sum256(b)
		return s[:]
	}},
	"blake2b-512": &byteHasher{name: "blake2b-512", size: blake2b.Size, sum: func(b []byte) []byte {
		s := blake2b.Sum512(b)
		return s[:]
	}},
	"xxh64": xxh64Hasher{},
}

// Lookup returns the hasher registered under name (case-insensitive)
func Lookup(name string) (Hasher, error) {
	h, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported hash algorithm: %s (available: %s)", name, strings.Join(Names(), ", "))
	}
	return h, nil
}

// Names lists the registered algorithm names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the reference hasher (SHA-1)
func Default() Hasher {
	return registry["sha1"]
}
