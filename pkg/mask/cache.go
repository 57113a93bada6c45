/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cache.go
Description: Per-source category cache. Holds the resolved candidate list of every token
seen so far; entries stay verbatim until Clear is called, which the engine wires to the
source's invalidation hook.
*/

package mask

import "sort"

// CategoryCache maps tokens to resolved candidate lists.
// It is single-writer and is not safe for concurrent use.
type CategoryCache struct {
	entries map[string][]string
	clears  int
}

// NewCategoryCache creates an empty cache
func NewCategoryCache() *CategoryCache {
	return &CategoryCache{entries: make(map[string][]string)}
}

// Get returns the cached list for token
func (c *CategoryCache) Get(token string) ([]string, bool) {
	members, ok := c.entries[token]
	return members, ok
}

// Put stores the list for token
func (c *CategoryCache) Put(token string, members []string) {
	c.entries[token] = members
}

// Clear drops every entry
func (c *CategoryCache) Clear() {
	c.entries = make(map[string][]string)
	c.clears++
}

// Len returns the number of cached tokens
func (c *CategoryCache) Len() int {
	return len(c.entries)
}

// Clears returns how many times the cache has been invalidated
func (c *CategoryCache) Clears() int {
	return c.clears
}

// Tokens lists the cached tokens, sorted
func (c *CategoryCache) Tokens() []string {
	tokens := make([]string, 0, len(c.entries))
	for t := range c.entries {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}
