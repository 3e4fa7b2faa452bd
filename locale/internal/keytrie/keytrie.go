/*
   Copyright 2025 The Notix Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package keytrie implements a segment-aware prefix index for dot-separated
// localization keys. It backs the wildcard-fallback lookups of the locale
// catalog.
package keytrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys.
// Each node represents one segment; the wildcard "*" matches exactly one
// segment. The trie supports longest-prefix-match (LPM) with segment
// boundaries, so a more specific pattern wins over a shorter one.
type Trie struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie
	// hasText marks that this node carries a catalog string for the prefix
	// ending here.
	hasText bool
	text    string
	// pattern is the canonical dotted pattern (with '*' if a wildcard was
	// used) for this node, set only when hasText=true. It lets callers
	// report which rule matched without building strings during lookup.
	pattern string
}

var (
	// ErrInvalidPattern is returned when inserting a pattern that is empty,
	// has empty segments, contains invalid characters, or consists only of
	// wildcards.
	ErrInvalidPattern = errors.New("keytrie: invalid pattern")
)

// New creates an empty trie ready for inserts.
func New() *Trie {
	return &Trie{children: make(map[string]*Trie)}
}

// Insert adds a dot-separated pattern to the trie and associates it with text.
//
// Examples:
//
//	"failure.title"
//	"failure.title.not_found"
//	"failure.*.default"
//
// The wildcard "*" matches exactly one segment.
// A pattern made only of "*" segments is rejected, because it is too generic.
// Returns ErrInvalidPattern on malformed input.
func (t *Trie) Insert(pattern, text string) error {
	if t == nil {
		return ErrInvalidPattern
	}
	segs, ok := splitAndValidate(pattern, true /* allowWildcard */)
	if !ok || len(segs) == 0 {
		return ErrInvalidPattern
	}

	// Require at least one non-wildcard segment to avoid catching everything.
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPattern
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasText = true
	cur.text = text
	if cur.pattern == "" {
		// build pattern once; cost is at build time, not on the lookup path
		cur.pattern = pattern
	}
	return nil
}

// Match finds the best (deepest) pattern match for a full key string.
// The key is treated as a dot-separated sequence of segments.
// Both exact segment matches and "*" wildcard branches are explored.
// It returns (text, true) on success.
// If the key is invalid or nothing matches, it returns ("", false).
func (t *Trie) Match(key string) (string, bool) {
	text, ok, _ := t.MatchWithPattern(key)
	return text, ok
}

// MatchWithPattern returns the matched text plus the stored pattern.
// The traversal avoids heap allocations: segments are substrings of key and
// the pattern string was prebuilt at insert time.
func (t *Trie) MatchWithPattern(key string) (string, bool, string) {
	if t == nil {
		return "", false, ""
	}
	bestDepth := -1
	var bestText string
	var bestPat string

	// dfs scans the next segment starting at byte offset 'off', with 'depth'
	// segments already consumed.
	var dfs func(n *Trie, off, depth int)
	dfs = func(n *Trie, off, depth int) {
		if n.hasText && depth > bestDepth {
			bestDepth = depth
			bestText = n.text
			bestPat = n.pattern
		}
		if off >= len(key) {
			return
		}

		// parse next segment [off:next), validating [a-z][a-z0-9_]*
		i := off
		c := key[i]
		if c < 'a' || c > 'z' {
			return // invalid segment => stop this path
		}
		i++
		for i < len(key) {
			c = key[i]
			if c == '.' {
				break
			}
			if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
				return // invalid char => stop
			}
			i++
		}
		seg := key[off:i] // substring; no heap alloc
		nextOff := i
		if nextOff < len(key) && key[nextOff] == '.' {
			nextOff++
		}

		// exact branch
		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		// wildcard branch
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return "", false, ""
	}
	return bestText, true, bestPat
}

// splitAndValidate splits a dot-separated string into segments and validates
// each segment according to validSegment(). When allowWildcard=true,
// a segment that is exactly "*" is accepted.
// Returns (segments, true) on success, or (nil, false) on invalid input.
func splitAndValidate(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - when allowWildcard=true, the segment "*" is allowed;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
//
// These rules keep catalog patterns simple, predictable and easy to normalize.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	// [a-z][a-z0-9_]*
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
