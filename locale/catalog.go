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

package locale

import (
	"fmt"

	"notix.dev/failview/locale/internal/keytrie"
)

// Well-known keys used by the library itself. Applications supplying their
// own Localizer must at minimum answer these two; everything else degrades
// gracefully.
const (
	// KeyDefaultMessage addresses the message shown when a failure value
	// carries no usable message of its own.
	KeyDefaultMessage Key = "failure.message.default"

	// KeyDefaultTitle addresses the title shown for statuses without a
	// curated title of their own.
	KeyDefaultTitle Key = "failure.title.default"
)

// TitleKey builds the localization key for a status display name, e.g.
// TitleKey("not_found") == "failure.title.not_found".
//
// The name is normalized first, so callers may pass raw status names
// without worrying about case or dashes. An unusable name degrades to
// KeyDefaultTitle rather than producing an invalid key.
func TitleKey(name string) Key {
	k, err := ParseKey("failure.title." + Normalize(name))
	if err != nil {
		return KeyDefaultTitle
	}
	return k
}

// Localizer supplies human-readable strings for localization keys.
//
// Implementations must be safe for concurrent use and must never fail:
// a key with no translation yields "". The resolver treats the Localizer
// as a pure, read-only dependency.
type Localizer interface {
	// Localize returns the string for the given key, or "" when the key
	// has no translation.
	Localize(k Key) string
}

// Func adapts an ordinary function to the Localizer interface.
type Func func(k Key) string

// Localize implements Localizer.
func (f Func) Localize(k Key) string { return f(k) }

// Catalog is an immutable Localizer backed by an exact-entry table plus
// wildcard-prefix fallback patterns.
//
// Lookup order:
//
//  1. exact entry for the key;
//  2. longest-prefix pattern match ("*" matches exactly one segment);
//  3. "" (no translation).
//
// A Catalog is a snapshot: all inputs are copied during New, so later
// mutations to caller-owned data cannot affect it. It is safe for
// concurrent use.
type Catalog struct {
	entries  map[Key]string
	patterns *keytrie.Trie
}

var _ Localizer = (*Catalog)(nil)

// catalogBuilder accumulates options before the catalog is frozen.
type catalogBuilder struct {
	entries  map[Key]string
	patterns []patternRule
}

type patternRule struct {
	// pattern is the raw, dot-separated key pattern (may contain "*").
	// It is validated when the trie is built.
	pattern string
	text    string
}

// CatalogOption configures a Catalog at build time.
type CatalogOption func(*catalogBuilder)

// WithEntry registers the exact translation for a key.
// Later options win on duplicate keys.
func WithEntry(k Key, text string) CatalogOption {
	return func(b *catalogBuilder) { b.entries[k] = text }
}

// WithPattern registers a wildcard-prefix fallback, e.g.
//
//	WithPattern("failure.title", "Error")
//	WithPattern("failure.*.default", "Something went wrong")
//
// The pattern matches any key it is a segment-prefix of; "*" matches
// exactly one segment. A more specific pattern wins.
func WithPattern(pattern, text string) CatalogOption {
	return func(b *catalogBuilder) {
		b.patterns = append(b.patterns, patternRule{pattern, text})
	}
}

// NewCatalog constructs an immutable Catalog snapshot from the provided
// options.
//
// Errors indicate an invalid entry key or pattern; a Catalog is meant to be
// built once at startup, so construction is strict while lookups are total.
func NewCatalog(opts ...CatalogOption) (*Catalog, error) {
	b := &catalogBuilder{entries: make(map[Key]string)}
	for _, opt := range opts {
		opt(b)
	}

	entries := make(map[Key]string, len(b.entries))
	for k, v := range b.entries {
		if err := Validate(k); err != nil {
			return nil, fmt.Errorf("locale: invalid catalog key %q: %w", k, err)
		}
		entries[k] = v
	}

	var trie *keytrie.Trie
	if len(b.patterns) > 0 {
		trie = keytrie.New()
		for _, r := range b.patterns {
			p := Normalize(r.pattern)
			if err := trie.Insert(p, r.text); err != nil {
				return nil, fmt.Errorf("locale: invalid catalog pattern %q: %w", r.pattern, err)
			}
		}
	}

	return &Catalog{entries: entries, patterns: trie}, nil
}

// MustCatalog is the panic-on-error variant of NewCatalog, for package-level
// catalogs declared in var blocks.
func MustCatalog(opts ...CatalogOption) *Catalog {
	c, err := NewCatalog(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Localize implements Localizer. A miss on both tiers yields "".
func (c *Catalog) Localize(k Key) string {
	if c == nil {
		return ""
	}
	if v, ok := c.entries[k]; ok {
		return v
	}
	if c.patterns != nil {
		if v, ok := c.patterns.Match(string(k)); ok {
			return v
		}
	}
	return ""
}

// Lookup is like Localize but also reports whether any entry or pattern
// matched, and which pattern it was. Useful for diagnostics and tests.
func (c *Catalog) Lookup(k Key) (text string, ok bool, pattern string) {
	if c == nil {
		return "", false, ""
	}
	if v, exact := c.entries[k]; exact {
		return v, true, ""
	}
	if c.patterns != nil {
		if v, matched, pat := c.patterns.MatchWithPattern(string(k)); matched {
			return v, true, pat
		}
	}
	return "", false, ""
}
