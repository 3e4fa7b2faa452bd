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

package titles

import (
	"fmt"
	"strings"

	"notix.dev/failview/locale"
	"notix.dev/failview/status"
)

// New constructs an immutable Resolver snapshot.
//
// The resulting Resolver is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared references
// to user-provided maps remain.
//
// Build process overview:
//
//  1. Default the Localizer to the built-in English catalog when nil.
//  2. Apply user-provided options (overrides, custom keys).
//  3. Validate all statuses and keys touched by options.
//  4. Freeze everything into immutable copies (fresh allocations).
//
// Errors returned from this function indicate an invalid status or
// localization key in the options.
func New(loc locale.Localizer, opts ...Option) (*Resolver, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	for s := range b.overrides {
		if err := status.Validate(s); err != nil {
			return nil, fmt.Errorf("titles: invalid status %q in override: %w", s, err)
		}
	}
	for s, k := range b.keys {
		if err := status.Validate(s); err != nil {
			return nil, fmt.Errorf("titles: invalid status %q in key rule: %w", s, err)
		}
		if err := locale.Validate(k); err != nil {
			return nil, fmt.Errorf("titles: invalid key %q for status %q: %w", k, s, err)
		}
	}

	if loc == nil {
		loc = locale.Default()
	}

	return &Resolver{
		loc:       loc,
		overrides: freezeOverrides(b.overrides),
		keys:      freezeKeys(b.keys),
	}, nil
}

// Resolver is an immutable title resolver that combines exact per-status
// overrides, per-status localization keys, and the built-in well-known
// registry. Lookups are O(1) and safe for concurrent use once constructed.
type Resolver struct {
	// loc supplies all localized strings. Never nil after New.
	loc locale.Localizer

	// overrides holds explicit display texts for specific statuses.
	// These take precedence over every localized tier.
	overrides map[status.Status]string

	// keys holds per-status localization keys registered by the caller,
	// consulted before the well-known name-derived key.
	keys map[status.Status]locale.Key
}

// Title resolves a display title for the given status.
//
// Resolution order (highest to lowest):
//  1. exact per-status override (explicitly registered);
//  2. localized per-status key (registered, or derived from the well-known
//     status name);
//  3. localized default title;
//  4. "" as last resort.
//
// Title never fails: an unknown status and a lookup miss both degrade to
// the next tier.
func (r *Resolver) Title(s status.Status) string {
	// 1. Fast path: exact override for this status.
	if v, ok := r.overrides[s]; ok {
		return v
	}

	// 2. Per-status localized key.
	if k, ok := r.statusKey(s); ok {
		if v := r.loc.Localize(k); v != "" {
			return v
		}
	}

	// 3. Default title.
	if v := r.loc.Localize(locale.KeyDefaultTitle); v != "" {
		return v
	}

	// 4. Ultimate last resort.
	return ""
}

// statusKey returns the localization key for a status, if any: a caller
// registered key wins over the well-known name-derived one.
func (r *Resolver) statusKey(s status.Status) (locale.Key, bool) {
	if k, ok := r.keys[s]; ok {
		return k, true
	}
	if name, ok := status.Name(s); ok {
		return locale.TitleKey(name), true
	}
	return "", false
}

// Explain produces a textual trace of how the resolver picked a title for
// a particular status.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, key, default, or fallback) and, for key matches, which
// localization key was used.
//
// Example output:
//
//	status="404"
//	title: source=key key="failure.title.not_found" -> "Not found"
//
// Notes:
//   - source ∈ {override | key | default | fallback}
func (r *Resolver) Explain(s status.Status) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%q\n", s)

	switch src, line := r.explainTitle(s); src {
	case "override", "key", "default", "fallback":
		_, _ = fmt.Fprintln(&b, line)
	default:
		// Defensive: unexpected source.
		_, _ = fmt.Fprintln(&b, "title: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainTitle returns the origin ("override", "key", "default", "fallback")
// and a formatted line describing how the title was chosen.
func (r *Resolver) explainTitle(s status.Status) (source, line string) {
	// 1) exact per-status override
	if v, ok := r.overrides[s]; ok {
		return "override", fmt.Sprintf("title: source=override -> %q", v)
	}

	// 2) per-status localized key
	if k, ok := r.statusKey(s); ok {
		if v := r.loc.Localize(k); v != "" {
			return "key", fmt.Sprintf("title: source=key key=%q -> %q", k, v)
		}
	}

	// 3) default title
	if v := r.loc.Localize(locale.KeyDefaultTitle); v != "" {
		return "default", fmt.Sprintf("title: source=default -> %q", v)
	}

	// 4) last resort
	return "fallback", `title: source=fallback -> ""`
}
