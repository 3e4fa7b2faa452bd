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

package failview

import (
	"notix.dev/failview/locale"
	"notix.dev/failview/probe"
	"notix.dev/failview/status"
	"notix.dev/failview/titles"
)

// Descriptor is the canonical display form of a failure.
//
// It carries:
//   - Description: human-oriented message (what went wrong);
//   - Status: stringified HTTP-like status code, "500" when unknown;
//   - Title: short heading resolved from the status.
//
// All three fields are always non-nil strings ready for a notification UI;
// Description and Status are additionally guaranteed non-empty. Descriptors
// are constructed fresh per call and never shared or retained.
type Descriptor struct {
	// Description is the human-readable explanation. This is what should
	// end up in the body of a toast/notification.
	Description string `json:"description"`

	// Status is the stringified status code, e.g. "403", "404", "500".
	// Always parseable by notix.dev/failview/status.
	Status string `json:"status"`

	// Title is the short display heading for the status. May be "" only
	// when the configured Localizer has no default title at all.
	Title string `json:"title"`
}

// Resolver turns arbitrary failure values into Descriptors.
//
// The zero configuration (New with no options) uses the built-in English
// catalog and curated status titles. A Resolver is immutable after New and
// safe for concurrent use; all WithX helpers return a shallow copy, so
// instances can be shared and specialized in a functional style.
type Resolver struct {
	// loc supplies the default message and feeds title resolution.
	loc locale.Localizer

	// titles resolves the display heading for an extracted status.
	titles *titles.Resolver
}

// New constructs a Resolver and applies all provided options in order.
//
// Usage:
//
//	r := failview.New(
//	    failview.WithLocalizerOption(myCatalog),
//	)
//	d := r.Describe(err)
//
// It always returns a usable *Resolver: missing pieces are filled with the
// built-in defaults after the options ran.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		r = opt(r)
	}
	if r.loc == nil {
		r.loc = locale.Default()
	}
	if r.titles == nil {
		// titles.New without options validates nothing and cannot fail.
		t, _ := titles.New(r.loc)
		r.titles = t
	}
	return r
}

// defaultResolver backs the package-level Describe. Built once; immutable.
var defaultResolver = New()

// Describe classifies a failure value using the default Resolver.
// See Resolver.Describe.
func Describe(v any) Descriptor {
	return defaultResolver.Describe(v)
}

// Describe converts an arbitrary failure value into a Descriptor.
//
// The function is total: every input, however malformed, yields a valid
// Descriptor, and the call never panics and has no side effects. Calling it
// twice on the same input yields an equal Descriptor (modulo a caller-
// provided Localizer that answers non-deterministically).
func (r *Resolver) Describe(v any) Descriptor {
	st := r.resolveStatus(v)
	return Descriptor{
		Description: r.resolveMessage(v),
		Status:      st.String(),
		Title:       r.titles.Title(st),
	}
}

// resolveMessage extracts the human-readable message from the failure
// value. The branches are attempted in a fixed order, first match wins:
//
//  1. the value carries a string message (error, capability, map, struct);
//  2. the value itself is a non-empty string;
//  3. the value is absent (nil or zero) — localized default message;
//  4. JSON serialization of the value;
//  5. serialization failed (cycles, channels) — degraded representation.
//
// The result is always non-empty.
func (r *Resolver) resolveMessage(v any) string {
	if msg, ok := probe.Message(v); ok {
		return msg
	}
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	if probe.Absent(v) {
		return r.defaultMessage()
	}
	if s, err := probe.Render(v); err == nil {
		return s
	}
	return probe.Fallback(v)
}

// resolveStatus extracts the status carried by the failure value, or
// status.Default when there is none. Out-of-range numbers degrade inside
// status.FromInt, so the result is always valid.
func (r *Resolver) resolveStatus(v any) status.Status {
	if n, ok := probe.StatusCode(v); ok {
		return status.FromInt(n)
	}
	return status.Default
}

// defaultMessage returns the localized default message. A mute Localizer
// falls back to the built-in catalog so the non-empty guarantee holds.
func (r *Resolver) defaultMessage() string {
	if s := r.loc.Localize(locale.KeyDefaultMessage); s != "" {
		return s
	}
	return locale.Default().Localize(locale.KeyDefaultMessage)
}
