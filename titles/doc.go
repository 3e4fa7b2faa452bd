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

// Package titles resolves deterministic, immutable display titles for
// failure statuses (notix.dev/failview/status).
//
// # Overview
//
// A notification UI needs a short heading next to the failure message:
// "Access denied" for 403, "Not found" for 404, a generic "Error" for
// anything without a curated title. Package titles does that in a way
// that is:
//
//   - immutable — a Resolver is a snapshot, safe for concurrent reuse;
//   - overridable — callers can pin exact titles per status;
//   - localized — curated titles come from a locale.Localizer;
//   - total — resolution never fails; the last resort is "".
//
// # Resolution model
//
// A Resolver resolves a title in the following order:
//
//  1. exact per-status override (explicitly registered display text);
//  2. localized per-status key — registered via WithKey, or derived from
//     the well-known status name ("failure.title.not_found");
//  3. localized default title (locale.KeyDefaultTitle);
//  4. the empty string as last resort, when even the default key has no
//     translation.
//
// # Building a resolver
//
// A Resolver is created once and reused:
//
//	r, err := titles.New(locale.Default(),
//	    titles.WithOverride(status.Forbidden, "No entry"),
//	    titles.WithKey(status.Status("418"), "failure.title.teapot"),
//	)
//	if err != nil {
//	    // invalid status or key, etc.
//	}
//
//	t := r.Title(status.NotFound) // "Not found"
//
// # Diagnostics
//
// For debugging and tests, Resolver.Explain returns a human-readable trace
// of how a particular status was resolved, including which tier matched.
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Resolver does not observe further changes to the caller's maps. This
// makes it safe to share a single instance across handlers, goroutines,
// and requests.
package titles
