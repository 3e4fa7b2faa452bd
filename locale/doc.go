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

// Package locale supplies the human-readable strings used by failure
// descriptors: default messages, default titles and per-status titles.
//
// Strings are addressed by Key, a validated, dot-separated hierarchical
// identifier, e.g.:
//
//   - "failure.message.default"
//   - "failure.title.default"
//   - "failure.title.not_found"
//
// The Localizer contract is intentionally tiny so that applications can
// plug in their own translation layer (gettext, ICU bundles, a service)
// without importing anything else from this module. The built-in Catalog
// is an immutable, concurrency-safe implementation with exact entries plus
// wildcard-prefix fallbacks, suitable both as the default English table
// and as a base for small overrides.
//
// A Localizer must be pure and side-effect free: the resolver calls it on
// every classified failure and relies on lookups never failing. A lookup
// miss yields "" — never an error, never a panic.
package locale
