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

// english holds the built-in English strings. These are only defaults:
// applications are expected to replace or extend them with their own
// Localizer at the boundary where notifications are produced.
//
// Every well-known status in the status package must have a title entry
// here; the link is asserted by tests on both sides.
var english = MustCatalog(
	// Library-wide defaults.
	WithEntry(KeyDefaultMessage, "Something went wrong"),
	WithEntry(KeyDefaultTitle, "Error"),

	// Titles for curated statuses, keyed by status name.
	WithEntry("failure.title.bad_request", "Bad request"),
	WithEntry("failure.title.unauthorized", "Sign in required"),
	WithEntry("failure.title.forbidden", "Access denied"),
	WithEntry("failure.title.not_found", "Not found"),
	WithEntry("failure.title.request_timeout", "Request timed out"),
	WithEntry("failure.title.conflict", "Conflict"),
	WithEntry("failure.title.gone", "No longer available"),
	WithEntry("failure.title.too_many_requests", "Too many requests"),
	WithEntry("failure.title.internal", "Server error"),
	WithEntry("failure.title.bad_gateway", "Upstream error"),
	WithEntry("failure.title.unavailable", "Service unavailable"),
	WithEntry("failure.title.gateway_timeout", "Upstream timeout"),

	// Safety net: any title key that slips past the entries above still
	// resolves to the generic title instead of "".
	WithPattern("failure.title", "Error"),
)

// Default returns the built-in English catalog.
//
// The catalog is immutable and shared; callers get the same instance on
// every call and may use it concurrently.
func Default() *Catalog {
	return english
}
