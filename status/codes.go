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

package status

// Client-side failure statuses
//
// These statuses describe failures that the caller can usually act on:
// fix the request, re-authenticate, slow down, or give up on a resource
// that is not there.
const (
	// BadRequest indicates that the request or input was malformed.
	// Typical display title: "Bad request".
	BadRequest Status = "400"

	// Unauthorized indicates that the caller is not authenticated.
	// Typical display title: "Sign in required".
	Unauthorized Status = "401"

	// Forbidden indicates that the caller is authenticated but not allowed
	// to perform the operation.
	// Typical display title: "Access denied".
	Forbidden Status = "403"

	// NotFound indicates that the requested resource does not exist
	// (or is not visible to the caller).
	// Typical display title: "Not found".
	NotFound Status = "404"

	// RequestTimeout indicates that the request could not complete within
	// the allotted time budget.
	// Typical display title: "Request timed out".
	RequestTimeout Status = "408"

	// Conflict indicates a state conflict, e.g. a concurrent update or a
	// uniqueness violation.
	// Typical display title: "Conflict".
	Conflict Status = "409"

	// Gone indicates that the resource existed before but is no longer
	// available.
	// Typical display title: "No longer available".
	Gone Status = "410"

	// TooManyRequests indicates that the caller exceeded a rate limit or
	// quota and should back off.
	// Typical display title: "Too many requests".
	TooManyRequests Status = "429"
)

// Server-side failure statuses
//
// These statuses describe failures the caller cannot fix; the best a
// notification UI can do is apologize and suggest retrying later.
const (
	// Internal indicates an internal, non-classified failure. This is also
	// the library-wide Default used when a failure value carries no status.
	// Typical display title: "Server error".
	Internal Status = "500"

	// BadGateway indicates that an upstream dependency failed in a way
	// visible to the caller.
	// Typical display title: "Upstream error".
	BadGateway Status = "502"

	// Unavailable indicates that the service or a required dependency is
	// temporarily unreachable.
	// Typical display title: "Service unavailable".
	Unavailable Status = "503"

	// GatewayTimeout indicates that an upstream dependency did not answer
	// in time.
	// Typical display title: "Upstream timeout".
	GatewayTimeout Status = "504"
)

// names maps every well-known status to its stable snake_case name.
//
// The name is what localization keys are built from
// ("failure.title.not_found"), so entries here must stay lowercase,
// underscore-separated and permanently stable once released.
var names = map[Status]string{
	BadRequest:      "bad_request",
	Unauthorized:    "unauthorized",
	Forbidden:       "forbidden",
	NotFound:        "not_found",
	RequestTimeout:  "request_timeout",
	Conflict:        "conflict",
	Gone:            "gone",
	TooManyRequests: "too_many_requests",
	Internal:        "internal",
	BadGateway:      "bad_gateway",
	Unavailable:     "unavailable",
	GatewayTimeout:  "gateway_timeout",
}

// Name returns the stable snake_case name of a well-known status.
// Unknown statuses report ("", false); they have no curated title and
// resolve through the default-title path instead.
func Name(s Status) (string, bool) {
	n, ok := names[s]
	return n, ok
}

// IsWellKnown reports whether the status has a curated display name.
func IsWellKnown(s Status) bool {
	_, ok := names[s]
	return ok
}

// WellKnown returns a fresh slice of all curated statuses.
//
// The slice is newly allocated on every call so that callers can sort or
// mutate it without affecting the registry.
func WellKnown() []Status {
	out := make([]Status, 0, len(names))
	for s := range names {
		out = append(out, s)
	}
	return out
}
