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

// Package status provides parsing, normalization and validation for the
// stringified status codes carried by failure descriptors.
//
// A "status" is the HTTP-like classification of a failure, such as "403",
// "404" or "500". Statuses are meant to be:
//
//   - exactly three ASCII digits;
//   - in the 1xx..5xx class range;
//   - suitable for use in JSON payloads and for lookup in title registries.
//
// The zero value ("") is NOT a valid status. Resolvers that cannot extract
// a status from a failure value must fall back to status.Default instead.
//
// This package defines the canonical representation and the functions that
// convert arbitrary input to that canonical form.
package status
