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

// Package probe inspects arbitrary failure values for the two capabilities
// the resolver cares about: "carries a string message" and "carries a
// numeric status".
//
// A failure value has no fixed shape: it may be an error, a struct decoded
// from a response body, a map, a plain string, or anything else a failing
// call site handed over. Each probe is a narrowing predicate — it either
// extracts a typed value and reports true, or reports false without side
// effects. Probes never panic, whatever the input.
//
// The package also owns the serialization step of message resolution:
// Render returns an explicit error instead of using recovery for control
// flow, and Fallback produces the degraded representation that is used
// when serialization is impossible (cyclic values, channels, functions).
package probe
