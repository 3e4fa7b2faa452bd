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
	"notix.dev/failview/locale"
	"notix.dev/failview/status"
)

type builder struct {
	// overrides holds exact per-status display texts (higher than any
	// localized tier).
	overrides map[status.Status]string

	// keys holds per-status localization keys consulted before the
	// well-known name-derived key.
	keys map[status.Status]locale.Key
}

// newBuilder creates an empty builder.
// Overrides and custom keys are usually few, so the maps start small.
func newBuilder() *builder {
	return &builder{
		overrides: make(map[status.Status]string),
		keys:      make(map[status.Status]locale.Key),
	}
}

// freezeOverrides makes an immutable copy of the overrides map.
// Used when finalizing the resolver so later mutations to the builder
// (or caller-owned maps) cannot affect the resolver.
func freezeOverrides(src map[status.Status]string) map[status.Status]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[status.Status]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeKeys makes an immutable copy of the per-status key map.
func freezeKeys(src map[status.Status]locale.Key) map[status.Status]locale.Key {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[status.Status]locale.Key, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
