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

// Option configures the Resolver at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Resolver.
type Option func(*builder)

// WithOverride pins an exact display title for the given status.
// Overrides take precedence over every localized tier, including custom
// keys registered with WithKey.
func WithOverride(s status.Status, title string) Option {
	return func(b *builder) { b.overrides[s] = title }
}

// WithKey registers a localization key for the given status.
// The key is consulted before the well-known name-derived key, which makes
// it the way to give curated titles to statuses outside the built-in
// registry (e.g. "451") without hardcoding display text.
func WithKey(s status.Status, k locale.Key) Option {
	return func(b *builder) { b.keys[s] = k }
}
