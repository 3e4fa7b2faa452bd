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
	"notix.dev/failview/titles"
)

// Option is a functional option for constructing or specializing a Resolver.
// It always takes a *Resolver and returns a (possibly new) *Resolver.
type Option func(*Resolver) *Resolver

// WithLocalizer returns a shallow copy of r with the given Localizer.
// The original resolver is not modified.
//
// Note: the Localizer also feeds title resolution, but only when no title
// resolver was installed explicitly; a resolver set via WithTitles keeps
// the Localizer it was built with.
func (r *Resolver) WithLocalizer(loc locale.Localizer) *Resolver {
	cp := *r
	cp.loc = loc
	return &cp
}

// WithTitles returns a shallow copy of r with the given title resolver.
// The original resolver is not modified.
func (r *Resolver) WithTitles(t *titles.Resolver) *Resolver {
	cp := *r
	cp.titles = t
	return &cp
}

// WithLocalizerOption sets the Localizer on the resolver being constructed.
// Intended to be used with New(...).
func WithLocalizerOption(loc locale.Localizer) Option {
	return func(r *Resolver) *Resolver {
		return r.WithLocalizer(loc)
	}
}

// WithTitlesOption sets the title resolver on construction.
// Intended to be used with New(...).
func WithTitlesOption(t *titles.Resolver) Option {
	return func(r *Resolver) *Resolver {
		return r.WithTitles(t)
	}
}
