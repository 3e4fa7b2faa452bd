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
	"testing"

	"notix.dev/failview/locale"
	"notix.dev/failview/status"
)

func TestTitle_WellKnown(t *testing.T) {
	r, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name string
		s    status.Status
		want string
	}{
		{"forbidden", status.Forbidden, "Access denied"},
		{"not found", status.NotFound, "Not found"},
		{"internal", status.Internal, "Server error"},
		{"unavailable", status.Unavailable, "Service unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Title(tt.s); got != tt.want {
				t.Fatalf("Title(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestTitle_UnknownStatusUsesDefault(t *testing.T) {
	r, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Title(status.Status("418")); got != "Error" {
		t.Fatalf("Title(418) = %q, want default title", got)
	}
}

func TestTitle_Override(t *testing.T) {
	r, err := New(nil,
		WithOverride(status.Forbidden, "No entry"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Title(status.Forbidden); got != "No entry" {
		t.Fatalf("Title = %q, want override", got)
	}
	// other statuses untouched
	if got := r.Title(status.NotFound); got != "Not found" {
		t.Fatalf("Title = %q, want curated title", got)
	}
}

func TestTitle_CustomKey(t *testing.T) {
	cat := locale.MustCatalog(
		testCatalogDefaults(),
		locale.WithEntry("failure.title.teapot", "I'm a teapot"),
	)
	r, err := New(cat,
		WithKey(status.Status("418"), "failure.title.teapot"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Title(status.Status("418")); got != "I'm a teapot" {
		t.Fatalf("Title = %q, want custom key text", got)
	}
}

func TestTitle_KeyMissFallsToDefault(t *testing.T) {
	// custom key without a translation: tier 2 misses, tier 3 answers
	cat := locale.MustCatalog(
		testCatalogDefaults(),
	)
	r, err := New(cat,
		WithKey(status.Status("418"), "failure.title.teapot"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Title(status.Status("418")); got != "Error" {
		t.Fatalf("Title = %q, want default title", got)
	}
}

func TestTitle_EmptyLocalizerLastResort(t *testing.T) {
	mute := locale.Func(func(locale.Key) string { return "" })
	r, err := New(mute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Title(status.NotFound); got != "" {
		t.Fatalf("Title = %q, want empty last resort", got)
	}
}

func TestNew_InvalidInputs(t *testing.T) {
	if _, err := New(nil, WithOverride(status.Status("bogus"), "x")); err == nil {
		t.Fatalf("New must reject invalid statuses in overrides")
	}
	if _, err := New(nil, WithKey(status.NotFound, locale.Key("Bad Key"))); err == nil {
		t.Fatalf("New must reject invalid keys")
	}
	if _, err := New(nil, WithKey(status.Status("99"), "failure.title.x")); err == nil {
		t.Fatalf("New must reject invalid statuses in key rules")
	}
}

func TestResolver_Immutability(t *testing.T) {
	b := newBuilder()
	b.overrides[status.NotFound] = "before"
	r := &Resolver{loc: locale.Default(), overrides: freezeOverrides(b.overrides)}

	// mutating the builder after freeze must not reach the resolver
	b.overrides[status.NotFound] = "after"
	if got := r.Title(status.NotFound); got != "before" {
		t.Fatalf("Title = %q, resolver observed builder mutation", got)
	}
}

// testCatalogDefaults returns the minimal entries the resolver relies on,
// for tests that build their own catalogs.
func testCatalogDefaults() locale.CatalogOption {
	return locale.WithEntry(locale.KeyDefaultTitle, "Error")
}
