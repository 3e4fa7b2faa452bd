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

import "testing"

func TestCatalog_ExactEntry(t *testing.T) {
	c, err := NewCatalog(
		WithEntry(KeyDefaultMessage, "oops"),
		WithEntry("failure.title.not_found", "gone missing"),
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if got := c.Localize(KeyDefaultMessage); got != "oops" {
		t.Fatalf("Localize = %q, want %q", got, "oops")
	}
	if got := c.Localize("failure.title.not_found"); got != "gone missing" {
		t.Fatalf("Localize = %q, want %q", got, "gone missing")
	}
}

func TestCatalog_PatternFallback(t *testing.T) {
	c, err := NewCatalog(
		WithEntry("failure.title.not_found", "Not found"),
		WithPattern("failure.title", "Error"),
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	// exact entry wins over pattern
	if got := c.Localize("failure.title.not_found"); got != "Not found" {
		t.Fatalf("Localize = %q, want exact entry", got)
	}
	// unknown entry under the prefix falls back to the pattern
	if got := c.Localize("failure.title.gone"); got != "Error" {
		t.Fatalf("Localize = %q, want pattern fallback", got)
	}
	// unrelated key misses entirely
	if got := c.Localize("other.subsystem.entry"); got != "" {
		t.Fatalf("Localize = %q, want empty on miss", got)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := NewCatalog(
		WithEntry("failure.title.not_found", "Not found"),
		WithPattern("failure.*.default", "fallback"),
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	text, ok, pat := c.Lookup("failure.title.not_found")
	if !ok || text != "Not found" || pat != "" {
		t.Fatalf("Lookup exact = (%q, %v, %q)", text, ok, pat)
	}

	text, ok, pat = c.Lookup("failure.message.default")
	if !ok || text != "fallback" {
		t.Fatalf("Lookup pattern = (%q, %v, %q)", text, ok, pat)
	}
	if pat != "failure.*.default" {
		t.Fatalf("Lookup pattern = %q, want %q", pat, "failure.*.default")
	}

	if _, ok, _ := c.Lookup("nothing.here"); ok {
		t.Fatalf("Lookup on miss must report ok=false")
	}
}

func TestNewCatalog_InvalidInputs(t *testing.T) {
	if _, err := NewCatalog(WithEntry(Key("Bad Key"), "x")); err == nil {
		t.Fatalf("NewCatalog must reject invalid entry keys")
	}
	if _, err := NewCatalog(WithPattern("*.*", "x")); err == nil {
		t.Fatalf("NewCatalog must reject all-wildcard patterns")
	}
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	if got := c.Localize(KeyDefaultMessage); got != "" {
		t.Fatalf("nil catalog Localize = %q, want empty", got)
	}
	if _, ok, _ := c.Lookup(KeyDefaultMessage); ok {
		t.Fatalf("nil catalog Lookup must report ok=false")
	}
}

func TestFunc_ImplementsLocalizer(t *testing.T) {
	var loc Localizer = Func(func(k Key) string {
		if k == KeyDefaultMessage {
			return "ai!"
		}
		return ""
	})
	if got := loc.Localize(KeyDefaultMessage); got != "ai!" {
		t.Fatalf("Func Localize = %q, want %q", got, "ai!")
	}
}
