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

package probe

import (
	"errors"
	"strings"
	"testing"
)

type withMessage struct{ msg string }

func (w withMessage) Message() string { return w.msg }

type withStatusCode struct{ code int }

func (w withStatusCode) StatusCode() int { return w.code }

type withHTTPStatus struct{ code int }

func (w withHTTPStatus) HTTPStatus() int { return w.code }

type panickyError struct{}

func (panickyError) Error() string { panic("broken Error()") }

type loudValue struct{}

func (loudValue) String() string { return "loud" }

func TestMessage(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{"error", errors.New("boom"), "boom", true},
		{"messaged capability", withMessage{"nope"}, "nope", true},
		{"map any", map[string]any{"message": "from map"}, "from map", true},
		{"map string", map[string]string{"message": "typed map"}, "typed map", true},
		{"struct field", struct{ Message string }{"field"}, "field", true},
		{"pointer to struct", &struct{ Message string }{"ptr field"}, "ptr field", true},
		{"nil", nil, "", false},
		{"plain string is not a message carrier", "just text", "", false},
		{"empty message is unusable", map[string]any{"message": ""}, "", false},
		{"non-string message", map[string]any{"message": 42}, "", false},
		{"unrelated struct", struct{ Name string }{"x"}, "", false},
		{"nil typed pointer", (*struct{ Message string })(nil), "", false},
		{"panicking error", panickyError{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Message(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Message(%v) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"status code capability", withStatusCode{404}, 404, true},
		{"http status capability", withHTTPStatus{403}, 403, true},
		{"map int", map[string]any{"status": 404}, 404, true},
		{"map float (json decode)", map[string]any{"status": float64(429)}, 429, true},
		{"struct int field", struct{ Status int }{500}, 500, true},
		{"struct float field", struct{ Status float64 }{410}, 410, true},
		{"pointer to struct", &struct{ Status int }{409}, 409, true},
		{"nil", nil, 0, false},
		{"string status is not numeric", map[string]any{"status": "404"}, 0, false},
		{"no status anywhere", errors.New("boom"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StatusCode(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("StatusCode(%v) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAbsent(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"zero int", 0, true},
		{"false", false, true},
		{"zero struct", struct{ N int }{}, true},
		{"nil typed pointer", (*int)(nil), true},
		{"nil map", map[string]any(nil), true},
		{"non-empty string", "x", false},
		{"non-zero int", 1, false},
		{"error value", errors.New("boom"), false},
		{"empty but non-nil map", map[string]any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Absent(tt.in); got != tt.want {
				t.Fatalf("Absent(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	got, err := Render(map[string]any{"code": 7})
	if err != nil {
		t.Fatalf("Render unexpected error: %v", err)
	}
	if got != `{"code":7}` {
		t.Fatalf("Render = %q", got)
	}

	// cyclic value: serialization must fail with an error, not recurse
	cyclic := map[string]any{}
	cyclic["self"] = cyclic
	if _, err := Render(cyclic); err == nil {
		t.Fatalf("Render on cyclic value must fail")
	}

	// channels are not serializable either
	if _, err := Render(make(chan int)); err == nil {
		t.Fatalf("Render on channel must fail")
	}
}

func TestFallback(t *testing.T) {
	// a Stringer speaks for itself
	if got := Fallback(loudValue{}); got != "loud" {
		t.Fatalf("Fallback(Stringer) = %q, want %q", got, "loud")
	}

	// cyclic structures terminate with a type-based representation
	cyclic := map[string]any{}
	cyclic["self"] = cyclic
	got := Fallback(cyclic)
	if got == "" {
		t.Fatalf("Fallback must never return empty")
	}
	if !strings.Contains(got, "map[string]interface") {
		t.Fatalf("Fallback = %q, want type-based representation", got)
	}
}
