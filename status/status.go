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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Status is the canonical, validated representation of a stringified
// status code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw failure-value payloads with normalized values.
//
// IMPORTANT: Empty statuses ("") are NOT allowed. Every descriptor MUST
// carry a non-empty status; Default exists precisely for the "nothing could
// be extracted" case.
type Status string

// Length is the exact length of a canonical status string.
//
// Statuses are always three digits; keeping the value as a named constant
// lets validation errors, tests and other packages reference the same
// constraint.
const Length = 3

const (
	// statusFmt is the canonical regular expression used to validate
	// status strings.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[1-5] - the class digit; only 1xx..5xx classes exist;
	//	[0-9]{2} - two more digits, any value;
	//	$ - end of string;
	//
	// IMPORTANT: the pattern is tied to Length above. If you ever extend
	// statuses beyond three digits, adjust both together.
	statusFmt = `^[1-5][0-9]{2}$`
)

var (
	// statusRe is the compiled regular expression used at runtime to
	// validate that a string is a canonical status.
	//
	// We precompile it so that repeated validations (e.g. on every resolved
	// failure in a hot notification path) do not pay the compilation cost
	// over and over again.
	//
	// Examples of valid statuses:
	//   - "403"
	//   - "404"
	//   - "500"
	//
	// Examples of invalid statuses:
	//   - "0"     (too short, class 0 does not exist)
	//   - "9999"  (too long)
	//   - "6xx"   (not digits)
	//   - "042"   (class 0 does not exist)
	statusRe = regexp.MustCompile(statusFmt)
)

var (
	// ErrStatusInvalid is returned when a value cannot be parsed or
	// validated as a status.
	//
	// Having a dedicated sentinel error makes it easier for callers and
	// tests to detect "this is about status format" vs "some other error".
	ErrStatusInvalid = errors.New("failview: invalid status")
)

// Ensure Status implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// Default is the status used whenever a failure value carries no usable
// status of its own. It is always valid.
const Default Status = "500"

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Status value.
func Parse(s string) (Status, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Status(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Status {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical status form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//
// It does NOT guarantee that the result is valid — callers should still
// call Validate/Parse after normalization.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Validate checks whether the provided Status is valid.
// The empty status ("") is considered invalid.
func Validate(s Status) error {
	return validate(string(s))
}

// FromInt converts a numeric status code into a canonical Status.
//
// Values outside the representable 100..599 range degrade to Default
// rather than producing an invalid status. This keeps the conversion total,
// which matters because the input typically comes straight out of an
// untrusted failure value.
func FromInt(n int) Status {
	if n < 100 || n > 599 {
		return Default
	}
	return Status(strconv.Itoa(n))
}

// Int returns the numeric value of the status.
//
// Invalid statuses report the numeric value of Default so that callers
// (e.g. HTTP writers) never emit a zero status line.
func (s Status) Int() int {
	if err := Validate(s); err != nil {
		d, _ := strconv.Atoi(string(Default))
		return d
	}
	n, _ := strconv.Atoi(string(s))
	return n
}

// String returns the canonical string representation of the status.
func (s Status) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (s Status) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (s *Status) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	raw := string(bytes.TrimSpace(text))
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid status.
func validate(s string) error {
	if !statusRe.MatchString(s) {
		return ErrStatusInvalid
	}
	return nil
}
