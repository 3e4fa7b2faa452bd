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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Key is the canonical, validated representation of a localization key.
//
// Keys are dot-separated hierarchical identifiers with a small, fixed depth.
// The leading segments name the subsystem and the kind of string, the last
// segment names the concrete entry.
//
// Example valid keys:
//
//   - "failure.message.default"
//   - "failure.title.default"
//   - "failure.title.not_found"
//   - "failure.title.too_many_requests"
//
// The intent is to make it easy to programmatically build keys from known
// status names, and to let catalogs match on key prefixes when a concrete
// entry has no translation.
type Key string

// MinLength and MaxLength define the allowed length range for a canonical
// key string.
//
// Keys can be fairly long because they carry multiple segments
// (subsystem.kind.entry).
const (
	// MinLength is the minimum length for a valid key. We keep it at 3 so
	// that trivial values like "x" are not considered meaningful keys.
	MinLength = 3

	// MaxLength is the maximum length for a valid key.
	// 128 characters is enough even for 4 segments with descriptive names.
	MaxLength = 128
)

const (
	// keyFmt is the canonical regular expression used to validate keys.
	//
	// We accept 1 to 4 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"failure.message.default"
	//	"failure.title.not_found"
	//	"failure.title"
	//
	// Examples that DO NOT match:
	//
	//	"Failure.Title" (uppercase)
	//	"failure/title" (slash)
	//	"failure..title" (empty segment)
	//	"failure.404" (digit-first segment)
	//
	// NOTE: unlike optional refinements elsewhere, an empty key is never
	// meaningful here — every localized string must have an address.
	keyFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// keyRe is the compiled regexp for the above pattern.
	keyRe = regexp.MustCompile(keyFmt)
)

var (
	// ErrKeyInvalidFormat is returned when a key does not conform to the
	// expected format.
	ErrKeyInvalidFormat = errors.New("failview: invalid locale key format")
	// ErrKeyInvalidLength is returned when a key is too short or too long.
	ErrKeyInvalidLength = errors.New("failview: invalid locale key length")
)

// Ensure Key implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Key)(nil)
	_ encoding.TextUnmarshaler = (*Key)(nil)
)

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical key form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build paths with slashes)
//   - replace "-" with "_" (to align with status-name identifiers)
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// ParseKey takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Key value.
//
// Unlike optional identifiers, the empty string is rejected: a key always
// addresses a concrete string.
func ParseKey(s string) (Key, error) {
	s = Normalize(s)
	if err := validateKey(s); err != nil {
		return "", err
	}
	return Key(s), nil
}

// MustKey is the panic-on-error variant of ParseKey. It is useful for
// declaring package-level key constants in var/const blocks.
func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate checks whether the provided Key is in canonical form.
func Validate(k Key) error {
	return validateKey(string(k))
}

// String returns the canonical string representation of the key.
func (k Key) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Key) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := ParseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validateKey is the internal helper that checks length and format.
func validateKey(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrKeyInvalidLength
	}
	if !keyRe.MatchString(s) {
		return ErrKeyInvalidFormat
	}
	return nil
}
