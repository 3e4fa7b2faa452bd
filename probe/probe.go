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
	"encoding/json"
	"fmt"
	"reflect"
)

// Messaged is the capability interface for failure values that expose
// their message explicitly. It is checked before any structural probing.
type Messaged interface {
	Message() string
}

// StatusCoded is the capability interface for failure values that expose
// a numeric status explicitly.
type StatusCoded interface {
	StatusCode() int
}

// HTTPStatused is an alternative status capability commonly found on
// transport-level error types.
type HTTPStatused interface {
	HTTPStatus() int
}

// Message extracts a string message from an arbitrary failure value.
//
// Probing order (first hit wins):
//
//  1. the error interface (Error());
//  2. the Messaged capability (Message());
//  3. a map with string keys holding a string under "message";
//  4. a struct (or pointer to struct) with an exported string field Message.
//
// An empty extracted string reports false: the resolver guarantees a
// non-empty description, so "has a message" means "has a usable message".
//
// Dynamic calls into caller-provided methods are guarded: a panicking
// Error()/Message() implementation yields (_, false) instead of
// propagating, keeping the resolver total.
func Message(v any) (msg string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			msg, ok = "", false
		}
	}()

	if v == nil {
		return "", false
	}

	if err, isErr := v.(error); isErr {
		if s := err.Error(); s != "" {
			return s, true
		}
		return "", false
	}
	if m, isMsg := v.(Messaged); isMsg {
		if s := m.Message(); s != "" {
			return s, true
		}
		return "", false
	}

	if s, found := mapString(v, "message"); found {
		return s, s != ""
	}
	if f, found := structField(v, "Message"); found && f.Kind() == reflect.String {
		s := f.String()
		return s, s != ""
	}
	return "", false
}

// StatusCode extracts a numeric status from an arbitrary failure value.
//
// Probing order (first hit wins):
//
//  1. the StatusCoded capability (StatusCode());
//  2. the HTTPStatused capability (HTTPStatus());
//  3. a map with string keys holding a number under "status";
//  4. a struct (or pointer to struct) with an exported numeric field Status.
//
// Like Message, dynamic calls are guarded against panics.
func StatusCode(v any) (code int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			code, ok = 0, false
		}
	}()

	if v == nil {
		return 0, false
	}

	if sc, isSC := v.(StatusCoded); isSC {
		return sc.StatusCode(), true
	}
	if hs, isHS := v.(HTTPStatused); isHS {
		return hs.HTTPStatus(), true
	}

	if n, found := mapNumber(v, "status"); found {
		return n, true
	}
	if f, found := structField(v, "Status"); found {
		if n, numeric := numberOf(f); numeric {
			return n, true
		}
	}
	return 0, false
}

// Absent reports whether the failure value is nil or a zero value of its
// type. Absent values take the default-message branch instead of being
// serialized (serializing nil would yield the literal "null", which is
// useless in a notification).
func Absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	// IsZero covers nil pointers, nil maps/slices, "", 0, false and
	// zero structs uniformly.
	return rv.IsZero()
}

// Render serializes an arbitrary failure value to its JSON representation.
//
// Serialization can genuinely fail — cyclic values, channels, functions —
// and the failure is returned as an ordinary error so that the caller
// selects the fallback branch explicitly instead of recovering.
func Render(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("probe: render failure value: %w", err)
	}
	return string(b), nil
}

// Fallback produces the degraded string representation used when Render
// fails. It must terminate on any input, including cyclic structures, so
// it never walks the value: a fmt.Stringer gets to speak for itself,
// anything else is represented by its dynamic type.
func Fallback(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<%T>", v)
		}
	}()

	if str, ok := v.(fmt.Stringer); ok {
		if out := str.String(); out != "" {
			return out
		}
	}
	return fmt.Sprintf("<%T>", v)
}

// mapString looks up key in any map with string keys and reports the value
// if it is a string.
func mapString(v any, key string) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return "", false
	}
	val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !val.IsValid() {
		return "", false
	}
	val = unwrap(val)
	if val.Kind() != reflect.String {
		return "", false
	}
	return val.String(), true
}

// mapNumber looks up key in any map with string keys and reports the value
// if it is numeric. JSON-decoded maps carry float64, so all numeric kinds
// are accepted and truncated to int.
func mapNumber(v any, key string) (int, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return 0, false
	}
	val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !val.IsValid() {
		return 0, false
	}
	return numberOf(unwrap(val))
}

// structField resolves an exported field on a struct or pointer to struct.
func structField(v any, name string) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	f := rv.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return reflect.Value{}, false
	}
	return unwrap(f), true
}

// numberOf converts any numeric reflect kind to int.
func numberOf(val reflect.Value) (int, bool) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(val.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(val.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int(val.Float()), true
	default:
		return 0, false
	}
}

// unwrap peels interface wrappers off a reflect value (map values of type
// any come wrapped).
func unwrap(val reflect.Value) reflect.Value {
	for val.Kind() == reflect.Interface && !val.IsNil() {
		val = val.Elem()
	}
	return val
}
