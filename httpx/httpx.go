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

package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"notix.dev/failview"
	"notix.dev/failview/status"
)

// Writer is a thin adapter that knows how to turn an arbitrary failure
// value into an HTTP JSON notification payload using the provided resolver.
type Writer struct {
	// Resolver classifies failure values. When nil, the package-level
	// default resolver is used.
	Resolver *failview.Resolver
}

// Write resolves the failure value and writes its descriptor to the
// response writer as a JSON object with exactly the fields description,
// status and title. The HTTP status line is taken from the descriptor's
// status string.
//
// No automatic redaction or filtering is performed here: whatever message
// the failure value carries is exposed as-is. Higher-level handlers should
// apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, failure any) {
	d := w.describe(failure)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status.Status(d.Status).Int())

	payload, err := structpb.NewStruct(map[string]any{
		"description": d.Description,
		"status":      d.Status,
		"title":       d.Title,
	})
	if err != nil {
		// Descriptor fields are plain strings; structpb cannot reject them.
		_, _ = rw.Write([]byte("{}"))
		return
	}

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of the well-known Struct type and its field
	// names.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: true,
	}).Marshal(payload)
	_, _ = rw.Write(b)
}

func (w Writer) describe(failure any) failview.Descriptor {
	if w.Resolver != nil {
		return w.Resolver.Describe(failure)
	}
	return failview.Describe(failure)
}
