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

package grpcx

import (
	"context"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"notix.dev/failview"
	"notix.dev/failview/status"
)

// httpStatus maps canonical gRPC codes onto the HTTP-like statuses used by
// failure descriptors. The table mirrors common REST gateway conventions;
// codes without an obvious HTTP counterpart degrade to status.Default.
var httpStatus = map[gcodes.Code]status.Status{
	// Input / preconditions.
	gcodes.InvalidArgument:    status.BadRequest,
	gcodes.FailedPrecondition: status.BadRequest,
	gcodes.OutOfRange:         status.BadRequest,

	// Resource state.
	gcodes.NotFound:      status.NotFound,
	gcodes.AlreadyExists: status.Conflict,
	gcodes.Aborted:       status.Conflict,

	// AuthN / AuthZ.
	gcodes.Unauthenticated:  status.Unauthorized,
	gcodes.PermissionDenied: status.Forbidden,

	// Rate / quotas.
	gcodes.ResourceExhausted: status.TooManyRequests,

	// Availability / time.
	gcodes.Unavailable:      status.Unavailable,
	gcodes.DeadlineExceeded: status.GatewayTimeout,
	gcodes.Canceled:         status.RequestTimeout,

	// Server-side.
	gcodes.Internal:      status.Internal,
	gcodes.DataLoss:      status.Internal,
	gcodes.Unknown:       status.Internal,
	gcodes.Unimplemented: status.Status("501"),
}

// HTTPStatus resolves the descriptor status for a gRPC code.
// Unknown codes resolve to status.Default, never to an invalid status.
func HTTPStatus(c gcodes.Code) status.Status {
	if s, ok := httpStatus[c]; ok {
		return s
	}
	return status.Default
}

// failure is the message+status shape handed to the resolver for a gRPC
// status error. It exposes the probe capabilities explicitly.
type failure struct {
	msg  string
	code int
}

func (f failure) Message() string { return f.msg }
func (f failure) StatusCode() int { return f.code }

// Failure converts an error produced by a gRPC call into a failure value
// suitable for failview resolution.
//
// gRPC status errors become a message+status pair (the status translated
// via HTTPStatus); any other error is passed through untouched so the
// resolver probes it directly. A nil error yields nil.
func Failure(err error) any {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok || st == nil {
		return err
	}
	return failure{
		msg:  st.Message(),
		code: HTTPStatus(st.Code()).Int(),
	}
}

// Describe resolves a gRPC call error into a display descriptor.
// A nil resolver uses the package-level default.
func Describe(err error, r *failview.Resolver) failview.Descriptor {
	v := Failure(err)
	if r == nil {
		return failview.Describe(v)
	}
	return r.Describe(v)
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that feeds
// every failed call, resolved into a Descriptor, to the provided
// notification sink. The original error is always returned unchanged, so
// the interceptor is purely observational.
//
// A nil notify makes the interceptor a no-op passthrough.
func UnaryClientInterceptor(r *failview.Resolver, notify func(failview.Descriptor)) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if notify != nil {
			notify(Describe(err, r))
		}
		return err
	}
}
