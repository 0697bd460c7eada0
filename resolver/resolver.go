// Package resolver runs public gateway operations end to end: resolve the
// backend handle, attach the caller's credential, dispatch, and normalize the
// outcome into the uniform response envelope.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/dispatch"
)

// Resources is the shared machinery every domain resolver runs against.
type Resources struct {
	Registry *core.ClientRegistry
	Logger   core.Logger
	Metrics  core.MetricsRecorder
}

// Call describes one public operation: where it dispatches, how the input
// translates into the wire payload, and how the raw backend result becomes a
// typed envelope.
type Call[I any, O any] struct {
	// Domain selects the backend handle.
	Domain core.Domain
	// Operation is the backend wire method name, e.g. "GetUser".
	Operation string
	// Label names the operation in failure messages: "fetch user" renders
	// as "Failed to fetch user".
	Label string
	// Encode translates the public input into the backend wire payload.
	Encode func(I) (any, error)
	// Decode translates the raw backend result into the typed envelope.
	Decode func(core.BackendResult) (core.Envelope[O], error)
}

// Run executes one operation and always returns an envelope. Transport,
// dispatch and decode failures collapse into the generic failure envelope;
// their causes are logged server-side only.
func Run[I any, O any](ctx context.Context, res Resources, cc core.CallContext, call Call[I, O], input I) core.Envelope[O] {
	startedAt := time.Now().UTC()
	fields := map[string]any{"request_id": cc.RequestID}

	envelope, err := run(ctx, res, cc, call, input)
	core.ObserveOperation(ctx, res.Logger, res.Metrics, startedAt, call.Domain, call.Operation, err, fields)
	if err != nil {
		return core.Failure[O](call.Label)
	}
	return envelope
}

func run[I any, O any](ctx context.Context, res Resources, cc core.CallContext, call Call[I, O], input I) (core.Envelope[O], error) {
	if call.Decode == nil {
		return core.Envelope[O]{}, goerrors.New(
			"resolver: call decode func is required",
			goerrors.CategoryInternal,
		).WithTextCode(core.GatewayErrorInternal)
	}

	client, err := res.Registry.GetClient(call.Domain)
	if err != nil {
		return core.Envelope[O]{}, err
	}

	payload := any(input)
	if call.Encode != nil {
		payload, err = call.Encode(input)
		if err != nil {
			return core.Envelope[O]{}, err
		}
	}

	md := core.Metadata{}
	if cc.HasToken {
		core.AttachToken(md, cc.Token)
	}

	result, err := dispatch.Await(ctx, client, call.Operation, payload, md)
	if err != nil {
		return core.Envelope[O]{}, err
	}

	envelope, err := call.Decode(result)
	if err != nil {
		return core.Envelope[O]{}, err
	}
	return envelope, nil
}

// DecodeJSON unmarshals a raw backend result body into a wire struct.
func DecodeJSON[W any](result core.BackendResult) (W, error) {
	var wire W
	if len(result.Body) == 0 {
		return wire, goerrors.New(
			"resolver: decode empty backend response",
			goerrors.CategoryExternal,
		).WithTextCode(core.GatewayErrorDecodeFailed)
	}
	if err := json.Unmarshal(result.Body, &wire); err != nil {
		return wire, goerrors.Wrap(
			err,
			goerrors.CategoryExternal,
			fmt.Sprintf("resolver: decode backend response into %T", wire),
		).WithTextCode(core.GatewayErrorDecodeFailed)
	}
	return wire, nil
}
