// Package dispatch bridges the callback-style backend client contract into a
// single awaitable outcome per operation.
package dispatch

import (
	"context"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gateway/core"
)

type outcome struct {
	result core.BackendResult
	err    error
}

// Await issues one backend call and blocks until the client completes it or
// the context is done. Only the first completion is honored; late or duplicate
// callback invocations are swallowed.
func Await(ctx context.Context, client core.BackendClient, operation string, payload any, md core.Metadata) (core.BackendResult, error) {
	if client == nil {
		return core.BackendResult{}, dispatchError(
			"dispatch: backend client is required",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"operation": operation},
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return core.BackendResult{}, contextError(ctx, client.Domain(), operation)
	}

	outcomes := make(chan outcome, 1)
	client.Call(ctx, operation, payload, md, func(result core.BackendResult, err error) {
		select {
		case outcomes <- outcome{result: result, err: err}:
		default:
		}
	})

	select {
	case out := <-outcomes:
		if out.err != nil {
			return core.BackendResult{}, dispatchWrapError(
				out.err,
				client.Domain(),
				operation,
			)
		}
		return out.result, nil
	case <-ctx.Done():
		return core.BackendResult{}, contextError(ctx, client.Domain(), operation)
	}
}

func contextError(ctx context.Context, domain core.Domain, operation string) error {
	message := "dispatch: backend call canceled"
	if ctx.Err() == context.DeadlineExceeded {
		message = "dispatch: backend call deadline exceeded"
	}
	return goerrors.Wrap(ctx.Err(), goerrors.CategoryOperation, message).
		WithCode(http.StatusGatewayTimeout).
		WithTextCode(core.GatewayErrorDispatchFailed).
		WithMetadata(map[string]any{
			"domain":    string(domain),
			"operation": operation,
		})
}

func dispatchError(message string, category goerrors.Category, code int, metadata map[string]any) error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(core.GatewayErrorDispatchFailed)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func dispatchWrapError(source error, domain core.Domain, operation string) error {
	var richErr *goerrors.Error
	if goerrors.As(source, &richErr) {
		return richErr
	}
	return goerrors.Wrap(source, goerrors.CategoryExternal, "dispatch: backend call failed").
		WithCode(http.StatusBadGateway).
		WithTextCode(core.GatewayErrorDispatchFailed).
		WithMetadata(map[string]any{
			"domain":    string(domain),
			"operation": operation,
		})
}
