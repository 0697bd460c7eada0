package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	GatewayErrorBadInput       = "GATEWAY_BAD_INPUT"
	GatewayErrorDomainUnknown  = "GATEWAY_DOMAIN_UNKNOWN"
	GatewayErrorClientBuild    = "GATEWAY_CLIENT_BUILD_FAILED"
	GatewayErrorDispatchFailed = "GATEWAY_DISPATCH_FAILED"
	GatewayErrorBackendFailure = "GATEWAY_BACKEND_FAILURE"
	GatewayErrorUnauthorized   = "GATEWAY_UNAUTHORIZED"
	GatewayErrorDecodeFailed   = "GATEWAY_DECODE_FAILED"
	GatewayErrorInternal       = "GATEWAY_INTERNAL_ERROR"
)

func gatewayErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureGatewayErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "domain") && strings.Contains(msg, "unknown"):
		return newGatewayError(err.Error(), goerrors.CategoryNotFound, GatewayErrorDomainUnknown)
	case strings.Contains(msg, "client") && strings.Contains(msg, "build"):
		return newGatewayError(err.Error(), goerrors.CategoryInternal, GatewayErrorClientBuild)
	case strings.Contains(msg, "dispatch"), strings.Contains(msg, "callback"):
		return newGatewayError(err.Error(), goerrors.CategoryExternal, GatewayErrorDispatchFailed)
	case strings.Contains(msg, "decode"), strings.Contains(msg, "unmarshal"):
		return newGatewayError(err.Error(), goerrors.CategoryExternal, GatewayErrorDecodeFailed)
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"):
		return newGatewayError(err.Error(), goerrors.CategoryBadInput, GatewayErrorBadInput)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureGatewayErrorEnvelope(mapped)
}

func newGatewayError(message string, category goerrors.Category, textCode string) *goerrors.Error {
	return ensureGatewayErrorEnvelope(
		goerrors.New(message, category).
			WithTextCode(textCode),
	)
}

func ensureGatewayErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = gatewayHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultGatewayTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultGatewayTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return GatewayErrorBadInput
	case goerrors.CategoryNotFound:
		return GatewayErrorDomainUnknown
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return GatewayErrorUnauthorized
	case goerrors.CategoryExternal:
		return GatewayErrorBackendFailure
	case goerrors.CategoryOperation:
		return GatewayErrorDispatchFailed
	default:
		return GatewayErrorInternal
	}
}

func gatewayHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MapError normalizes any error into the gateway's rich error envelope.
func MapError(err error) *goerrors.Error {
	return gatewayErrorMapper(err)
}
