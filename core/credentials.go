package core

import "strings"

const (
	// MetadataAuthorization is the outbound metadata key carrying the
	// propagated bearer credential.
	MetadataAuthorization = "authorization"

	bearerPrefix = "Bearer "
)

// ExtractToken reads the caller's credential from the inbound call headers.
// A "Bearer <token>" value is stripped to the bare token; any other
// non-empty value passes through unchanged; an absent header yields nothing.
func ExtractToken(headers map[string]string) (string, bool) {
	raw := headerValue(headers, "authorization")
	if raw == "" {
		return "", false
	}
	if strings.HasPrefix(raw, bearerPrefix) {
		token := strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
		if token == "" {
			return "", false
		}
		return token, true
	}
	return raw, true
}

// AttachToken sets the credential on the outbound call metadata. With no
// token the call goes out unauthenticated; backends reject protected
// operations themselves.
func AttachToken(md Metadata, token string) {
	if md == nil {
		return
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	md[MetadataAuthorization] = bearerPrefix + token
}

func headerValue(headers map[string]string, key string) string {
	for existing, value := range headers {
		if strings.EqualFold(strings.TrimSpace(existing), strings.TrimSpace(key)) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
