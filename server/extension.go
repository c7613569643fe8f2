package server

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/laxmi-genai/adk-a2ui-samples/a2ui"
)

type requestedExtensionsKey struct{}

type responseHeaderKey struct{}

// ExtensionMiddleware records the extension URIs a client requested via the
// X-A2A-Extensions header and keeps a handle on the response headers so the
// executor can acknowledge an activation later in the request lifecycle.
func ExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if requested := parseExtensionHeader(r.Header.Values(a2ui.ExtensionHeader)); len(requested) > 0 {
			ctx = context.WithValue(ctx, requestedExtensionsKey{}, requested)
		}
		ctx = context.WithValue(ctx, responseHeaderKey{}, w.Header())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActivateExtension acknowledges an extension by echoing its URI into the
// response headers, but only when the client requested it. Returns whether
// the activation happened. Callers treat a false result as non-fatal: the
// interaction proceeds without the extension.
func ActivateExtension(ctx context.Context, uri string) bool {
	requested, _ := ctx.Value(requestedExtensionsKey{}).([]string)
	if !slices.Contains(requested, uri) {
		return false
	}
	header, _ := ctx.Value(responseHeaderKey{}).(http.Header)
	if header == nil {
		return false
	}
	header.Add(a2ui.ExtensionHeader, uri)
	return true
}

// parseExtensionHeader splits comma-separated header values into URIs.
func parseExtensionHeader(values []string) []string {
	var uris []string
	for _, value := range values {
		for _, uri := range strings.Split(value, ",") {
			if uri = strings.TrimSpace(uri); uri != "" {
				uris = append(uris, uri)
			}
		}
	}
	return uris
}
