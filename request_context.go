package heidelpay

import (
	"context"
	"strings"
)

// RequestMetadata carries per call header values for the HTTP backend.
type RequestMetadata struct {
	// The preferred locale for customer messages of server errors
	//
	// Example: de-DE
	AcceptLanguage string
	// Unique key for the request for tracing purposes. Generated when empty.
	//
	// Example: 3b1f6c1e-1d0b-4a53-9e86-2a8d4b3c9d10
	RequestID string
}

type requestMetadataKey struct{}

// ContextWithRequestMetadata returns a copy of ctx carrying md.
func ContextWithRequestMetadata(ctx context.Context, md RequestMetadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	md.AcceptLanguage = strings.TrimSpace(md.AcceptLanguage)
	md.RequestID = strings.TrimSpace(md.RequestID)
	return context.WithValue(ctx, requestMetadataKey{}, md)
}

// RequestMetadataFromContext extracts metadata stored with
// [ContextWithRequestMetadata].
func RequestMetadataFromContext(ctx context.Context) (RequestMetadata, bool) {
	if ctx == nil {
		return RequestMetadata{}, false
	}
	md, ok := ctx.Value(requestMetadataKey{}).(RequestMetadata)
	return md, ok
}
