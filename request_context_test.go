package heidelpay

import (
	"context"
	"testing"
)

func TestRequestMetadataRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestMetadata(context.Background(), RequestMetadata{AcceptLanguage: " de-DE ", RequestID: "req-123"})
	got, ok := RequestMetadataFromContext(ctx)
	if !ok {
		t.Fatalf("expected request metadata on context")
	}
	if got.AcceptLanguage != "de-DE" {
		t.Fatalf("unexpected accept-language %q", got.AcceptLanguage)
	}
	if got.RequestID != "req-123" {
		t.Fatalf("unexpected request id %q", got.RequestID)
	}
	if _, ok := RequestMetadataFromContext(context.Background()); ok {
		t.Fatalf("expected no metadata when not set")
	}
}
