package requestctx

import (
	"context"
	"testing"
)

func TestSessionIDFromContextRoundTrip(t *testing.T) {
	ctx := WithSessionID(context.Background(), "sess-42")
	got := SessionIDFromContext(ctx)
	if got != "sess-42" {
		t.Fatalf("SessionIDFromContext = %q, want %q", got, "sess-42")
	}
}

func TestSessionIDFromContextEmpty(t *testing.T) {
	got := SessionIDFromContext(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSessionIDFromContextNil(t *testing.T) {
	got := SessionIDFromContext(nil)
	if got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithSessionIDNilContext(t *testing.T) {
	ctx := WithSessionID(nil, "sess-99")
	if ctx == nil {
		t.Fatalf("expected non-nil context")
	}
	if got := SessionIDFromContext(ctx); got != "sess-99" {
		t.Fatalf("SessionIDFromContext = %q, want %q", got, "sess-99")
	}
}

func TestLocaleRoundTrip(t *testing.T) {
	ctx := WithLocale(WithSessionID(context.Background(), "sess-1"), "cs-CZ")
	if got := LocaleFromContext(ctx); got != "cs-CZ" {
		t.Fatalf("LocaleFromContext = %q, want %q", got, "cs-CZ")
	}
	if got := SessionIDFromContext(ctx); got != "sess-1" {
		t.Fatalf("session lost: %q", got)
	}
}
