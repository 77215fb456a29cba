package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func decode(t *testing.T, value string) uuid.UUID {
	t.Helper()
	raw, err := encoding.DecodeString(strings.ToUpper(value))
	if err != nil {
		t.Fatalf("decode %q: %v", value, err)
	}
	parsed, err := uuid.FromBytes(raw)
	if err != nil {
		t.Fatalf("uuid from %q: %v", value, err)
	}
	return parsed
}

func TestNewIDIsLowercaseBase32UUID(t *testing.T) {
	t.Parallel()

	value, err := NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if len(value) != 26 || strings.ContainsAny(value, "=ABCDEFGHIJKLMNOPQRSTUVWXYZ01") {
		t.Fatalf("id = %q, want 26 lowercase base32 characters", value)
	}

	parsed := decode(t, value)
	if parsed.Version() != 4 {
		t.Fatalf("version = %d, want 4", parsed.Version())
	}
	if parsed.Variant() != uuid.RFC4122 {
		t.Fatalf("variant = %v, want RFC4122", parsed.Variant())
	}
}

func TestNewIDDoesNotRepeat(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 64)
	for range 64 {
		value, err := NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if _, dup := seen[value]; dup {
			t.Fatalf("duplicate id %q", value)
		}
		seen[value] = struct{}{}
	}
}
