package migrations

import (
	"io/fs"
	"testing"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	want := []string{"001_operator_sessions.sql", "002_notifications.sql"}
	if len(files) != len(want) {
		t.Fatalf("migrations = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("migrations = %v, want %v", files, want)
		}
	}
}
