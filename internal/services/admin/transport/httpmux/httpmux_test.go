package httpmux

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func TestMountStaticServesAssets(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	staticFS := fstest.MapFS{
		"admin.css": &fstest.MapFile{Data: []byte("body{}")},
	}
	MountStatic(rootMux, staticFS, nil)

	req := httptest.NewRequest(http.MethodGet, "/static/admin.css", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Cache-Control"); got != staticCacheControl {
		t.Fatalf("Cache-Control = %q, want %q", got, staticCacheControl)
	}
}

func TestMountStaticAppliesWrapper(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	staticFS := fstest.MapFS{
		"admin.js": &fstest.MapFile{Data: []byte("void 0")},
	}
	MountStatic(rootMux, staticFS, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Wrapped", "yes")
			next.ServeHTTP(w, r)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/static/admin.js", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Header().Get("X-Wrapped") != "yes" {
		t.Fatalf("expected wrapper to run, headers = %v", rec.Header())
	}
}

func TestMountAdminRoutesMountsRoot(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/team", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("team"))
	})

	MountAdminRoutes(rootMux, adminMux)

	req := httptest.NewRequest(http.MethodGet, "/team", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "team" {
		t.Fatalf("body = %q, want %q", body, "team")
	}
}

func TestMountNoopsOnNilInputs(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountStatic(nil, fstest.MapFS{}, nil)
	MountStatic(rootMux, fs.FS(nil), nil)
	MountAdminRoutes(nil, http.NewServeMux())
	MountAdminRoutes(rootMux, nil)
}
