// Package httpmux mounts the admin surfaces on the root mux.
package httpmux

import (
	"io/fs"
	"net/http"

	routepath "github.com/louisbranch/storeadmin/internal/services/admin/routepath"
)

// staticCacheControl lets browsers reuse assets between page loads.
const staticCacheControl = "public, max-age=300"

// MountStatic wires static asset serving into the root mux. wrap, when set,
// decorates the file server.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := withCacheControl(http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS))))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountAdminRoutes mounts the admin application under the root path.
func MountAdminRoutes(rootMux *http.ServeMux, admin http.Handler) {
	if rootMux == nil || admin == nil {
		return
	}
	rootMux.Handle(routepath.Root, admin)
}

func withCacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", staticCacheControl)
		next.ServeHTTP(w, r)
	})
}
