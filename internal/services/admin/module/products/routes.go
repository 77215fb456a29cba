// Package products registers product and variant editing routes.
package products

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/storeadmin/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/storeadmin/internal/services/admin/routepath"
)

// Service defines product route handlers consumed by this route module.
type Service interface {
	HandleProductsPage(w http.ResponseWriter, r *http.Request)
	HandleProductPage(w http.ResponseWriter, r *http.Request, productID string)
	HandleProductUpdate(w http.ResponseWriter, r *http.Request, productID string)
	HandleProductStatus(w http.ResponseWriter, r *http.Request, productID string)
	HandleProductDelete(w http.ResponseWriter, r *http.Request, productID string)
	HandleVariantCreate(w http.ResponseWriter, r *http.Request, productID string)
	HandleVariantUpdate(w http.ResponseWriter, r *http.Request, productID string, variantID string)
	HandleVariantDelete(w http.ResponseWriter, r *http.Request, productID string, variantID string)
}

// RegisterRoutes wires product routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Products, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		service.HandleProductsPage(w, r)
	})
	mux.HandleFunc(routepath.ProductsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleProductPath(w, r, service)
	})
}

// HandleProductPath parses product subroutes and dispatches to service handlers.
func HandleProductPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	parts, ok := sharedpath.Segments(w, r, routepath.ProductsPrefix)
	if !ok {
		return
	}
	if len(parts) == 0 {
		http.NotFound(w, r)
		return
	}
	productID := parts[0]
	isPost := r.Method == http.MethodPost
	isGet := r.Method == http.MethodGet || r.Method == http.MethodHead

	switch {
	case len(parts) == 1:
		switch {
		case isGet:
			service.HandleProductPage(w, r, productID)
		case isPost:
			service.HandleProductUpdate(w, r, productID)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	case len(parts) == 2 && parts[1] == "status":
		if !isPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		service.HandleProductStatus(w, r, productID)
	case len(parts) == 2 && parts[1] == "delete":
		if !isGet && !isPost {
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
			return
		}
		service.HandleProductDelete(w, r, productID)
	case len(parts) == 2 && parts[1] == "variants":
		if !isPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		service.HandleVariantCreate(w, r, productID)
	case len(parts) == 3 && parts[1] == "variants":
		if !isPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		service.HandleVariantUpdate(w, r, productID, parts[2])
	case len(parts) == 4 && parts[1] == "variants" && parts[3] == "delete":
		if !isPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		service.HandleVariantDelete(w, r, productID, parts[2])
	default:
		http.NotFound(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
