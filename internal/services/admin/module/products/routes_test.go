package products

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall      string
	lastProductID string
	lastVariantID string
}

func (f *fakeService) HandleProductsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "products_page"
}

func (f *fakeService) HandleProductPage(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall, f.lastProductID = "product_page", productID
}

func (f *fakeService) HandleProductUpdate(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall, f.lastProductID = "product_update", productID
}

func (f *fakeService) HandleProductStatus(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall, f.lastProductID = "product_status", productID
}

func (f *fakeService) HandleProductDelete(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall, f.lastProductID = "product_delete", productID
}

func (f *fakeService) HandleVariantCreate(_ http.ResponseWriter, _ *http.Request, productID string) {
	f.lastCall, f.lastProductID = "variant_create", productID
}

func (f *fakeService) HandleVariantUpdate(_ http.ResponseWriter, _ *http.Request, productID string, variantID string) {
	f.lastCall, f.lastProductID, f.lastVariantID = "variant_update", productID, variantID
}

func (f *fakeService) HandleVariantDelete(_ http.ResponseWriter, _ *http.Request, productID string, variantID string) {
	f.lastCall, f.lastProductID, f.lastVariantID = "variant_delete", productID, variantID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method      string
		path        string
		wantCode    int
		wantCall    string
		wantProduct string
		wantVariant string
	}{
		{method: http.MethodGet, path: "/products", wantCode: http.StatusOK, wantCall: "products_page"},
		{method: http.MethodGet, path: "/products/p-1", wantCode: http.StatusOK, wantCall: "product_page", wantProduct: "p-1"},
		{method: http.MethodPost, path: "/products/p-1", wantCode: http.StatusOK, wantCall: "product_update", wantProduct: "p-1"},
		{method: http.MethodPost, path: "/products/p-1/status", wantCode: http.StatusOK, wantCall: "product_status", wantProduct: "p-1"},
		{method: http.MethodGet, path: "/products/p-1/delete", wantCode: http.StatusOK, wantCall: "product_delete", wantProduct: "p-1"},
		{method: http.MethodPost, path: "/products/p-1/delete", wantCode: http.StatusOK, wantCall: "product_delete", wantProduct: "p-1"},
		{method: http.MethodPost, path: "/products/p-1/variants", wantCode: http.StatusOK, wantCall: "variant_create", wantProduct: "p-1"},
		{method: http.MethodPost, path: "/products/p-1/variants/v-1", wantCode: http.StatusOK, wantCall: "variant_update", wantProduct: "p-1", wantVariant: "v-1"},
		{method: http.MethodPost, path: "/products/p-1/variants/v-1/delete", wantCode: http.StatusOK, wantCall: "variant_delete", wantProduct: "p-1", wantVariant: "v-1"},
		{method: http.MethodPost, path: "/products", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodDelete, path: "/products/p-1", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/products/p-1/status", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/products/p-1/variants", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/products/p-1/variants/v-1/delete", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/products/p-1/unknown", wantCode: http.StatusNotFound},
		{method: http.MethodGet, path: "/products/p-1/variants/v-1/edit", wantCode: http.StatusNotFound},
		{method: http.MethodGet, path: "/products/p-1/", wantCode: http.StatusMovedPermanently},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			svc.lastCall, svc.lastProductID, svc.lastVariantID = "", "", ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastProductID != tc.wantProduct {
				t.Fatalf("product = %q, want %q", svc.lastProductID, tc.wantProduct)
			}
			if svc.lastVariantID != tc.wantVariant {
				t.Fatalf("variant = %q, want %q", svc.lastVariantID, tc.wantVariant)
			}
		})
	}
}

func TestHandleProductPathNilService(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/products/p-1", nil)
	rec := httptest.NewRecorder()
	HandleProductPath(rec, req, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
