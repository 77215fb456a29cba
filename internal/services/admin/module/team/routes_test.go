package team

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastID   string
}

func (f *fakeService) HandleTeamPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "team_page"
}

func (f *fakeService) HandleTeamTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "team_table"
}

func (f *fakeService) HandleDismiss(http.ResponseWriter, *http.Request) {
	f.lastCall = "dismiss"
}

func (f *fakeService) HandleUserEdit(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "user_edit", id
}

func (f *fakeService) HandleUserSave(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "user_save", id
}

func (f *fakeService) HandleUserDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "user_delete", id
}

func (f *fakeService) HandleInviteDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "invite_delete", id
}

func (f *fakeService) HandleInviteResend(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "invite_resend", id
}

func (f *fakeService) HandleInviteCopyLink(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "invite_copy_link", id
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantCall string
		wantID   string
	}{
		{method: http.MethodGet, path: "/team", wantCode: http.StatusOK, wantCall: "team_page"},
		{method: http.MethodGet, path: "/team/table", wantCode: http.StatusOK, wantCall: "team_table"},
		{method: http.MethodPost, path: "/team/dismiss", wantCode: http.StatusOK, wantCall: "dismiss"},
		{method: http.MethodGet, path: "/team/users/u-1/edit", wantCode: http.StatusOK, wantCall: "user_edit", wantID: "u-1"},
		{method: http.MethodPost, path: "/team/users/u-1", wantCode: http.StatusOK, wantCall: "user_save", wantID: "u-1"},
		{method: http.MethodGet, path: "/team/users/u-1/delete", wantCode: http.StatusOK, wantCall: "user_delete", wantID: "u-1"},
		{method: http.MethodPost, path: "/team/users/u-1/delete", wantCode: http.StatusOK, wantCall: "user_delete", wantID: "u-1"},
		{method: http.MethodGet, path: "/team/invites/i-1/delete", wantCode: http.StatusOK, wantCall: "invite_delete", wantID: "i-1"},
		{method: http.MethodPost, path: "/team/invites/i-1/resend", wantCode: http.StatusOK, wantCall: "invite_resend", wantID: "i-1"},
		{method: http.MethodPost, path: "/team/invites/i-1/copy-link", wantCode: http.StatusOK, wantCall: "invite_copy_link", wantID: "i-1"},
		{method: http.MethodPost, path: "/team", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/team/dismiss", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/team/users/u-1", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/team/invites/i-1/resend", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/team/users", wantCode: http.StatusNotFound},
		{method: http.MethodGet, path: "/team/invites/i-1/edit", wantCode: http.StatusNotFound},
		{method: http.MethodGet, path: "/team/users/u-1/delete/extra", wantCode: http.StatusNotFound},
		{method: http.MethodGet, path: "/team/users/u-1/edit/", wantCode: http.StatusMovedPermanently},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastID = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastID != tc.wantID {
				t.Fatalf("lastID = %q, want %q", svc.lastID, tc.wantID)
			}
		})
	}
}

func TestRegisterRoutesNilInputs(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, &fakeService{})
	mux := http.NewServeMux()
	RegisterRoutes(mux, nil)

	req := httptest.NewRequest(http.MethodGet, "/team", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
