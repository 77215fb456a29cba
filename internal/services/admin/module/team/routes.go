// Package team registers the team page routes.
package team

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/storeadmin/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/storeadmin/internal/services/admin/routepath"
)

// Service defines team route handlers consumed by this route module.
type Service interface {
	HandleTeamPage(w http.ResponseWriter, r *http.Request)
	HandleTeamTable(w http.ResponseWriter, r *http.Request)
	HandleDismiss(w http.ResponseWriter, r *http.Request)
	HandleUserEdit(w http.ResponseWriter, r *http.Request, userID string)
	HandleUserSave(w http.ResponseWriter, r *http.Request, userID string)
	// HandleUserDelete opens the confirmation on GET and decides on POST.
	HandleUserDelete(w http.ResponseWriter, r *http.Request, userID string)
	HandleInviteDelete(w http.ResponseWriter, r *http.Request, inviteID string)
	HandleInviteResend(w http.ResponseWriter, r *http.Request, inviteID string)
	HandleInviteCopyLink(w http.ResponseWriter, r *http.Request, inviteID string)
}

// RegisterRoutes wires team routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Team, allow(service.HandleTeamPage, http.MethodGet))
	mux.HandleFunc(routepath.TeamTable, allow(service.HandleTeamTable, http.MethodGet))
	mux.HandleFunc(routepath.TeamDismiss, allow(service.HandleDismiss, http.MethodPost))
	mux.HandleFunc(routepath.TeamPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleTeamPath(w, r, service)
	})
}

// HandleTeamPath parses user and invite subroutes and dispatches to service
// handlers.
func HandleTeamPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	parts, ok := sharedpath.Segments(w, r, routepath.TeamPrefix)
	if !ok {
		return
	}
	if len(parts) < 2 {
		http.NotFound(w, r)
		return
	}
	id := parts[1]
	action := ""
	if len(parts) == 3 {
		action = parts[2]
	}
	if len(parts) > 3 {
		http.NotFound(w, r)
		return
	}

	switch {
	case parts[0] == "users" && action == "":
		withID(service.HandleUserSave, id, http.MethodPost)(w, r)
	case parts[0] == "users" && action == "edit":
		withID(service.HandleUserEdit, id, http.MethodGet)(w, r)
	case parts[0] == "users" && action == "delete":
		withID(service.HandleUserDelete, id, http.MethodGet, http.MethodPost)(w, r)
	case parts[0] == "invites" && action == "delete":
		withID(service.HandleInviteDelete, id, http.MethodGet, http.MethodPost)(w, r)
	case parts[0] == "invites" && action == "resend":
		withID(service.HandleInviteResend, id, http.MethodPost)(w, r)
	case parts[0] == "invites" && action == "copy-link":
		withID(service.HandleInviteCopyLink, id, http.MethodPost)(w, r)
	default:
		http.NotFound(w, r)
	}
}

func withID(handle func(http.ResponseWriter, *http.Request, string), id string, methods ...string) http.HandlerFunc {
	return allow(func(w http.ResponseWriter, r *http.Request) {
		handle(w, r, id)
	}, methods...)
}

// allow rejects methods outside methods with 405.
func allow(next http.HandlerFunc, methods ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, method := range methods {
			if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
				next(w, r)
				return
			}
		}
		w.Header().Set("Allow", strings.Join(methods, ", "))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
