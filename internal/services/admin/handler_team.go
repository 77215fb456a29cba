package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
	"github.com/louisbranch/storeadmin/internal/services/admin/mutation"
	"github.com/louisbranch/storeadmin/internal/services/admin/routepath"
	"github.com/louisbranch/storeadmin/internal/services/admin/team"
	"github.com/louisbranch/storeadmin/internal/services/admin/templates"
	"github.com/louisbranch/storeadmin/internal/services/admin/transport/htmx"
)

// Query parameters of the team table.
const (
	teamFacetParam  = "facet"
	teamSearchParam = "q"
	teamFilterParam = "filter"
	teamClearParam  = "clear"
)

var editableRoles = []commerce.Role{commerce.RoleMember, commerce.RoleAdmin}

// requireSession returns the operator session attached by withSession.
func requireSession(w http.ResponseWriter, r *http.Request) (*operatorSession, bool) {
	session := operatorSessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "operator session unavailable", http.StatusInternalServerError)
		return nil, false
	}
	return session, true
}

// loadTeam feeds the latest cached snapshot into the session table.
func (h *Handler) loadTeam(ctx context.Context, session *operatorSession) error {
	entry, err := h.teamCache.Get(ctx)
	if err != nil {
		return err
	}
	session.table.Load(entry.Generation, entry.Value.Users, entry.Value.Invites)
	return nil
}

func (h *Handler) handleTeamPage(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	h.renderTeamPage(w, r, session, nil)
}

// renderTeamPage loads the team and renders the page with the pending action
// and, when set, the copied invite link.
func (h *Handler) renderTeamPage(w http.ResponseWriter, r *http.Request, session *operatorSession, inviteLink *templates.InviteLinkView) {
	ctx := r.Context()
	h.settings.Prefetch(ctx)
	loadErr := h.loadTeam(ctx, session)
	if loadErr != nil {
		log.Printf("load team: %v", loadErr)
	}

	page := h.pageContext(r, "team.title")
	view := templates.TeamPageView{
		Heading: templates.PageHeading{Title: page.Title},
		Content: h.teamContentView(page.Loc, session, loadErr, ""),
	}
	filters := session.table.Filters()
	view.Search = filters.SearchTerm()
	if expression := filters.Expression(); expression != nil {
		view.Filter = expression.String()
	}
	if inviteLink != nil {
		view.InviteLink = inviteLink
	} else {
		h.applyPending(page.Loc, session, &view)
	}
	h.render(w, r, page, templates.TeamPage(page, view))
}

func (h *Handler) teamContentView(loc templates.Localizer, session *operatorSession, loadErr error, filterErr string) templates.TeamContentView {
	settingsLoading := h.settings.Loading()
	view := templates.TeamContentView{
		FilterError:     filterErr,
		SettingsLoading: settingsLoading,
	}
	if loadErr != nil {
		view.LoadError = templates.T(loc, "core.error.load")
		return view
	}

	filters := session.table.Filters()
	if !filters.IsEmpty() {
		view.ClearURL = templates.AppendQueryParam(routepath.TeamTable, teamClearParam, "1")
	}
	for _, group := range session.table.Facets() {
		groupView := templates.FacetGroupView{Title: templates.T(loc, group.Title)}
		for _, option := range group.Options {
			groupView.Options = append(groupView.Options, templates.FacetOptionView{
				ID:     option.ID,
				Title:  templates.T(loc, option.Title),
				Count:  option.Count,
				Active: filters.Facet() == option.ID,
				URL:    templates.AppendQueryParam(routepath.TeamTable, teamFacetParam, option.ID),
			})
		}
		view.Facets = append(view.Facets, groupView)
	}
	for _, row := range session.table.Rows(team.RowContext{SettingsLoading: settingsLoading}) {
		view.Rows = append(view.Rows, teamRowView(loc, row))
	}
	return view
}

func teamRowView(loc templates.Localizer, row team.Row) templates.TeamRowView {
	view := templates.TeamRowView{
		Key:      row.Key,
		Name:     row.Name,
		Initials: row.Initials,
		Email:    row.Email,
		Expired:  row.Status == team.InviteExpired,
	}
	if row.RoleLabel != "" {
		view.Role = templates.T(loc, row.RoleLabel)
	}
	if row.Status != "" {
		view.Status = templates.T(loc, "team.status."+string(row.Status))
	}
	for _, action := range row.Actions {
		actionView := templates.RowActionView{
			Label:    templates.T(loc, action.Label),
			Danger:   action.Danger,
			Disabled: action.Disabled,
		}
		switch {
		case action.Kind == team.ActionEdit:
			actionView.URL = routepath.TeamUserEdit(row.ID)
		case action.Kind == team.ActionDelete && row.Type == team.EntityUser:
			actionView.URL = routepath.TeamUserDelete(row.ID)
		case action.Kind == team.ActionDelete:
			actionView.URL = routepath.TeamInviteDelete(row.ID)
		case action.Kind == team.ActionResend:
			actionView.URL = routepath.TeamInviteResend(row.ID)
			actionView.Post = true
		case action.Kind == team.ActionCopyLink:
			actionView.URL = routepath.TeamInviteCopyLink(row.ID)
			actionView.Post = true
		default:
			continue
		}
		view.Actions = append(view.Actions, actionView)
	}
	return view
}

// applyPending renders the session's open edit or confirmation.
func (h *Handler) applyPending(loc templates.Localizer, session *operatorSession, view *templates.TeamPageView) {
	pending := session.table.Pending()
	inFlight := session.team.InFlight()
	switch pending.Kind() {
	case team.PendingEditUser:
		user, _ := pending.User()
		edit := &templates.EditUserView{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			ActionURL: routepath.TeamUser(user.ID),
			CancelURL: routepath.TeamDismiss,
			Busy:      inFlight.UpdatingUser,
		}
		for _, role := range editableRoles {
			edit.Roles = append(edit.Roles, templates.RoleOption{
				Value:    string(role),
				Label:    templates.T(loc, "team.role."+string(role)),
				Selected: role == user.Role,
			})
		}
		view.Edit = edit
	case team.PendingConfirmUserDelete:
		user, _ := pending.User()
		view.Confirm = &templates.ConfirmView{
			Heading:    templates.T(loc, "team.user.delete.heading"),
			Text:       templates.T(loc, "team.user.delete.text"),
			ConfirmURL: routepath.TeamUserDelete(user.ID),
			CancelURL:  routepath.TeamUserDelete(user.ID),
			Busy:       inFlight.DeletingUser,
		}
	case team.PendingConfirmInviteDelete:
		invite, _ := pending.Invite()
		view.Confirm = &templates.ConfirmView{
			Heading:    templates.T(loc, "team.invite.delete.heading"),
			Text:       templates.T(loc, "team.invite.delete.text"),
			ConfirmURL: routepath.TeamInviteDelete(invite.ID),
			CancelURL:  routepath.TeamInviteDelete(invite.ID),
			Busy:       inFlight.DeletingInvite,
		}
	}
}

// handleTeamTable applies the query's filter changes and renders the table.
// HTMX requests receive only the swappable content.
func (h *Handler) handleTeamTable(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	h.settings.Prefetch(ctx)
	loadErr := h.loadTeam(ctx, session)
	if loadErr != nil {
		log.Printf("load team: %v", loadErr)
	}

	page := h.pageContext(r, "team.title")
	query := r.URL.Query()
	// Filter errors render inline with 200 so HTMX swaps them in.
	filterErr := ""
	switch {
	case query.Has(teamClearParam):
		session.table.ClearFilters()
	case query.Has(teamFacetParam):
		if err := session.table.SelectFacet(query.Get(teamFacetParam)); err != nil {
			filterErr = templates.T(page.Loc, "core.filter.invalid", query.Get(teamFacetParam))
		}
	case query.Has(teamFilterParam):
		if err := session.table.ApplyExpression(query.Get(teamFilterParam)); err != nil {
			filterErr = templates.T(page.Loc, "core.filter.invalid", err.Error())
		}
	}
	if query.Has(teamSearchParam) {
		session.table.Search(strings.TrimSpace(query.Get(teamSearchParam)))
	}

	content := h.teamContentView(page.Loc, session, loadErr, filterErr)
	filters := session.table.Filters()
	view := templates.TeamPageView{
		Heading: templates.PageHeading{Title: page.Title},
		Search:  filters.SearchTerm(),
		Content: content,
	}
	if expression := filters.Expression(); expression != nil {
		view.Filter = expression.String()
	}
	h.applyPending(page.Loc, session, &view)
	h.renderParts(w, r, http.StatusOK, page, templates.TeamContent(page, content), templates.TeamPage(page, view))
}

func (h *Handler) handleTeamDismiss(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	session.table.Dismiss()
	htmx.Redirect(w, r, routepath.Team)
}

// selectTeamRecord loads the team and opens a pending action on it.
func (h *Handler) selectTeamRecord(w http.ResponseWriter, r *http.Request, session *operatorSession, sel func() error) {
	if err := h.loadTeam(r.Context(), session); err != nil {
		log.Printf("load team: %v", err)
	}
	if err := sel(); err != nil {
		if errors.Is(err, team.ErrRecordNotFound) {
			h.renderNotFound(w, r)
			return
		}
		log.Printf("select team record: %v", err)
		http.Error(w, "unable to open team record", http.StatusInternalServerError)
		return
	}
	h.renderTeamPage(w, r, session, nil)
}

func (h *Handler) handleUserEdit(w http.ResponseWriter, r *http.Request, userID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	h.selectTeamRecord(w, r, session, func() error {
		return session.table.EditUser(userID)
	})
}

func (h *Handler) handleUserSave(w http.ResponseWriter, r *http.Request, userID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	patch, err := parseUserPatch(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = session.team.UpdateUser(r.Context(), userID, patch, mutation.Then(session.table.Dismiss))
	logMutationError("update user", err)
	htmx.Redirect(w, r, routepath.Team)
}

// parseUserPatch reads the edit-user form. Absent fields stay untouched.
func parseUserPatch(r *http.Request) (commerce.UserPatch, error) {
	var patch commerce.UserPatch
	if r.PostForm.Has("first_name") {
		firstName := strings.TrimSpace(r.PostForm.Get("first_name"))
		patch.FirstName = &firstName
	}
	if r.PostForm.Has("last_name") {
		lastName := strings.TrimSpace(r.PostForm.Get("last_name"))
		patch.LastName = &lastName
	}
	if r.PostForm.Has("role") {
		role := commerce.Role(strings.TrimSpace(r.PostForm.Get("role")))
		if role != commerce.RoleMember && role != commerce.RoleAdmin {
			return commerce.UserPatch{}, errors.New("unknown role")
		}
		patch.Role = &role
	}
	return patch, nil
}

// handleUserDelete opens the confirmation on GET. On POST, a cancel decision
// dismisses it and anything else deletes the user.
func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request, userID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodPost {
		h.selectTeamRecord(w, r, session, func() error {
			return session.table.ConfirmUserDelete(userID)
		})
		return
	}
	if r.PostFormValue("decision") == decisionCancel {
		session.table.Dismiss()
		htmx.Redirect(w, r, routepath.Team)
		return
	}
	err := session.team.DeleteUser(r.Context(), userID, mutation.Then(session.table.Dismiss))
	logMutationError("delete user", err)
	htmx.Redirect(w, r, routepath.Team)
}

func (h *Handler) handleInviteDelete(w http.ResponseWriter, r *http.Request, inviteID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodPost {
		h.selectTeamRecord(w, r, session, func() error {
			return session.table.ConfirmInviteDelete(inviteID)
		})
		return
	}
	if r.PostFormValue("decision") == decisionCancel {
		session.table.Dismiss()
		htmx.Redirect(w, r, routepath.Team)
		return
	}
	err := session.team.DeleteInvite(r.Context(), inviteID, mutation.Then(session.table.Dismiss))
	logMutationError("delete invite", err)
	htmx.Redirect(w, r, routepath.Team)
}

func (h *Handler) handleInviteResend(w http.ResponseWriter, r *http.Request, inviteID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	err := session.team.ResendInvite(r.Context(), inviteID)
	logMutationError("resend invite", err)
	htmx.Redirect(w, r, routepath.Team)
}

// handleInviteCopyLink builds the invite link from the store template and
// shows it for copying.
func (h *Handler) handleInviteCopyLink(w http.ResponseWriter, r *http.Request, inviteID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := h.loadTeam(ctx, session); err != nil {
		log.Printf("load team: %v", err)
	}
	record, found := session.table.Find(team.EntityInvite, inviteID)
	if !found {
		h.renderNotFound(w, r)
		return
	}
	invite, _ := record.Invite()

	loc := h.localizer(r)
	store, err := h.settings.Get(ctx)
	if err != nil {
		log.Printf("load store settings: %v", err)
		h.inbox.Notify(ctx, templates.T(loc, "notify.error.title"), mutation.MessageFromError(loc, err), mutation.KindError)
		htmx.Redirect(w, r, routepath.Team)
		return
	}
	origin := h.publicOrigin
	if origin == "" {
		origin = requestOrigin(r)
	}
	link := team.InviteLink(store.InviteLinkTemplate, origin, invite.Token)
	h.inbox.Notify(ctx, templates.T(loc, "notify.success.title"), templates.T(loc, "team.invite.link_copied"), mutation.KindSuccess)
	h.renderTeamPage(w, r, session, &templates.InviteLinkView{Email: invite.UserEmail, Link: link})
}
