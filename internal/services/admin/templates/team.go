package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/louisbranch/storeadmin/internal/services/admin/routepath"
)

// TeamPageView provides data for the team page.
type TeamPageView struct {
	Heading PageHeading
	Search  string
	Filter  string
	Content TeamContentView
	// At most one of Edit, Confirm and InviteLink is set.
	Edit       *EditUserView
	Confirm    *ConfirmView
	InviteLink *InviteLinkView
}

// TeamContentView is the swappable part of the team page: facets and table.
type TeamContentView struct {
	Facets          []FacetGroupView
	Rows            []TeamRowView
	FilterError     string
	LoadError       string
	SettingsLoading bool
	ClearURL        string
}

// FacetGroupView is one facet sidebar section.
type FacetGroupView struct {
	Title   string
	Options []FacetOptionView
}

// FacetOptionView is a selectable facet with its count.
type FacetOptionView struct {
	ID     string
	Title  string
	Count  int
	Active bool
	URL    string
}

// TeamRowView is one rendered user or invite.
type TeamRowView struct {
	Key      string
	Name     string
	Initials string
	Email    string
	Role     string
	Status   string
	Expired  bool
	Actions  []RowActionView
}

// RowActionView is a row action. Post actions submit a form; others are links.
type RowActionView struct {
	Label    string
	URL      string
	Post     bool
	Danger   bool
	Disabled bool
}

// EditUserView is the edit-user modal.
type EditUserView struct {
	Email     string
	FirstName string
	LastName  string
	Roles     []RoleOption
	ActionURL string
	CancelURL string
	Busy      bool
}

// RoleOption is a role select option.
type RoleOption struct {
	Value    string
	Label    string
	Selected bool
}

// InviteLinkView shows a copied invite link.
type InviteLinkView struct {
	Email string
	Link  string
}

// TeamPage renders the full team page body.
func TeamPage(page PageContext, view TeamPageView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		loc := page.Loc
		pageHeading(h, view.Heading)

		h.raw(`<div class="flex gap-4 my-4"><form role="search" method="get"`)
		h.attr("action", routepath.TeamTable)
		h.attr("hx-get", routepath.TeamTable)
		h.raw(` hx-target="#team-content" hx-swap="outerHTML" hx-trigger="submit, input changed delay:300ms from:input[name=q]"><input type="search" name="q"`)
		h.attr("value", view.Search)
		h.attr("placeholder", T(loc, "core.search.placeholder"))
		h.attr("aria-label", T(loc, "core.search.placeholder"))
		h.raw(`><button type="submit" class="btn">`)
		h.text(T(loc, "core.search.submit"))
		h.raw(`</button></form><form method="get"`)
		h.attr("action", routepath.TeamTable)
		h.attr("hx-get", routepath.TeamTable)
		h.raw(` hx-target="#team-content" hx-swap="outerHTML"><input type="text" name="filter" class="w-96"`)
		h.attr("value", view.Filter)
		h.attr("placeholder", T(loc, "core.filter.placeholder"))
		h.raw(`><button type="submit" class="btn">`)
		h.text(T(loc, "core.filter.apply"))
		h.raw("</button></form></div>")

		h.component(ctx, TeamContent(page, view.Content))

		switch {
		case view.Edit != nil:
			editUserModal(h, loc, *view.Edit)
		case view.Confirm != nil:
			confirmDialog(h, loc, *view.Confirm)
		case view.InviteLink != nil:
			inviteLinkDialog(h, loc, *view.InviteLink)
		}
	})
}

// TeamContent renders the facet sidebar and the table.
func TeamContent(page PageContext, view TeamContentView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		loc := page.Loc
		h.raw(`<div id="team-content" class="team-layout"><aside>`)
		for _, group := range view.Facets {
			h.raw(`<section class="facet-group"><h2 class="font-semibold">`)
			h.text(group.Title)
			h.raw("</h2><ul>")
			for _, option := range group.Options {
				h.raw("<li><a")
				h.attr("href", option.URL)
				h.attr("hx-get", option.URL)
				h.raw(` hx-target="#team-content" hx-swap="outerHTML"`)
				if option.Active {
					h.raw(` class="active" aria-current="true"`)
				}
				h.raw(">")
				h.text(option.Title)
				h.raw(`<span class="facet-count">`)
				h.text(strconv.Itoa(option.Count))
				h.raw("</span></a></li>")
			}
			h.raw("</ul></section>")
		}
		if view.ClearURL != "" {
			h.raw("<a")
			h.attr("href", view.ClearURL)
			h.attr("hx-get", view.ClearURL)
			h.raw(` hx-target="#team-content" hx-swap="outerHTML">`)
			h.text(T(loc, "core.filter.clear"))
			h.raw("</a>")
		}
		h.raw("</aside><section>")
		if view.FilterError != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(view.FilterError)
			h.raw("</p>")
		}
		if view.SettingsLoading {
			h.raw(`<p class="text-sm" aria-live="polite">`)
			h.text(T(loc, "core.settings.loading"))
			h.raw("</p>")
		}
		teamTable(h, loc, view)
		h.raw("</section></div>")
	})
}

func teamTable(h *htmlWriter, loc Localizer, view TeamContentView) {
	if view.LoadError != "" {
		h.raw(`<p class="form-error" role="alert">`)
		h.text(view.LoadError)
		h.raw("</p>")
		return
	}
	if len(view.Rows) == 0 {
		h.raw("<p>")
		h.text(T(loc, "core.empty"))
		h.raw("</p>")
		return
	}
	h.raw("<table><thead><tr><th>")
	h.text(T(loc, "team.column.name"))
	h.raw("</th><th>")
	h.text(T(loc, "team.column.email"))
	h.raw("</th><th>")
	h.text(T(loc, "team.column.role"))
	h.raw("</th><th></th></tr></thead><tbody>")
	for _, row := range view.Rows {
		h.raw("<tr")
		h.attr("id", row.Key)
		h.raw(`><td><span class="avatar" aria-hidden="true">`)
		h.text(row.Initials)
		h.raw("</span>")
		h.text(row.Name)
		h.raw("</td><td>")
		h.text(row.Email)
		h.raw("</td><td>")
		if row.Status != "" {
			class := "badge"
			if row.Expired {
				class = "badge badge-expired"
			}
			h.raw("<span")
			h.attr("class", class)
			h.raw(">")
			h.text(row.Status)
			h.raw("</span>")
		} else {
			h.text(row.Role)
		}
		h.raw(`</td><td class="actions">`)
		for _, action := range row.Actions {
			rowAction(h, action)
		}
		h.raw("</td></tr>")
	}
	h.raw("</tbody></table>")
}

func rowAction(h *htmlWriter, action RowActionView) {
	class := "btn btn-sm"
	if action.Danger {
		class += " btn-error"
	}
	if action.Post {
		postButton(h, action.URL, action.Label, class, action.Disabled, nil)
		return
	}
	if action.Disabled {
		h.raw("<button type=\"button\" disabled")
		h.attr("class", class)
		h.raw(">")
		h.text(action.Label)
		h.raw("</button>")
		return
	}
	h.raw("<a")
	h.attr("class", class)
	h.attr("href", action.URL)
	h.attr("hx-get", action.URL)
	h.raw(` hx-target="#main">`)
	h.text(action.Label)
	h.raw("</a>")
}

func editUserModal(h *htmlWriter, loc Localizer, view EditUserView) {
	h.raw(`<dialog class="modal modal-open" aria-modal="true"><div class="modal-box"><h3 class="text-lg font-bold">`)
	h.text(T(loc, "team.user.edit.heading"))
	h.raw("</h3><p>")
	h.text(view.Email)
	h.raw(`</p><form method="post"`)
	h.attr("action", view.ActionURL)
	h.attr("hx-post", view.ActionURL)
	h.raw(` hx-target="#main">`)
	textField(h, "first_name", T(loc, "team.user.first_name"), view.FirstName)
	textField(h, "last_name", T(loc, "team.user.last_name"), view.LastName)
	h.raw(`<label class="form-control"><span>`)
	h.text(T(loc, "team.user.role"))
	h.raw(`</span><select name="role">`)
	for _, role := range view.Roles {
		h.raw("<option")
		h.attr("value", role.Value)
		h.flag("selected", role.Selected)
		h.raw(">")
		h.text(role.Label)
		h.raw("</option>")
	}
	h.raw(`</select></label><div class="modal-action"><button type="submit" class="btn btn-primary"`)
	h.flag("disabled", view.Busy)
	h.raw(">")
	h.text(T(loc, "core.action.save"))
	h.raw("</button></div></form>")
	postButton(h, view.CancelURL, T(loc, "core.action.cancel"), "btn", false, nil)
	h.raw("</div></dialog>")
}

func inviteLinkDialog(h *htmlWriter, loc Localizer, view InviteLinkView) {
	h.raw(`<dialog class="modal modal-open" aria-modal="true"><div class="modal-box"><h3 class="text-lg font-bold">`)
	h.text(T(loc, "team.invite.link"))
	h.raw("</h3><p>")
	h.text(view.Email)
	h.raw(`</p><input type="text" readonly class="w-full"`)
	h.attr("value", view.Link)
	h.attr("data-copy-link", view.Link)
	h.raw(`><div class="modal-action">`)
	postButton(h, routepath.TeamDismiss, T(loc, "core.action.close"), "btn", false, nil)
	h.raw("</div></div></dialog>")
}

func textField(h *htmlWriter, name string, label string, value string) {
	h.raw(`<label class="form-control"><span>`)
	h.text(label)
	h.raw(`</span><input type="text"`)
	h.attr("name", name)
	h.attr("value", value)
	h.raw("></label>")
}
