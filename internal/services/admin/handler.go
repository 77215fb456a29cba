package admin

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/storeadmin/internal/platform/requestctx"
	"github.com/louisbranch/storeadmin/internal/services/admin/cache"
	"github.com/louisbranch/storeadmin/internal/services/admin/i18n"
	productsmodule "github.com/louisbranch/storeadmin/internal/services/admin/module/products"
	teammodule "github.com/louisbranch/storeadmin/internal/services/admin/module/team"
	"github.com/louisbranch/storeadmin/internal/services/admin/mutation"
	"github.com/louisbranch/storeadmin/internal/services/admin/routepath"
	"github.com/louisbranch/storeadmin/internal/services/admin/static"
	"github.com/louisbranch/storeadmin/internal/services/admin/storage"
	"github.com/louisbranch/storeadmin/internal/services/admin/team"
	"github.com/louisbranch/storeadmin/internal/services/admin/templates"
	"github.com/louisbranch/storeadmin/internal/services/admin/transport/htmx"
	"github.com/louisbranch/storeadmin/internal/services/admin/transport/httpmux"
)

// defaultCacheTTL bounds how long remote reads are served from memory.
const defaultCacheTTL = 30 * time.Second

// APIClient is the remote API surface used by the admin UI.
type APIClient interface {
	cache.TeamClient
	cache.StoreClient
	cache.ProductClient
	mutation.TeamClient
	mutation.ProductClient
}

// LocalStore persists operator sessions and their queued notifications.
type LocalStore interface {
	storage.NotificationStore
	storage.OperatorSessionStore
}

// HandlerConfig defines the collaborators of the admin HTTP handler.
type HandlerConfig struct {
	Client APIClient
	Store  LocalStore
	// CacheTTL defaults to 30s.
	CacheTTL     time.Duration
	FilterPolicy team.Policy
	// PublicOrigin is the origin used in invite links when the store has no
	// invite link template. Defaults to the request origin.
	PublicOrigin string
	Clock        func() time.Time
	Tracer       trace.Tracer
}

// Handler routes admin requests.
type Handler struct {
	client       APIClient
	registry     *cache.Registry
	teamCache    *cache.Resource[cache.TeamSnapshot]
	settings     *cache.StoreSettings
	products     *cache.Products
	inbox        inboxNotifier
	sessions     *sessionStore
	policy       team.Policy
	publicOrigin string
	clock        func() time.Time
	tracer       trace.Tracer
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(config HandlerConfig) (http.Handler, error) {
	handler, err := newHandler(config)
	if err != nil {
		return nil, err
	}
	return handler.routes(), nil
}

func newHandler(config HandlerConfig) (*Handler, error) {
	if config.Client == nil {
		return nil, errors.New("api client is required")
	}
	if config.Store == nil {
		return nil, errors.New("local store is required")
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = defaultCacheTTL
	}
	if config.FilterPolicy == "" {
		config.FilterPolicy = team.PolicyReplace
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	origin, warning, err := checkPublicOrigin(config.PublicOrigin)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		log.Print(warning)
	}
	config.PublicOrigin = origin

	registry := cache.NewRegistry()
	clockOption := cache.WithClock(config.Clock)
	h := &Handler{
		client:       config.Client,
		registry:     registry,
		teamCache:    cache.NewTeam(registry, config.Client, config.CacheTTL, clockOption),
		settings:     cache.NewStoreSettings(registry, config.Client, config.CacheTTL, clockOption),
		products:     cache.NewProducts(registry, config.Client, config.CacheTTL, clockOption),
		inbox:        inboxNotifier{store: config.Store, clock: config.Clock},
		policy:       config.FilterPolicy,
		publicOrigin: config.PublicOrigin,
		clock:        config.Clock,
		tracer:       config.Tracer,
	}
	h.sessions = newSessionStore(config.Store, config.Clock, h.newOperatorSession)
	return h, nil
}

func (h *Handler) newOperatorSession(sessionID string) *operatorSession {
	localizer := newSessionLocalizer(i18n.Default())
	return &operatorSession{
		id:        sessionID,
		table:     team.NewTable(team.WithClock(h.clock), team.WithPolicy(h.policy)),
		localizer: localizer,
		team:      mutation.NewTeamActions(h.client, h.mutationDeps(localizer)),
		products:  make(map[string]*mutation.ProductActions),
	}
}

func (h *Handler) mutationDeps(localizer mutation.Localizer) mutation.Deps {
	return mutation.Deps{
		Notifier:    h.inbox,
		Invalidator: h.registry,
		Navigator:   flowNavigator{},
		Confirmer:   flowConfirmer{},
		Localizer:   localizer,
		Tracer:      h.tracer,
	}
}

func (h *Handler) productActions(session *operatorSession, productID string) *mutation.ProductActions {
	return session.productActions(productID, func(productID string) *mutation.ProductActions {
		return mutation.NewProductActions(productID, h.client, h.mutationDeps(session.localizer))
	})
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS, nil)

	adminMux := http.NewServeMux()
	adminMux.HandleFunc(routepath.Root, h.handleRoot)
	teammodule.RegisterRoutes(adminMux, newTeamModuleService(h))
	productsmodule.RegisterRoutes(adminMux, newProductsModuleService(h))
	httpmux.MountAdminRoutes(rootMux, h.withSession(adminMux))
	return rootMux
}

// withSession resolves the operator session and the request language.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := h.sessions.resolve(w, r)
		if err != nil {
			log.Printf("resolve operator session: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		tag, persist := i18n.ResolveTag(r)
		if persist {
			i18n.SetLanguageCookie(w, tag)
		}
		session.localizer.set(tag)

		ctx := requestctx.WithSessionID(r.Context(), session.id)
		ctx = requestctx.WithLocale(ctx, tag.String())
		ctx = withOperatorSession(ctx, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		h.renderNotFound(w, r)
		return
	}
	http.Redirect(w, r, routepath.Team, http.StatusFound)
}

// pageContext builds the layout context and drains the session's toasts.
func (h *Handler) pageContext(r *http.Request, titleKey string) templates.PageContext {
	ctx := r.Context()
	loc := h.localizer(r)
	return templates.PageContext{
		Lang:         requestctx.LocaleFromContext(ctx),
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		Title:        templates.T(loc, titleKey),
		Toasts:       h.inbox.drainToasts(ctx),
	}
}

func (h *Handler) localizer(r *http.Request) templates.Localizer {
	if session := operatorSessionFromContext(r.Context()); session != nil {
		return session.localizer
	}
	return i18n.Printer(i18n.Default())
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page templates.PageContext, body templ.Component) {
	h.renderStatus(w, r, http.StatusOK, page, body)
}

// renderStatus renders body inside the layout, or body plus out-of-band
// toasts for HTMX requests.
func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int, page templates.PageContext, body templ.Component) {
	h.renderParts(w, r, status, page, body, body)
}

// renderParts renders fragment for partial HTMX requests and body inside the layout
// otherwise.
func (h *Handler) renderParts(w http.ResponseWriter, r *http.Request, status int, page templates.PageContext, fragment templ.Component, body templ.Component) {
	withToasts := templ.Join(fragment, templates.Toasts(page.Toasts))
	htmx.Render(w, r, status, withToasts, templates.AppLayout(page, body), htmx.TitleTag(templates.PageTitle(page)))
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(r, "core.error.not_found")
	body := templates.Message(page.Title)
	h.renderStatus(w, r, http.StatusNotFound, page, body)
}

// logMutationError logs failed writes. Errors were already shown to the
// operator; in-flight rejections are expected and not logged.
func logMutationError(action string, err error) {
	if err == nil || errors.Is(err, mutation.ErrInFlight) {
		return
	}
	log.Printf("%s: %v", action, err)
}

// checkPublicOrigin normalizes the configured origin for invite links. An
// empty origin is accepted with a warning: fallback links then follow the
// client-supplied Host header.
func checkPublicOrigin(raw string) (origin string, warning string, err error) {
	origin = strings.TrimSuffix(strings.TrimSpace(raw), "/")
	if origin == "" {
		return "", "public origin is not set; fallback invite links will use the request Host header", nil
	}
	parsed, err := url.Parse(origin)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" || parsed.Path != "" || parsed.RawQuery != "" {
		return "", "", fmt.Errorf("public origin %q must be an absolute http(s) origin", raw)
	}
	return origin, "", nil
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded == "https" || forwarded == "http" {
		scheme = forwarded
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
