package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/storeadmin/internal/platform/id"
	"github.com/louisbranch/storeadmin/internal/platform/timeouts"
	"github.com/louisbranch/storeadmin/internal/services/admin/i18n"
	"github.com/louisbranch/storeadmin/internal/services/admin/mutation"
	"github.com/louisbranch/storeadmin/internal/services/admin/storage"
	"github.com/louisbranch/storeadmin/internal/services/admin/team"
)

const (
	// sessionCookieName stores the operator session ID.
	sessionCookieName = "storeadmin_session"
	// sessionCleanupInterval controls how often expired sessions are purged.
	sessionCleanupInterval = 30 * time.Minute
)

// operatorSession is the per-browser state: the team table with its filters
// and pending action, and the orchestrators whose in-flight slots belong to
// this operator.
type operatorSession struct {
	id        string
	table     *team.Table
	localizer *sessionLocalizer
	team      *mutation.TeamActions

	mu        sync.Mutex
	products  map[string]*mutation.ProductActions
	expiresAt time.Time
}

// productActions returns the orchestrator bound to productID.
func (s *operatorSession) productActions(productID string, build func(string) *mutation.ProductActions) *mutation.ProductActions {
	s.mu.Lock()
	defer s.mu.Unlock()
	if actions, ok := s.products[productID]; ok {
		return actions
	}
	actions := build(productID)
	s.products[productID] = actions
	return actions
}

// forgetProduct drops the orchestrator of a deleted product.
func (s *operatorSession) forgetProduct(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, productID)
}

// sessionLocalizer translates with the language of the session's latest
// request.
type sessionLocalizer struct {
	printer atomic.Pointer[message.Printer]
}

func newSessionLocalizer(tag language.Tag) *sessionLocalizer {
	l := &sessionLocalizer{}
	l.set(tag)
	return l
}

func (l *sessionLocalizer) set(tag language.Tag) {
	l.printer.Store(i18n.Printer(tag))
}

func (l *sessionLocalizer) Sprintf(key message.Reference, args ...any) string {
	return l.printer.Load().Sprintf(key, args...)
}

// sessionStore keeps operator sessions in memory and records their IDs so
// queued notifications survive restarts.
type sessionStore struct {
	records    storage.OperatorSessionStore
	newSession func(id string) *operatorSession
	newID      func() (string, error)
	ttl        time.Duration
	clock      func() time.Time

	mu          sync.Mutex
	sessions    map[string]*operatorSession
	lastCleanup time.Time
}

func newSessionStore(records storage.OperatorSessionStore, clock func() time.Time, newSession func(id string) *operatorSession) *sessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &sessionStore{
		records:    records,
		newSession: newSession,
		newID:      id.NewID,
		ttl:        timeouts.OperatorSession,
		clock:      clock,
		sessions:   make(map[string]*operatorSession),
	}
}

// resolve returns the session named by the request cookie, creating one and
// setting the cookie when needed.
func (s *sessionStore) resolve(w http.ResponseWriter, r *http.Request) (*operatorSession, error) {
	ctx := r.Context()
	now := s.clock()

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if session, ok := s.get(cookie.Value, now); ok {
			s.touch(ctx, session.id, now)
			return session, nil
		}
		if s.known(ctx, cookie.Value) {
			s.touch(ctx, cookie.Value, now)
			return s.put(cookie.Value, now), nil
		}
	}

	sessionID, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate operator session id: %w", err)
	}
	if s.records != nil {
		if err := s.records.PutOperatorSession(ctx, sessionID, now); err != nil {
			log.Printf("record operator session: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.put(sessionID, now), nil
}

func (s *sessionStore) get(sessionID string, now time.Time) (*operatorSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupLocked(now)
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if now.After(session.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, false
	}
	session.expiresAt = now.Add(s.ttl)
	return session, true
}

func (s *sessionStore) put(sessionID string, now time.Time) *operatorSession {
	session := s.newSession(sessionID)
	session.expiresAt = now.Add(s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[sessionID]; ok {
		return existing
	}
	s.sessions[sessionID] = session
	return session
}

func (s *sessionStore) known(ctx context.Context, sessionID string) bool {
	if s.records == nil {
		return false
	}
	ok, err := s.records.OperatorSessionExists(ctx, sessionID)
	if err != nil {
		log.Printf("lookup operator session: %v", err)
		return false
	}
	return ok
}

func (s *sessionStore) touch(ctx context.Context, sessionID string, now time.Time) {
	if s.records == nil {
		return
	}
	if err := s.records.TouchOperatorSession(ctx, sessionID, now); err != nil {
		log.Printf("touch operator session: %v", err)
	}
}

func (s *sessionStore) cleanupLocked(now time.Time) {
	if now.Sub(s.lastCleanup) < sessionCleanupInterval {
		return
	}
	for key, session := range s.sessions {
		session.mu.Lock()
		expired := now.After(session.expiresAt)
		session.mu.Unlock()
		if expired {
			delete(s.sessions, key)
		}
	}
	s.lastCleanup = now
	if s.records == nil {
		return
	}
	cutoff := now.Add(-s.ttl)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.APIRequest)
		defer cancel()
		removed, err := s.records.DeleteOperatorSessionsBefore(ctx, cutoff)
		if err != nil {
			log.Printf("purge operator sessions: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("purged %d idle operator sessions", removed)
		}
	}()
}

type sessionContextKey struct{}

func withOperatorSession(ctx context.Context, session *operatorSession) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func operatorSessionFromContext(ctx context.Context) *operatorSession {
	session, _ := ctx.Value(sessionContextKey{}).(*operatorSession)
	return session
}
