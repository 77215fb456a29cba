package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/storeadmin/internal/platform/timeouts"
	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
	adminsqlite "github.com/louisbranch/storeadmin/internal/services/admin/storage/sqlite"
	"github.com/louisbranch/storeadmin/internal/services/admin/team"
)

// Config defines the inputs for the admin process.
type Config struct {
	HTTPAddr string
	// HealthAddr enables the gRPC health endpoint when set.
	HealthAddr string
	APIURL     string
	APIToken   string
	// PublicOrigin overrides the request origin in fallback invite links.
	PublicOrigin string
	DBPath       string
	FilterPolicy team.Policy
	CacheTTL     time.Duration
}

// Server hosts the admin UI and its optional health endpoint.
type Server struct {
	httpAddr   string
	healthAddr string
	httpServer *http.Server
	health     *healthServer
	adminStore *adminsqlite.Store
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	client, err := commerce.NewClient(config.APIURL, commerce.WithAPIToken(config.APIToken))
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	dbPath := strings.TrimSpace(config.DBPath)
	if dbPath == "" {
		dbPath = filepath.Join("data", "admin.db")
	}
	adminStore, err := openAdminStore(dbPath)
	if err != nil {
		return nil, err
	}

	handler, err := NewHandler(HandlerConfig{
		Client:       client,
		Store:        adminStore,
		CacheTTL:     config.CacheTTL,
		FilterPolicy: config.FilterPolicy,
		PublicOrigin: strings.TrimSpace(config.PublicOrigin),
	})
	if err != nil {
		_ = adminStore.Close()
		return nil, fmt.Errorf("init handler: %w", err)
	}

	server := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		adminStore: adminStore,
	}
	if healthAddr := strings.TrimSpace(config.HealthAddr); healthAddr != "" {
		server.healthAddr = healthAddr
		server.health = newHealthServer(client)
	}
	return server, nil
}

// ListenAndServe runs the HTTP server, and the health endpoint when
// configured, until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	if s.health != nil {
		group.Go(func() error {
			return s.health.serve(groupCtx, s.healthAddr)
		})
	}
	group.Go(func() error {
		return s.serveHTTP(groupCtx)
	})
	return group.Wait()
}

func (s *Server) serveHTTP(ctx context.Context) error {
	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the local store and stops the health endpoint.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.stop()
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}
