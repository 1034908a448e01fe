// Package handbook hosts the React Hooks Handbook HTTP service.
package handbook

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/hooks.handbook/internal/platform/timeouts"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/composer"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/demoapi"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/hooks"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/pages"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/platform/httpx"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/platform/metrics"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/registry"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/routepath"
	handbookstatic "github.com/louisbranch/hooks.handbook/internal/services/handbook/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config defines startup inputs for the handbook service.
type Config struct {
	HTTPAddr       string
	DemoAPIBaseURL string
	DemoAPITimeout time.Duration
	// DemoHTTPClient overrides the client used for demo fetches.
	DemoHTTPClient *http.Client
}

// Server hosts the handbook HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: the handbook routes derived from the
// registry plus the static, health and metrics endpoints.
func NewHandler(cfg Config) (http.Handler, error) {
	demo, err := demoapi.NewClient(cfg.DemoAPIBaseURL, cfg.DemoHTTPClient)
	if err != nil {
		return nil, fmt.Errorf("init demo api client: %w", err)
	}
	recorder := metrics.New()

	reg := hooks.Registry(pages.Deps{
		Demo:         demo,
		Recorder:     recorder,
		FetchTimeout: cfg.DemoAPITimeout,
	})
	table := composer.Routes(reg, composer.Index(composer.Navigation(reg)))
	logDefinitionProblems(reg, table)

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(handbookstatic.FS))))
	rootMux.HandleFunc(routepath.Health, func(w http.ResponseWriter, r *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "OK")
	})
	rootMux.Handle(routepath.Metrics, recorder.Handler())
	rootMux.Handle(routepath.Root, table.Handler(composer.HandlerOptions{Recorder: recorder}))

	handler := httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.AccessLog(),
	)
	return otelhttp.NewHandler(handler, "handbook.http"), nil
}

// logDefinitionProblems reports registry defects at startup. They never stop
// the server.
func logDefinitionProblems(reg *registry.Registry, table *composer.RouteTable) {
	for _, problem := range reg.Lint() {
		log.Printf("registry problem kind=%s index=%d name=%q", problem.Kind, problem.Index, problem.Name)
	}
	for _, descriptor := range table.Shadowed() {
		log.Printf("route shadowed path=%s category=%q", routepath.Page(descriptor.Name), descriptor.Category)
	}
}

// NewServer validates config and constructs a handbook server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose handbook handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("handbook server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("handbook listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown handbook http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve handbook http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
