package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vellum-ui/vellum/pkg/binding"
	"github.com/vellum-ui/vellum/pkg/document"
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/store"
	"github.com/vellum-ui/vellum/pkg/theme"
)

// Config configures the gallery server.
type Config struct {
	// Addr is the listen address (default ":8090").
	Addr string

	// Store provides the documents to serve.
	Store store.Store

	// Engine validates and decodes documents before serving them.
	Engine *document.Engine

	// WatchDir, when set, enables live reload for document files in that
	// directory.
	WatchDir string

	// Theme is served to viewers alongside documents (default light).
	Theme *theme.ThemeData

	// Logger defaults to slog.Default.
	Logger *slog.Logger

	// Metrics defaults to a fresh set on the default registry. Set
	// explicitly to share a registry or disable collection in tests.
	Metrics *Metrics

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration
}

// Server serves the example gallery: document listing, document payloads,
// a live-reload socket, and Prometheus metrics.
type Server struct {
	cfg     Config
	engine  *document.Engine
	docs    store.Store
	hub     *hub
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a gallery server.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("gallery: config needs a document store")
	}
	if cfg.Engine == nil {
		return nil, errors.New("gallery: config needs a document engine")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8090"
	}
	if cfg.Theme == nil {
		cfg.Theme = theme.DefaultLight()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	logger := cfg.Logger.With("component", "gallery")
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics()
	}
	return &Server{
		cfg:     cfg,
		engine:  cfg.Engine,
		docs:    cfg.Store,
		hub:     newHub(logger, cfg.Metrics),
		logger:  logger,
		metrics: cfg.Metrics,
	}, nil
}

// Router returns the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/api/components", s.handleComponents)
	r.Get("/api/theme", s.handleTheme)
	r.Get("/api/documents", s.handleList)
	r.Get("/api/documents/{name}", s.handleDocument)
	r.Put("/api/documents/{name}", s.handleSave)
	r.Get("/ws", s.handleLive)
	r.Get("/", s.handleIndex)
	return r
}

// Start runs the server until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.WatchDir != "" {
		go func() {
			if err := s.watch(ctx, s.cfg.WatchDir); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gallery listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.hub.closeAll()
	return srv.Shutdown(shutdownCtx)
}

// handleComponents lists the registered component tags.
func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"components": s.engine.Registry().Tags(),
	})
}

// handleTheme serves the active theme so viewers render with the same
// palette the host configured.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Theme)
}

// handleList lists the available documents.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.docs.List(r.Context())
	if err != nil {
		s.logger.Error("list documents", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": names})
}

// handleDocument serves one document payload. The payload is decoded
// first, so a document the engine would reject never reaches a viewer; a
// typical integration renders an explicit "content unavailable" message
// from the error body instead. Query parameters of the form bind.key
// resolve {{key}} placeholders in the served document.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ctx, span := startSpan(r.Context(), "gallery.document", name)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	payload, err := s.docs.Load(ctx, name)
	if err != nil {
		opErr = err
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		s.logger.Error("load document", "document", name, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	start := time.Now()
	live, err := s.engine.Unmarshal(payload)
	if err != nil {
		opErr = err
		s.metrics.decodeError(errorKind(err))
		s.logger.Warn("document rejected", "document", name, "error", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.metrics.observeDecode(name, time.Since(start))

	if bctx := bindContext(r); len(bctx) > 0 {
		bound := binding.ResolveTree(live, binding.Simple, bctx)
		payload, _, err = s.engine.Marshal(bound)
		if err != nil {
			opErr = err
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// bindContext extracts bind.* query parameters into a binding context.
func bindContext(r *http.Request) binding.Context {
	var bctx binding.Context
	for key, vals := range r.URL.Query() {
		if !strings.HasPrefix(key, "bind.") || len(vals) == 0 {
			continue
		}
		if bctx == nil {
			bctx = binding.Context{}
		}
		bctx[strings.TrimPrefix(key, "bind.")] = vals[0]
	}
	return bctx
}

// handleSave validates and stores an uploaded document.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ctx, span := startSpan(r.Context(), "gallery.save", name)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	doc := &document.Node{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(doc); err != nil {
		opErr = err
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if errs := s.engine.Validate(doc); len(errs) > 0 {
		opErr = errs[0]
		s.metrics.decodeError(errorKind(errs[0]))
		writeError(w, http.StatusUnprocessableEntity, errors.Join(errs...))
		return
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		opErr = err
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.docs.Save(ctx, name, payload); err != nil {
		opErr = err
		s.logger.Error("save document", "document", name, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.hub.broadcast(name)
	writeJSON(w, http.StatusOK, map[string]any{"saved": name})
}

const indexHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Vellum Gallery</title></head>
<body>
<h1>Vellum Gallery</h1>
<ul id="docs"></ul>
<script>
fetch('/api/documents').then(r => r.json()).then(d => {
  const ul = document.getElementById('docs');
  for (const name of d.documents) {
    const li = document.createElement('li');
    const a = document.createElement('a');
    a.href = '/api/documents/' + name;
    a.textContent = name;
    li.appendChild(a);
    ul.appendChild(li);
  }
});
const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
ws.onmessage = () => location.reload();
</script>
</body>
</html>`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// errorKind maps engine errors onto stable metric label values.
func errorKind(err error) string {
	var (
		notFound *registry.NotFoundError
		version  *document.VersionMismatchError
		invalid  *document.InvalidDocumentError
	)
	switch {
	case errors.As(err, &notFound):
		return "unknown_tag"
	case errors.As(err, &version):
		return "version_mismatch"
	case errors.As(err, &invalid):
		return "invalid_document"
	case errors.Is(err, document.ErrMaxDepthExceeded):
		return "max_depth"
	default:
		return "other"
	}
}

// String formats the config for startup logs.
func (c Config) String() string {
	return fmt.Sprintf("addr=%s watch=%s", c.Addr, c.WatchDir)
}
