package gallery

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/vellum-ui/vellum/pkg/store"
)

// reloadMessage is pushed to connected viewers when a document changes.
type reloadMessage struct {
	Type     string `json:"type"`
	Document string `json:"document"`
}

// hub fans document-change notifications out to websocket clients.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *slog.Logger
	metrics *Metrics
}

func newHub(logger *slog.Logger, metrics *Metrics) *hub {
	return &hub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
		metrics: metrics,
	}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	h.metrics.clientConnected(1)
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		h.metrics.clientConnected(-1)
	}
	h.mu.Unlock()
	conn.Close()
}

// broadcast notifies every client that a document changed. Clients that
// fail to receive are dropped.
func (h *hub) broadcast(document string) {
	msg := reloadMessage{Type: "reload", Document: document}
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Debug("dropping live client", "error", err)
			h.remove(conn)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()
	for _, conn := range conns {
		conn.Close()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleLive upgrades the connection and parks it in the hub. The client
// only listens; reads are drained to notice disconnects.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	s.hub.add(conn)
	go func() {
		defer s.hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// watch pushes reload notifications when document files change in dir.
// It blocks until the context is canceled.
func (s *Server) watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return err
	}
	s.logger.Info("watching documents", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			name, ok := documentName(event.Name)
			if !ok {
				continue
			}
			s.logger.Debug("document changed", "document", name)
			s.hub.broadcast(name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", "error", err)
		}
	}
}

// documentName extracts the document name from a changed file path.
func documentName(path string) (string, bool) {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return strings.CutSuffix(base, store.DocumentExt)
}
