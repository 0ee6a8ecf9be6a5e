// Package server exposes the EUI over a websocket endpoint. Each client
// connection gets its own hub with a request goroutine and a response
// goroutine; telemetry pages are rendered on the bus dispatch loop and
// pushed at a fixed interval.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"mseui/audit"
	"mseui/auth"
	"mseui/bus"
	"mseui/model"
	"mseui/pages"
)

type Options struct {
	Addr string
	// WebDir serves the static EUI assets when non-empty.
	WebDir         string
	PushInterval   time.Duration
	CommandTimeout time.Duration
}

type Server struct {
	opts     Options
	upgrader websocket.Upgrader

	bus      *bus.Bus
	pages    *pages.Set
	remote   bus.Remote
	verifier *auth.Verifier
	audit    *audit.Logger

	pushInterval   time.Duration
	commandTimeout time.Duration

	httpServer *http.Server
}

func NewServer(opts Options, b *bus.Bus, p *pages.Set, remote bus.Remote,
	verifier *auth.Verifier, auditLog *audit.Logger) *Server {
	return &Server{
		opts:           opts,
		upgrader:       websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096},
		bus:            b,
		pages:          p,
		remote:         remote,
		verifier:       verifier,
		audit:          auditLog,
		pushInterval:   opts.PushInterval,
		commandTimeout: opts.CommandTimeout,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.WithField("remote", r.RemoteAddr).Info("client connected")

	h := newHub(s, conn)
	go h.handleRequest()
	go h.handleResponse()
	defer func() {
		h.close()
		<-h.done
	}()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).WithField("remote", r.RemoteAddr).Info("client disconnected")
			return
		}
		select {
		case h.msg <- msg:
		case <-h.quit:
			return
		}
	}
}

// Handler returns the HTTP routing, the websocket endpoint plus the static
// EUI assets.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	if s.opts.WebDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.opts.WebDir)))
	}
	return mux
}

// Serve blocks until the listener fails or Shutdown is called.
func (s *Server) Serve() error {
	s.httpServer = &http.Server{Addr: s.opts.Addr, Handler: s.Handler()}
	log.WithField("addr", s.opts.Addr).Info("serving EUI")
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and drains the running ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
