// Package monitor streams the progress of a grain-size sweep to websocket
// clients.
//
// Endpoints:
//
//	GET /ws       websocket; replays past events, then pushes new ones as JSON
//	GET /samples  JSON array of the samples measured so far
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/mandel_autotune"
)

// Event kinds.
const (
	KindSample  = "sample"
	KindOptimal = "optimal"
)

// Event is one message on the websocket.
type Event struct {
	Type      string  `json:"type"`
	GrainSize int     `json:"grain_size"`
	Seconds   float64 `json:"seconds"`
}

func eventOf(kind string, s mandel.Sample) Event {
	return Event{Type: kind, GrainSize: s.GrainSize, Seconds: s.Elapsed.Seconds()}
}

// subscriberBuffer bounds the events queued for one client. A client that
// falls further behind misses events instead of stalling the sweep.
const subscriberBuffer = 256

// Hub fans sweep events out to subscribers. Publishing never blocks.
// Hub implements mandel.SampleObserver.
type Hub struct {
	mu      sync.Mutex
	history []Event
	subs    map[chan Event]struct{}
	closed  bool
	log     *slog.Logger
}

// NewHub creates an empty hub logging to log (nil for mandel.Logger()).
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = mandel.Logger()
	}
	return &Hub{subs: make(map[chan Event]struct{}), log: log}
}

// ObserveSample publishes a measured grain size.
func (h *Hub) ObserveSample(s mandel.Sample) {
	h.publish(eventOf(KindSample, s))
}

// Finish publishes the optimum and ends every subscription.
func (h *Hub) Finish(opt mandel.Sample) {
	h.publish(eventOf(KindOptimal, opt))

	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for ch := range h.subs {
		close(ch)
		delete(h.subs, ch)
	}
}

func (h *Hub) publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.history = append(h.history, e)
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
			h.log.Warn("monitor client too slow, dropping event", "grain_size", e.GrainSize)
		}
	}
}

// subscribe returns the events so far and a channel of later ones. The
// channel is closed once the hub is finished.
func (h *Hub) subscribe() ([]Event, chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	past := append([]Event(nil), h.history...)
	ch := make(chan Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return past, ch
	}
	h.subs[ch] = struct{}{}
	return past, ch
}

func (h *Hub) unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

// Samples returns the sample events published so far.
func (h *Hub) Samples() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Event, 0, len(h.history))
	for _, e := range h.history {
		if e.Type == KindSample {
			out = append(out, e)
		}
	}
	return out
}

// Handler serves /ws and /samples.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.websocketHandler)
	mux.HandleFunc("/samples", h.samplesHandler)
	return mux
}

func (h *Hub) samplesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Samples()); err != nil {
		h.log.Warn("encode samples", "err", err)
	}
}

// websocketHandler replays the history to a new client and then streams
// events until the hub finishes or the client goes away.
func (h *Hub) websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Warn("websocket accept", "err", err)
		return
	}
	defer c.CloseNow()

	// We never read from clients; CloseRead handles control frames and
	// cancels ctx when the peer closes.
	ctx := c.CloseRead(r.Context())

	past, ch := h.subscribe()
	defer h.unsubscribe(ch)

	h.log.Info("monitor client connected", "remote", r.RemoteAddr)

	for _, e := range past {
		if err := write(ctx, c, e); err != nil {
			return
		}
	}
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				c.Close(websocket.StatusNormalClosure, "sweep finished")
				return
			}
			if err := write(ctx, c, e); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func write(ctx context.Context, c *websocket.Conn, e Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return wsjson.Write(ctx, c, e)
}

// Server serves a Hub over HTTP.
type Server struct {
	srv *http.Server
	l   net.Listener
}

// Listen binds addr and prepares an HTTP server for h.
func Listen(addr string, h *Hub) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("net.Listen: %w", err)
	}
	return &Server{
		l: l,
		srv: &http.Server{
			Handler:           h.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr { return s.l.Addr() }

// Serve blocks serving connections until Shutdown.
func (s *Server) Serve() error {
	if err := s.srv.Serve(s.l); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for open streams until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
