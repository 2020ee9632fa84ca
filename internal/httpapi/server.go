// Package httpapi is an HTTP + WebSocket facade over internal/engine,
// generalized from the teacher's server/server.go (which hardcoded one
// symbol) to the engine's multi-symbol routing. Besides observing the
// engine it accepts new orders and cancels, and every mutating handler
// funnels through one mutex-guarded engine.Dispatch call, so the engine's single-threaded
// core never has to take its own lock no matter how many HTTP clients
// are connected concurrently.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"crossengine/internal/engine"
	"crossengine/internal/matching"
	"crossengine/internal/stream"
)

// Server wires an engine.Engine to HTTP handlers and websocket streams.
type Server struct {
	engine    *engine.Engine
	fillHub   *stream.Hub[matching.Fill]
	bookHub   *stream.Hub[bookUpdate]
	upgrader  websocket.Upgrader
	authToken string
}

type bookUpdate struct {
	Symbol string              `json:"symbol"`
	Orders []matching.OrderView `json:"orders"`
}

// NewServer builds a Server around e.
func NewServer(e *engine.Engine, authToken string) *Server {
	return &Server{
		engine:    e,
		fillHub:   stream.NewHub[matching.Fill](),
		bookHub:   stream.NewHub[bookUpdate](),
		upgrader:  websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		authToken: authToken,
	}
}

// Routes returns the HTTP handler, with CORS applied via rs/cors in
// place of hand-rolled header-setting middleware.
func (s *Server) Routes(corsOrigin string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/orders", s.withAuth(s.handleNewOrder)).Methods(http.MethodPost)
	r.HandleFunc("/orders/{oid}", s.withAuth(s.handleCancelOrder)).Methods(http.MethodDelete)
	r.HandleFunc("/book", s.withAuth(s.handleSnapshot)).Methods(http.MethodGet)
	r.HandleFunc("/ws/fills", s.withAuth(s.handleFillStream)).Methods(http.MethodGet)
	r.HandleFunc("/ws/book", s.withAuth(s.handleBookStream)).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(r)
}

func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.authToken == "" {
			next(w, r)
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token != s.authToken {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

type newOrderRequest struct {
	OID    uint32 `json:"oid"`
	Symbol string `json:"symbol"`
	Side   string `json:"side"`
	Qty    uint16 `json:"qty"`
	Price  string `json:"price"`
}

func (s *Server) handleNewOrder(w http.ResponseWriter, r *http.Request) {
	var req newOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	a, parseErr := buildNewAction(req)
	if parseErr != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": parseErr.Error()})
		return
	}

	s.engine.Lock()
	results := s.engine.Dispatch(a)
	s.engine.Unlock()

	s.publish(a.Symbol, results)
	writeJSON(w, http.StatusAccepted, toResultViews(results))
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	oid, err := parseOIDParam(vars["oid"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid oid"})
		return
	}

	a := engine.Action{Kind: engine.ActionCancel, OID: oid}
	s.engine.Lock()
	results := s.engine.Dispatch(a)
	s.engine.Unlock()

	s.publish("", results)
	writeJSON(w, http.StatusOK, toResultViews(results))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.engine.Lock()
	results := s.engine.Dispatch(engine.Action{Kind: engine.ActionPrint})
	s.engine.Unlock()

	views := make([]matching.OrderView, 0, len(results))
	for _, res := range results {
		if res.Kind == engine.ResultPrint {
			views = append(views, *res.View)
		}
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleFillStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := s.fillHub.Subscribe(32)
	defer s.fillHub.Unsubscribe(sub)

	for fill := range sub.Channel() {
		if err := conn.WriteJSON(fill); err != nil {
			return
		}
	}
}

func (s *Server) handleBookStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := s.bookHub.Subscribe(32)
	defer s.bookHub.Unsubscribe(sub)

	for update := range sub.Channel() {
		if err := conn.WriteJSON(update); err != nil {
			return
		}
	}
}

// publish fans fills out to fillHub and, when a symbol is known, pushes a
// fresh snapshot of that symbol's book to bookHub. Must be called after
// releasing the engine lock.
func (s *Server) publish(symbol string, results []engine.Result) {
	for _, r := range results {
		if r.Kind == engine.ResultFill {
			s.fillHub.Broadcast(*r.Fill)
		}
	}
	if symbol == "" {
		return
	}

	s.engine.Lock()
	snapResults := s.engine.Dispatch(engine.Action{Kind: engine.ActionPrint})
	s.engine.Unlock()

	var views []matching.OrderView
	for _, r := range snapResults {
		if r.Kind == engine.ResultPrint && r.View.Symbol == symbol {
			views = append(views, *r.View)
		}
	}
	s.bookHub.Broadcast(bookUpdate{Symbol: symbol, Orders: views})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
