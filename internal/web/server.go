package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	qr "github.com/skip2/go-qrcode"

	"breachforge/internal/catalog"
	"breachforge/internal/history"
	genlog "breachforge/internal/log"
	"breachforge/internal/nemesis"
	"breachforge/internal/rng"
	"breachforge/internal/supply"
)

//go:embed static
var staticFiles embed.FS

// Server is the breachforge web UI server. Generations run one at a
// time behind genMu; the catalog store itself is read-only.
type Server struct {
	store *catalog.Store
	hist  *history.History
	mux   *http.ServeMux

	genMu sync.Mutex
	src   rng.Source

	subMu sync.Mutex
	subs  map[*websocket.Conn]context.Context
}

// NewServer creates a new web server over the given store. A nil src
// falls back to a time-seeded source.
func NewServer(store *catalog.Store, src rng.Source) *Server {
	if src == nil {
		src = rng.NewTime()
	}
	s := &Server{
		store: store,
		hist:  history.New(),
		mux:   http.NewServeMux(),
		src:   src,
		subs:  make(map[*websocket.Conn]context.Context),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	s.mux.HandleFunc("POST /api/supply", s.handleSupply)
	s.mux.HandleFunc("POST /api/basic-deck", s.handleBasicDeck)
	s.mux.HandleFunc("GET /api/history", s.handleHistory)

	// QR code of the server URL, for opening the page on a phone
	s.mux.HandleFunc("GET /qr", s.handleQR)

	// Live results feed
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	view := CatalogView{Sets: s.store.Sets()}
	for _, a := range catalog.Abilities() {
		view.Abilities = append(view.Abilities, AbilityView{ID: string(a), Label: a.Label()})
	}
	for _, c := range s.store.Cards() {
		view.Cards = append(view.Cards, cardView(c))
	}
	writeJSON(w, view)
}

// supplyRequest is the JSON body of POST /api/supply.
type supplyRequest struct {
	Sets      []string `json:"sets"`
	Abilities []string `json:"abilities"`
}

func (s *Server) handleSupply(w http.ResponseWriter, r *http.Request) {
	var req supplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var abilities []catalog.Ability
	for _, id := range req.Abilities {
		a := catalog.Ability(id)
		if !a.Valid() {
			http.Error(w, fmt.Sprintf("unknown ability %q", id), http.StatusBadRequest)
			return
		}
		abilities = append(abilities, a)
	}

	logger := genlog.NewMemoryLogger()
	s.genMu.Lock()
	result, err := supply.NewAssembler(s.store, s.src, logger).Generate(catalog.SetFilter(req.Sets), abilities)
	s.genMu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entry := s.hist.AddSupply(catalog.SetFilter(req.Sets), abilities, result)
	view := supplyView(entry, logger.Events())
	s.broadcast("supply", view)
	writeJSON(w, view)
}

// deckRequest is the JSON body of POST /api/basic-deck.
type deckRequest struct {
	Sets    []string `json:"sets"`
	Players int      `json:"players"`
}

func (s *Server) handleBasicDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	logger := genlog.NewMemoryLogger()
	s.genMu.Lock()
	result, err := nemesis.NewAssembler(s.store, s.src, logger).Generate(catalog.SetFilter(req.Sets), req.Players)
	s.genMu.Unlock()
	if err != nil {
		if errors.Is(err, nemesis.ErrUnsupportedPlayerCount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entry := s.hist.AddDeck(catalog.SetFilter(req.Sets), req.Players, result)
	view := deckView(entry, logger.Events())
	s.broadcast("basic_deck", view)
	writeJSON(w, view)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	view := HistoryView{
		Supplies: []SupplyView{},
		Decks:    []DeckView{},
	}
	for _, entry := range s.hist.Supplies() {
		view.Supplies = append(view.Supplies, supplyView(entry, nil))
	}
	for _, entry := range s.hist.Decks() {
		view.Decks = append(view.Decks, deckView(entry, nil))
	}
	writeJSON(w, view)
}

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	url := fmt.Sprintf("http://%s/", r.Host)
	png, err := qr.Encode(url, qr.Medium, 256)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// handleWebSocket subscribes a client to the live results feed. Every
// generation performed through the API is pushed to all subscribers,
// so a phone and a table display stay in sync.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	s.subMu.Lock()
	s.subs[conn] = ctx
	s.subMu.Unlock()
	defer func() {
		s.subMu.Lock()
		delete(s.subs, conn)
		s.subMu.Unlock()
	}()

	// Clients only listen; read until close to notice disconnects.
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// broadcast pushes a result to every connected feed subscriber.
func (s *Server) broadcast(kind string, view any) {
	msg, err := json.Marshal(map[string]any{"type": kind, "result": view})
	if err != nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for conn, ctx := range s.subs {
		if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
			log.Printf("WebSocket write error: %v", err)
		}
	}
}

// History exposes the session history (for the MCP surface and tests).
func (s *Server) History() *history.History {
	return s.hist
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler returns the underlying mux (for tests).
func (s *Server) Handler() http.Handler {
	return s.mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
