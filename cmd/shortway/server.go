package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	log "github.com/inconshreveable/log15/v3"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/shortway/route"
	"github.com/katalvlaran/shortway/transport/websocket"
	"github.com/katalvlaran/shortway/traveler"
	"github.com/katalvlaran/shortway/waypoint"
)

// server exposes one planner over HTTP. It keeps the latest route and a
// traveler walking it.
type server struct {
	planner *route.Planner
	hub     *websocket.Hub
	router  *mux.Router
	logger  log.Logger

	mu       sync.Mutex
	route    route.Route
	traveler *traveler.Traveler
}

// travelerState is the body of GET /traveler and POST /arrive.
type travelerState struct {
	Advanced  bool          `json:"advanced"`
	Done      bool          `json:"done"`
	Target    *route.Stop   `json:"target,omitempty"`
	Remaining int           `json:"remaining"`
	Visited   []waypoint.ID `json:"visited"`
}

// newServer plans once so GET /route has an answer from the start.
func newServer(ctx context.Context, p *route.Planner, hub *websocket.Hub, logger log.Logger) (*server, error) {
	s := &server{
		planner: p,
		hub:     hub,
		router:  mux.NewRouter(),
		logger:  logger.New("module", "http"),
	}
	if err := s.replan(ctx); err != nil {
		return nil, err
	}
	s.setupRoutes()

	return s, nil
}

func (s *server) setupRoutes() {
	s.router.HandleFunc("/route", s.handleGetRoute).Methods(http.MethodGet)
	s.router.HandleFunc("/route", s.handleReplan).Methods(http.MethodPost)
	s.router.HandleFunc("/traveler", s.handleGetTraveler).Methods(http.MethodGet)
	s.router.HandleFunc("/arrive", s.handleArrive).Methods(http.MethodPost).Queries("id", "{id}")
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// replan computes a fresh route and restarts the traveler on it.
func (s *server) replan(ctx context.Context) error {
	r, err := s.planner.Plan(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.route = r
	s.traveler = s.planner.Traveler(r)
	s.mu.Unlock()

	return nil
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *server) handleGetRoute(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rt := s.route
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, rt)
}

func (s *server) handleReplan(w http.ResponseWriter, r *http.Request) {
	if err := s.replan(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.handleGetRoute(w, r)
}

func (s *server) handleGetTraveler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	t := s.traveler
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, stateOf(t, false))
}

func (s *server) handleArrive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid waypoint id %q", mux.Vars(r)["id"]))
		return
	}

	s.mu.Lock()
	t, found := s.traveler, s.route.Found
	s.mu.Unlock()

	if !found {
		respondError(w, http.StatusConflict, "no route to travel")
		return
	}
	if _, ok := s.planner.Scene().Lookup(waypoint.ID(id)); !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("unknown waypoint %d", id))
		return
	}

	advanced := t.Arrive(waypoint.ID(id))
	s.logger.Debug("arrive", "id", id, "advanced", advanced, "done", t.Done())
	respondJSON(w, http.StatusOK, stateOf(t, advanced))
}

func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWS(w, r, r.URL.Query().Get("scene"))
}

func stateOf(t *traveler.Traveler, advanced bool) travelerState {
	st := travelerState{
		Advanced:  advanced,
		Done:      t.Done(),
		Remaining: len(t.Remaining()),
		Visited:   t.Visited(),
	}
	if p, ok := t.Target(); ok {
		st.Target = &route.Stop{ID: p.ID, X: p.X, Y: p.Y}
	}

	return st
}

func (a *app) serveCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve the route, a traveler and live events over HTTP",
		ArgsUsage: "[scene.yaml]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:8080",
				Usage:   "listen address",
				Sources: cli.EnvVars("SHORTWAY_ADDR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, sc, err := a.loadScene(cmd)
			if err != nil {
				return err
			}
			p, err := a.newPlanner(cmd, sc)
			if err != nil {
				return err
			}

			hub := websocket.NewHub(websocket.WithLogger(a.logger))
			go hub.Run()
			defer hub.Stop()
			hub.Subscribe(a.bus)

			srv, err := newServer(ctx, p, hub, a.logger)
			if err != nil {
				return err
			}

			return a.listen(ctx, cmd.String("addr"), srv)
		},
	}
}

// listen serves h on addr until ctx ends, then shuts down gracefully.
func (a *app) listen(ctx context.Context, addr string, h http.Handler) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
