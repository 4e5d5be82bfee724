// Package server exposes the catalog to browser clients over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"vocabcards/internal/domain"
	"vocabcards/internal/gesture"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CatalogReader is the read side of the catalog service
type CatalogReader interface {
	Catalog() *domain.Catalog
	Sets() []domain.SetSummary
	Set(id string) (*domain.VocabSet, bool)
}

// Options configures the router
type Options struct {
	// WebDir holds static browser assets; empty disables them
	WebDir   string
	Gesture  gesture.Config
	ToastTTL time.Duration
}

// ClientConfig tells browser clients how to interpret gestures
type ClientConfig struct {
	HorizontalThreshold float64 `json:"horizontalThreshold"`
	VerticalTolerance   float64 `json:"verticalTolerance"`
	JitterThreshold     float64 `json:"jitterThreshold"`
	MaxVisualOffset     float64 `json:"maxVisualOffset"`
	ToastTTLMillis      int64   `json:"toastTtlMs"`
}

type api struct {
	catalogs CatalogReader
	opts     Options
	logger   *zap.Logger
}

// NewRouter builds the HTTP routes
func NewRouter(catalogs CatalogReader, opts Options, logger *zap.Logger) *mux.Router {
	a := &api{catalogs: catalogs, opts: opts, logger: logger}

	r := mux.NewRouter()
	r.Use(requestID, accessLog(logger))

	r.HandleFunc("/health", a.health).Methods(http.MethodGet)
	r.HandleFunc("/data/vocab.json", a.catalogFile).Methods(http.MethodGet)
	r.HandleFunc("/api/sets", a.listSets).Methods(http.MethodGet)
	r.HandleFunc("/api/sets/{id}", a.getSet).Methods(http.MethodGet)
	r.HandleFunc("/api/config", a.clientConfig).Methods(http.MethodGet)

	if opts.WebDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.WebDir))).Methods(http.MethodGet)
	}
	return r
}

func (a *api) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("OK\n"))
}

// catalogFile serves the catalog browsers load directly, from the same
// in-memory copy the API reads
func (a *api) catalogFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	a.writeJSON(w, r, http.StatusOK, a.catalogs.Catalog())
}

func (a *api) listSets(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, a.catalogs.Sets())
}

func (a *api) getSet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	set, ok := a.catalogs.Set(id)
	if !ok {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	}
	a.writeJSON(w, r, http.StatusOK, set)
}

func (a *api) clientConfig(w http.ResponseWriter, r *http.Request) {
	g := a.opts.Gesture
	a.writeJSON(w, r, http.StatusOK, ClientConfig{
		HorizontalThreshold: g.HorizontalThreshold,
		VerticalTolerance:   g.VerticalTolerance,
		JitterThreshold:     g.JitterThreshold,
		MaxVisualOffset:     g.MaxVisualOffset,
		ToastTTLMillis:      a.opts.ToastTTL.Milliseconds(),
	})
}

func (a *api) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("Failed to write response",
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
	}
}
