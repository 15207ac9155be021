package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/studydeck-backend/internal/config"
	"github.com/heartmarshall/studydeck-backend/internal/transport/middleware"
)

// RouterDeps collects everything the HTTP surface needs.
// RateLimiter may be nil to disable limiting.
type RouterDeps struct {
	Log         *slog.Logger
	CORS        config.CORSConfig
	Validator   middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	RatePerMin  int
	Health      *HealthHandler
	Decks       *DeckHandler
	Sessions    *SessionHandler
	Statistics  *StatisticsHandler
}

// NewRouter builds the chi router with the global middleware stack.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.Log),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Validator),
		middleware.Logger(d.Log),
	))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		if d.RateLimiter != nil && d.RatePerMin > 0 {
			r.Use(d.RateLimiter.Limit(d.RatePerMin))
		}

		r.Route("/decks", func(r chi.Router) {
			r.Post("/", d.Decks.CreateDeck)
			r.Route("/{deckID}", func(r chi.Router) {
				r.Delete("/", d.Decks.DeleteDeck)
				r.Post("/flashcards", d.Decks.AddFlashcard)
				r.Delete("/flashcards/{flashcardID}", d.Decks.RemoveFlashcard)
				r.Post("/sessions", d.Sessions.StartSession)
			})
		})

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", d.Sessions.GetSession)
			r.Post("/outcomes", d.Sessions.RecordOutcome)
			r.Post("/complete", d.Sessions.CompleteSession)
		})

		r.Get("/statistics", d.Statistics.GetUserStatistics)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND", Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
	})

	return r
}
