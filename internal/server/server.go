package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/garyPenhook/skcclog/internal/backup"
	"github.com/garyPenhook/skcclog/internal/handler"
	"github.com/garyPenhook/skcclog/internal/middleware"
	"github.com/garyPenhook/skcclog/internal/roster"
	"github.com/garyPenhook/skcclog/internal/store"
)

type Server struct {
	db          *sql.DB
	contactH    *handler.ContactHandler
	awardH      *handler.AwardHandler
	rosterH     *handler.RosterHandler
	settingsH   *handler.SettingsHandler
	backupH     *handler.BackupHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, rosterSvc *roster.Service, backupMgr *backup.Manager, logger *slog.Logger) *Server {
	contactStore := store.NewContactStore(db)
	settingsStore := store.NewSettingsStore(db)

	return &Server{
		db:          db,
		contactH:    handler.NewContactHandler(contactStore, logger.With("component", "contact")),
		awardH:      handler.NewAwardHandler(contactStore, settingsStore, rosterSvc, logger.With("component", "award")),
		rosterH:     handler.NewRosterHandler(rosterSvc, logger.With("component", "roster")),
		settingsH:   handler.NewSettingsHandler(settingsStore, logger.With("component", "settings")),
		backupH:     handler.NewBackupHandler(backupMgr, logger.With("component", "backup")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	mux.HandleFunc("GET /api/contacts", s.contactH.List)
	mux.HandleFunc("POST /api/contacts", s.contactH.Create)
	mux.HandleFunc("DELETE /api/contacts/{id}", s.contactH.Delete)

	mux.HandleFunc("GET /api/awards", s.awardH.List)
	mux.HandleFunc("GET /api/awards/{id}", s.awardH.Get)
	mux.HandleFunc("POST /api/awards/{id}/validate", s.awardH.Validate)

	mux.HandleFunc("GET /api/roster/status", s.rosterH.Status)
	// Refreshes hit the SKCC site; keep accidental hammering off it.
	mux.HandleFunc("POST /api/roster/refresh", s.rateLimitedHandler(s.rosterH.Refresh))

	mux.HandleFunc("GET /api/settings", s.settingsH.Get)
	mux.HandleFunc("PUT /api/settings", s.settingsH.Update)

	mux.HandleFunc("GET /api/backups", s.backupH.List)
	mux.HandleFunc("POST /api/backups", s.backupH.Run)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 4, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
