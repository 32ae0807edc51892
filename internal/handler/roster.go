package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/garyPenhook/skcclog/internal/roster"
)

type RosterHandler struct {
	service *roster.Service
	logger  *slog.Logger
}

func NewRosterHandler(svc *roster.Service, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{service: svc, logger: logger}
}

type rosterStatus struct {
	Members   int            `json:"members"`
	BuiltAt   time.Time      `json:"built_at"`
	Rolls     map[string]int `json:"rolls"`
	Available bool           `json:"rolls_available"`
}

// Status reports the current roster snapshot: member count, when it was
// built, and which award rolls loaded.
func (h *RosterHandler) Status(w http.ResponseWriter, r *http.Request) {
	ix := h.service.Index()
	roll := h.service.AwardRoll()

	rolls := make(map[string]int)
	for _, t := range []string{roster.RollCenturion, roster.RollTribune, roster.RollSenator} {
		if roll.Loaded(t) {
			rolls[t] = roll.Size(t)
		}
	}
	writeJSON(w, http.StatusOK, rosterStatus{
		Members:   ix.Len(),
		BuiltAt:   ix.BuiltAt(),
		Rolls:     rolls,
		Available: roll.Available(),
	})
}

// Refresh forces an immediate roster fetch. It blocks until the refresh
// completes; partial failures degrade per source and are reported in the
// next Status call.
func (h *RosterHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("manual roster refresh requested")
	h.service.Refresh(r.Context())
	h.Status(w, r)
}
