package handler

import (
	"log/slog"
	"net/http"

	"github.com/garyPenhook/skcclog/internal/award"
	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/roster"
	"github.com/garyPenhook/skcclog/internal/store"
)

// AwardHandler evaluates award progress over the stored log. An Engine is
// built per request against the current roster snapshot, so a roster refresh
// is visible on the next request without restart.
type AwardHandler struct {
	contacts  *store.ContactStore
	settings  *store.SettingsStore
	rosterSvc *roster.Service
	logger    *slog.Logger
}

func NewAwardHandler(cs *store.ContactStore, ss *store.SettingsStore, rs *roster.Service, logger *slog.Logger) *AwardHandler {
	return &AwardHandler{contacts: cs, settings: ss, rosterSvc: rs, logger: logger}
}

func (h *AwardHandler) engine() (*award.Engine, error) {
	settings, err := h.settings.Load()
	if err != nil {
		return nil, err
	}
	op := award.Operator{
		Callsign:      settings.Callsign,
		SKCCNumber:    settings.SKCCNumber,
		JoinDate:      settings.JoinDate,
		CenturionDate: settings.CenturionDate,
		TribuneX8Date: settings.TribuneX8Date,
	}
	return award.NewEngine(h.rosterSvc.Index(), h.rosterSvc.AwardRoll(), op, h.logger), nil
}

// List evaluates every award over the full log.
func (h *AwardHandler) List(w http.ResponseWriter, r *http.Request) {
	eng, err := h.engine()
	if err != nil {
		h.logger.Error("build engine", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	contacts, err := h.contacts.List()
	if err != nil {
		h.logger.Error("list contacts", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load contacts")
		return
	}
	writeJSON(w, http.StatusOK, eng.Evaluate(contacts))
}

// Get evaluates a single award by program ID, including its qualifying
// contacts.
func (h *AwardHandler) Get(w http.ResponseWriter, r *http.Request) {
	programID := r.PathValue("id")
	eng, err := h.engine()
	if err != nil {
		h.logger.Error("build engine", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	a, ok := eng.Award(programID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown award: "+programID)
		return
	}
	contacts, err := h.contacts.List()
	if err != nil {
		h.logger.Error("list contacts", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load contacts")
		return
	}
	writeJSON(w, http.StatusOK, a.Progress(contacts))
}

// Validate checks a single posted contact against one award without storing
// it, for pre-log what-if checks.
func (h *AwardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	programID := r.PathValue("id")
	eng, err := h.engine()
	if err != nil {
		h.logger.Error("build engine", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	a, ok := eng.Award(programID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown award: "+programID)
		return
	}
	var c model.Contact
	if err := decodeContact(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": a.Validate(c)})
}
