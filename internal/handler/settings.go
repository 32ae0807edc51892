package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
	"github.com/garyPenhook/skcclog/internal/store"
)

type SettingsHandler struct {
	settings *store.SettingsStore
	logger   *slog.Logger
}

func NewSettingsHandler(ss *store.SettingsStore, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: ss, logger: logger}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Load()
	if err != nil {
		h.logger.Error("load settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Callsign = strings.ToUpper(strings.TrimSpace(req.Callsign))
	if err := validateSettings(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.settings.Save(req); err != nil {
		h.logger.Error("save settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func validateSettings(s model.Settings) error {
	if s.SKCCNumber != "" && !skcc.IsValidNumber(s.SKCCNumber) {
		return fmt.Errorf("unparsable SKCC number %q", s.SKCCNumber)
	}
	for name, date := range map[string]string{
		"join_date":       s.JoinDate,
		"centurion_date":  s.CenturionDate,
		"tribune_x8_date": s.TribuneX8Date,
	} {
		if date != "" && !dateRegexp.MatchString(date) {
			return fmt.Errorf("%s must be YYYYMMDD", name)
		}
	}
	return nil
}
