package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
	"github.com/garyPenhook/skcclog/internal/store"
)

var dateRegexp = regexp.MustCompile(`^\d{8}$`)

type ContactHandler struct {
	contacts *store.ContactStore
	logger   *slog.Logger
}

func NewContactHandler(cs *store.ContactStore, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: cs, logger: logger}
}

func decodeContact(r *http.Request, c *model.Contact) error {
	if err := json.NewDecoder(r.Body).Decode(c); err != nil {
		return fmt.Errorf("invalid JSON")
	}
	c.Callsign = strings.ToUpper(strings.TrimSpace(c.Callsign))
	c.Mode = strings.ToUpper(strings.TrimSpace(c.Mode))
	c.Band = strings.ToUpper(strings.TrimSpace(c.Band))
	c.KeyType = strings.ToUpper(strings.TrimSpace(c.KeyType))
	if c.Callsign == "" {
		return fmt.Errorf("callsign is required")
	}
	if !dateRegexp.MatchString(c.Date) {
		return fmt.Errorf("date must be YYYYMMDD")
	}
	// Non-mechanical key types are stored as-is; the award gate handles
	// disqualification.
	if c.SKCCNumber != "" && !skcc.IsValidNumber(c.SKCCNumber) {
		return fmt.Errorf("unparsable SKCC number %q", c.SKCCNumber)
	}
	return nil
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List()
	if err != nil {
		h.logger.Error("list contacts", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load contacts")
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c model.Contact
	if err := decodeContact(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.contacts.Create(c)
	if err != nil {
		h.logger.Error("create contact", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save contact")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := h.contacts.GetByID(id)
	if err != nil {
		h.logger.Error("get contact", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load contact")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	if err := h.contacts.Delete(id); err != nil {
		h.logger.Error("delete contact", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete contact")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
