package store

import (
	"database/sql"
	"fmt"

	"github.com/garyPenhook/skcclog/internal/model"
)

// Settings keys. Stored as individual rows so partial updates need no schema
// changes.
const (
	settingCallsign      = "operator_callsign"
	settingSKCCNumber    = "operator_skcc_number"
	settingJoinDate      = "operator_join_date"
	settingCenturionDate = "operator_centurion_date"
	settingTribuneX8Date = "operator_tribune_x8_date"
)

type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *SettingsStore) set(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// Load returns the operator settings, with zero values for anything not yet
// configured.
func (s *SettingsStore) Load() (*model.Settings, error) {
	var settings model.Settings
	var err error
	if settings.Callsign, err = s.get(settingCallsign); err != nil {
		return nil, err
	}
	if settings.SKCCNumber, err = s.get(settingSKCCNumber); err != nil {
		return nil, err
	}
	if settings.JoinDate, err = s.get(settingJoinDate); err != nil {
		return nil, err
	}
	if settings.CenturionDate, err = s.get(settingCenturionDate); err != nil {
		return nil, err
	}
	if settings.TribuneX8Date, err = s.get(settingTribuneX8Date); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save writes all operator settings in one transaction.
func (s *SettingsStore) Save(settings model.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save settings: %w", err)
	}
	defer tx.Rollback()

	pairs := map[string]string{
		settingCallsign:      settings.Callsign,
		settingSKCCNumber:    settings.SKCCNumber,
		settingJoinDate:      settings.JoinDate,
		settingCenturionDate: settings.CenturionDate,
		settingTribuneX8Date: settings.TribuneX8Date,
	}
	for key, value := range pairs {
		if err := s.set(tx, key, value); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save settings: %w", err)
	}
	return nil
}
