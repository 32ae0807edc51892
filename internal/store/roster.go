package store

import (
	"database/sql"
	"fmt"

	"github.com/garyPenhook/skcclog/internal/model"
)

// RosterStore is the local cache of the membership roster. It satisfies
// roster.MemberStore.
type RosterStore struct {
	db *sql.DB
}

func NewRosterStore(db *sql.DB) *RosterStore {
	return &RosterStore{db: db}
}

// ReplaceMembers swaps the cached roster for a fresh download in one
// transaction, so readers never see a half-written table.
func (s *RosterStore) ReplaceMembers(members []model.Member) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace members: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM roster_members`); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO roster_members (base_number, suffix, callsign, name, city, spc, join_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare roster insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range members {
		if _, err := stmt.Exec(m.BaseNumber, m.Suffix, m.Callsign, m.Name, m.City, m.SPC, m.JoinDate); err != nil {
			return fmt.Errorf("insert member %s: %w", m.BaseNumber, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace members: %w", err)
	}
	return nil
}

func (s *RosterStore) Members() ([]model.Member, error) {
	rows, err := s.db.Query(`SELECT base_number, suffix, callsign, name, city, spc, join_date
		FROM roster_members`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.BaseNumber, &m.Suffix, &m.Callsign, &m.Name, &m.City, &m.SPC, &m.JoinDate); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// AwardRosterStore is the local cache of the official award rolls. It
// satisfies roster.RollStore.
type AwardRosterStore struct {
	db *sql.DB
}

func NewAwardRosterStore(db *sql.DB) *AwardRosterStore {
	return &AwardRosterStore{db: db}
}

// ReplaceRoll swaps the cached entries for one roll type. Other roll types
// are untouched, so a failed Tribune fetch never clobbers the Senator cache.
func (s *AwardRosterStore) ReplaceRoll(rollType string, entries []model.AwardRosterEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace roll: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM award_roster WHERE award_type = ?`, rollType); err != nil {
		return fmt.Errorf("clear roll %s: %w", rollType, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO award_roster (award_type, base_number, callsign, award_date)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare roll insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(rollType, e.BaseNumber, e.Callsign, e.AwardDate); err != nil {
			return fmt.Errorf("insert roll entry %s: %w", e.BaseNumber, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace roll: %w", err)
	}
	return nil
}

func (s *AwardRosterStore) Roll(rollType string) ([]model.AwardRosterEntry, error) {
	rows, err := s.db.Query(`SELECT award_type, base_number, callsign, award_date
		FROM award_roster WHERE award_type = ?`, rollType)
	if err != nil {
		return nil, fmt.Errorf("list roll %s: %w", rollType, err)
	}
	defer rows.Close()

	var entries []model.AwardRosterEntry
	for rows.Next() {
		var e model.AwardRosterEntry
		if err := rows.Scan(&e.AwardType, &e.BaseNumber, &e.Callsign, &e.AwardDate); err != nil {
			return nil, fmt.Errorf("scan roll entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
