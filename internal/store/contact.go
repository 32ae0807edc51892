package store

import (
	"database/sql"
	"fmt"

	"github.com/garyPenhook/skcclog/internal/model"
)

type ContactStore struct {
	db *sql.DB
}

func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

const contactCols = `id, callsign, qso_date, time_on, mode, band, key_type, skcc_number,
	power_watts, their_power_watts, distance_nm, duration_minutes,
	state, continent, country, grid_square, comment, created_at`

func scanContact(scanner interface{ Scan(...any) error }) (*model.Contact, error) {
	var c model.Contact
	var power, theirPower, distance sql.NullFloat64
	var duration sql.NullInt64

	err := scanner.Scan(
		&c.ID, &c.Callsign, &c.Date, &c.TimeOn, &c.Mode, &c.Band, &c.KeyType, &c.SKCCNumber,
		&power, &theirPower, &distance, &duration,
		&c.State, &c.Continent, &c.Country, &c.GridSquare, &c.Comment, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if power.Valid {
		c.PowerWatts = &power.Float64
	}
	if theirPower.Valid {
		c.TheirPowerWatts = &theirPower.Float64
	}
	if distance.Valid {
		c.DistanceNM = &distance.Float64
	}
	if duration.Valid {
		d := int(duration.Int64)
		c.DurationMinutes = &d
	}
	return &c, nil
}

// List returns the full log ordered by QSO date and time. The award engine
// tolerates any order; this one just reads well.
func (s *ContactStore) List() ([]model.Contact, error) {
	rows, err := s.db.Query(`SELECT ` + contactCols + ` FROM contacts ORDER BY qso_date ASC, time_on ASC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func (s *ContactStore) GetByID(id int64) (*model.Contact, error) {
	row := s.db.QueryRow(`SELECT `+contactCols+` FROM contacts WHERE id = ?`, id)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (s *ContactStore) Create(c model.Contact) (*model.Contact, error) {
	result, err := s.db.Exec(
		`INSERT INTO contacts (callsign, qso_date, time_on, mode, band, key_type, skcc_number,
			power_watts, their_power_watts, distance_nm, duration_minutes,
			state, continent, country, grid_square, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Callsign, c.Date, c.TimeOn, c.Mode, c.Band, c.KeyType, c.SKCCNumber,
		c.PowerWatts, c.TheirPowerWatts, c.DistanceNM, c.DurationMinutes,
		c.State, c.Continent, c.Country, c.GridSquare, c.Comment,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ContactStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// Count returns the number of logged contacts.
func (s *ContactStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}
