package roster

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

// The SKCC pages are plain HTML tables; a regex scan is enough and avoids a
// DOM dependency for two fixed page layouts.

// Membership roster row: number (may carry a status suffix), callsign, name,
// city, SPC, join date.
var memberRowPattern = regexp.MustCompile(
	`<td[^>]*>(\d+[CTS]?(?:x\d+)?)</td>\s*` +
		`<td[^>]*>([^<]+)</td>\s*` +
		`<td[^>]*>([^<]*)</td>\s*` +
		`<td[^>]*>([^<]*)</td>\s*` +
		`<td[^>]*>([^<]*)</td>\s*` +
		`<td[^>]*>(\d{1,2}\s+\w{3}\s+\d{4})</td>`)

// Award roll row: callsign, base number, then (eventually) the award date.
// The Tribune page prepends an endorsement column ("12 x8") that the other
// rolls lack, hence the two patterns.
var (
	tribuneRowPattern = regexp.MustCompile(
		`<td[^>]*>\d+(?:\s+x\d+)?</td>\s*<td[^>]*>([^<]+)</td>\s*<td[^>]*>(\d+)</td>[\s\S]*?<td[^>]*>(\d{1,2}\s+\w{3}\s+\d{4})</td>`)
	plainRowPattern = regexp.MustCompile(
		`<td[^>]*>\d+</td>\s*<td[^>]*>([^<]+)</td>\s*<td[^>]*>(\d+)</td>[\s\S]*?<td[^>]*>(\d{1,2}\s+\w{3}\s+\d{4})</td>`)
)

var monthNumbers = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04",
	"MAY": "05", "JUN": "06", "JUL": "07", "AUG": "08",
	"SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

// parseRosterDate converts the pages' "28 Jan 2006" form to YYYYMMDD.
func parseRosterDate(raw string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) != 3 {
		return "", fmt.Errorf("parse roster date %q: want 3 fields", raw)
	}
	month, ok := monthNumbers[strings.ToUpper(fields[1])]
	if !ok {
		return "", fmt.Errorf("parse roster date %q: unknown month", raw)
	}
	day := fields[0]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(day) != 2 || len(fields[2]) != 4 {
		return "", fmt.Errorf("parse roster date %q: malformed day or year", raw)
	}
	return fields[2] + month + day, nil
}

// ParseMembers extracts member rows from the membership roster page. Silent
// keys (calls tagged /SK) are skipped; rows with unparsable dates are
// dropped rather than failing the whole page.
func ParseMembers(html string) []model.Member {
	var members []model.Member
	for _, row := range memberRowPattern.FindAllStringSubmatch(html, -1) {
		number, call := strings.TrimSpace(row[1]), strings.TrimSpace(row[2])
		if strings.Contains(strings.ToUpper(call), "/SK") {
			continue
		}
		base := skcc.ExtractBaseNumber(number)
		if base == "" {
			continue
		}
		joined, err := parseRosterDate(row[6])
		if err != nil {
			continue
		}
		members = append(members, model.Member{
			BaseNumber: base,
			Suffix:     skcc.MemberType(number),
			Callsign:   strings.ToUpper(call),
			Name:       strings.TrimSpace(row[3]),
			City:       strings.TrimSpace(row[4]),
			SPC:        strings.ToUpper(strings.TrimSpace(row[5])),
			JoinDate:   joined,
		})
	}
	return members
}

// ParseAwardRoll extracts award roll rows for one roll type.
func ParseAwardRoll(rollType, html string) []model.AwardRosterEntry {
	pattern := plainRowPattern
	if rollType == RollTribune {
		pattern = tribuneRowPattern
	}
	var entries []model.AwardRosterEntry
	for _, row := range pattern.FindAllStringSubmatch(html, -1) {
		awarded, err := parseRosterDate(row[3])
		if err != nil {
			continue
		}
		entries = append(entries, model.AwardRosterEntry{
			AwardType:  rollType,
			BaseNumber: strings.TrimSpace(row[2]),
			Callsign:   strings.ToUpper(strings.TrimSpace(row[1])),
			AwardDate:  awarded,
		})
	}
	return entries
}
