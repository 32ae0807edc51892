package award

import (
	"strings"

	"github.com/garyPenhook/skcclog/internal/model"
	"github.com/garyPenhook/skcclog/internal/skcc"
)

// Location inference is an ordered chain: the explicit field wins, then the
// callsign heuristic, then a scan of the free-text comment. Later methods
// are lower-confidence, so the order is load-bearing.

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
}

// Comment scans iterate these sorted code lists so a comment matching more
// than one code always resolves to the same location.
var (
	usStateCodes   = sortedKeys(usStates)
	provinceCodes  = sortedKeys(canadianProvinces)
	territoryCodes = sortedKeys(canadianTerritories)
	continentCodes = []string{"AF", "AS", "EU", "NA", "OC", "SA"}
)

// Primary state per US call-area digit. A call-area guess is coarse; it only
// fires when neither the state field nor anything better is available.
var callAreaStates = map[byte]string{
	'0': "CO", '1': "CT", '2': "NJ", '3': "DE", '4': "AL",
	'5': "AR", '6': "CA", '7': "AZ", '8': "IN", '9': "IL",
}

// stateFromContact resolves a US state code through the fallback chain.
// Returns "" when no method yields a known state.
func stateFromContact(c model.Contact) string {
	if s := strings.ToUpper(strings.TrimSpace(c.State)); usStates[s] {
		return s
	}
	call := skcc.NormalizeCallsign(c.Callsign)
	if len(call) >= 2 && strings.IndexByte("KWN", call[0]) >= 0 {
		if s, ok := callAreaStates[call[1]]; ok {
			return s
		}
	}
	comment := strings.ToUpper(c.Comment)
	for _, s := range usStateCodes {
		if strings.Contains(comment, s) {
			return s
		}
	}
	return ""
}

var continents = map[string]string{
	"NA": "North America",
	"SA": "South America",
	"EU": "Europe",
	"AS": "Asia",
	"AF": "Africa",
	"OC": "Oceania",
}

// Common country names to continent codes, matched in order.
var countryContinents = []struct {
	name string
	code string
}{
	{"UNITED STATES", "NA"}, {"USA", "NA"}, {"CANADA", "NA"}, {"MEXICO", "NA"},
	{"BRAZIL", "SA"}, {"ARGENTINA", "SA"}, {"CHILE", "SA"},
	{"UNITED KINGDOM", "EU"}, {"GERMANY", "EU"}, {"FRANCE", "EU"},
	{"ITALY", "EU"}, {"SPAIN", "EU"}, {"RUSSIA", "EU"},
	{"JAPAN", "AS"}, {"CHINA", "AS"}, {"INDIA", "AS"},
	{"AUSTRALIA", "OC"}, {"NEW ZEALAND", "OC"},
	{"SOUTH AFRICA", "AF"}, {"EGYPT", "AF"},
}

// continentFromPrefix guesses a continent from common callsign prefixes.
func continentFromPrefix(call string) string {
	switch {
	case call == "":
		return ""
	case strings.HasPrefix(call, "VE"), strings.HasPrefix(call, "XE"):
		return "NA"
	case call[0] == 'K', call[0] == 'W', call[0] == 'N':
		return "NA"
	case strings.HasPrefix(call, "EA8"), strings.HasPrefix(call, "ZS"):
		return "AF"
	case strings.HasPrefix(call, "DL"), strings.HasPrefix(call, "EA"),
		call[0] == 'G', call[0] == 'F':
		return "EU"
	case strings.HasPrefix(call, "JA"), strings.HasPrefix(call, "HL"),
		strings.HasPrefix(call, "BY"):
		return "AS"
	case strings.HasPrefix(call, "VK"), strings.HasPrefix(call, "ZL"):
		return "OC"
	case strings.HasPrefix(call, "PY"), strings.HasPrefix(call, "LU"),
		strings.HasPrefix(call, "CE"):
		return "SA"
	}
	return ""
}

// continentFromContact resolves a continent code through the fallback chain:
// explicit continent field (or mapped country name), callsign prefix, then
// the comment text.
func continentFromContact(c model.Contact) string {
	if cont := strings.ToUpper(strings.TrimSpace(c.Continent)); cont != "" {
		if _, ok := continents[cont]; ok {
			return cont
		}
	}
	if country := strings.ToUpper(strings.TrimSpace(c.Country)); country != "" {
		for _, cc := range countryContinents {
			if strings.Contains(country, cc.name) {
				return cc.code
			}
		}
	}
	if cont := continentFromPrefix(skcc.NormalizeCallsign(c.Callsign)); cont != "" {
		return cont
	}
	comment := strings.ToUpper(c.Comment)
	for _, code := range continentCodes {
		if strings.Contains(comment, code) || strings.Contains(comment, strings.ToUpper(continents[code])) {
			return code
		}
	}
	return ""
}

var canadianProvinces = map[string]bool{
	"BC": true, "AB": true, "SK": true, "MB": true, "ON": true,
	"QC": true, "NB": true, "NS": true, "PE": true, "NL": true,
}

var canadianTerritories = map[string]bool{
	"YT": true, "NT": true, "NU": true,
}

// Canadian call prefixes to province/territory.
var canadianPrefixes = []struct {
	prefix string
	code   string
}{
	{"VE1", "NS"}, {"VA1", "NS"},
	{"VE2", "QC"}, {"VA2", "QC"},
	{"VE3", "ON"}, {"VA3", "ON"},
	{"VE4", "MB"}, {"VA4", "MB"},
	{"VE5", "SK"}, {"VA5", "SK"},
	{"VE6", "AB"}, {"VA6", "AB"},
	{"VE7", "BC"}, {"VA7", "BC"},
	{"VE8", "NT"}, {"VA8", "NT"},
	{"VE9", "NB"}, {"VA9", "NB"},
	{"VO1", "NL"}, {"VO2", "NL"},
	{"VY0", "NU"}, {"VY1", "YT"}, {"VY2", "PE"},
}

// canadianLocation resolves a Canadian province or territory code through the
// same chain: state field, callsign prefix, comment scan.
func canadianLocation(c model.Contact) string {
	if s := strings.ToUpper(strings.TrimSpace(c.State)); canadianProvinces[s] || canadianTerritories[s] {
		return s
	}
	call := skcc.NormalizeCallsign(c.Callsign)
	for _, p := range canadianPrefixes {
		if strings.HasPrefix(call, p.prefix) {
			return p.code
		}
	}
	comment := strings.ToUpper(c.Comment)
	for _, code := range provinceCodes {
		if strings.Contains(comment, code) {
			return code
		}
	}
	for _, code := range territoryCodes {
		if strings.Contains(comment, code) {
			return code
		}
	}
	return ""
}
