package extract

import "strings"

// CountryEntry maps a country code to the address substrings that indicate it.
type CountryEntry struct {
	Code       string   `yaml:"code"`
	Indicators []string `yaml:"indicators"`
}

// CountryTable is an ordered indicator table; order is significant because
// the first entry with a matching indicator wins.
type CountryTable []CountryEntry

// CountryFromAddress scans the table in order and returns the code of the
// first entry whose indicator appears (case-insensitively) in the address.
// An address matching indicators of several countries resolves to whichever
// entry comes first in the table; the empty string means no match.
func CountryFromAddress(address string, table CountryTable) string {
	if address == "" {
		return ""
	}
	upper := strings.ToUpper(address)
	for _, entry := range table {
		for _, indicator := range entry.Indicators {
			if strings.Contains(upper, strings.ToUpper(indicator)) {
				return entry.Code
			}
		}
	}
	return ""
}
