package extract

import "strings"

// LocaleEntry maps a country code to locale/spelling variants used to widen
// entity-name queries ("name london", "name british", ...).
type LocaleEntry struct {
	Code  string   `yaml:"code"`
	Terms []string `yaml:"terms"`
}

// SynonymEntry expands a vocabulary term appearing inside an entity name into
// alternate phrasings ("大學" -> "university college ...").
type SynonymEntry struct {
	Term     string   `yaml:"term"`
	Variants []string `yaml:"variants"`
}

// VariationConfig carries the fixed expansion tables for query variations.
type VariationConfig struct {
	CountryTerms []LocaleEntry
	Synonyms     []SynonymEntry
}

const (
	maxVariations      = 10
	maxFacetVariations = 3
)

// Variations generates alternate query strings for an entity, capped at ten,
// first-seen order preserved, without duplicates: the bare name, the name
// qualified by country code, by up to three facet terms, by up to three
// locale variants of the country, and by synonym expansions of vocabulary
// terms the name contains.
func Variations(name, countryCode string, facets []string, cfg VariationConfig) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(v string) {
		if len(out) >= maxVariations {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	add(name)
	if countryCode != "" {
		add(name + " " + countryCode)
	}
	for i, facet := range facets {
		if i >= maxFacetVariations {
			break
		}
		facet = strings.TrimSpace(facet)
		if facet != "" {
			add(name + " " + facet)
		}
	}
	for _, entry := range cfg.CountryTerms {
		if entry.Code != countryCode {
			continue
		}
		for i, term := range entry.Terms {
			if i >= maxFacetVariations {
				break
			}
			add(name + " " + term)
		}
		break
	}
	for _, syn := range cfg.Synonyms {
		if !strings.Contains(name, syn.Term) {
			continue
		}
		for i, variant := range syn.Variants {
			if i >= maxFacetVariations {
				break
			}
			add(name + " " + variant)
		}
	}

	return out
}
