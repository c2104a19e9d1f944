// Package extract implements the rule-based extraction channels of the
// optimization pipeline: keywords, topic tags, search variations, country
// inference and question/answer synthesis. All functions are pure; the
// vocabulary tables come in as configuration.
package extract

import (
	"regexp"
	"sort"
	"strings"
)

// KeywordConfig carries the fixed tables for keyword extraction.
type KeywordConfig struct {
	// Patterns are matched verbatim against the text; every match is kept.
	Patterns []*regexp.Regexp
	// Stopwords are excluded from the frequency channel.
	Stopwords map[string]struct{}
}

// tokenRe captures frequency-channel candidates: CJK runs of at least two
// ideographs or Latin runs of at least three letters.
var tokenRe = regexp.MustCompile(`[\x{4e00}-\x{9fff}]{2,}|[A-Za-z]{3,}`)

const (
	maxKeywords   = 20
	minTokenCount = 3 // frequency channel admits tokens seen more than twice
)

// Keywords extracts salient search terms from text by merging a pattern
// channel (acronyms, year mentions, labeled fields) with a frequency channel
// (high-frequency non-stopword tokens). The result is sorted and capped at 20.
func Keywords(text string, cfg KeywordConfig) []string {
	set := make(map[string]struct{})

	for _, re := range cfg.Patterns {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			if m != "" {
				set[m] = struct{}{}
			}
		}
	}

	counts := make(map[string]int)
	for _, tok := range tokenRe.FindAllString(text, -1) {
		if _, stop := cfg.Stopwords[tok]; stop {
			continue
		}
		counts[tok]++
	}

	type freq struct {
		token string
		n     int
	}
	ranked := make([]freq, 0, len(counts))
	for tok, n := range counts {
		ranked = append(ranked, freq{tok, n})
	}
	// Descending by count, lexicographic on ties so output is stable.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].token < ranked[j].token
	})
	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	for _, f := range ranked {
		if f.n >= minTokenCount {
			set[f.token] = struct{}{}
		}
	}

	keywords := make([]string, 0, len(set))
	for k := range set {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
