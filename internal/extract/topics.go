package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// TopicConfig carries the fixed tables for topic extraction.
type TopicConfig struct {
	// Vocabulary is the domain-vocabulary pattern list; every match over
	// title+body becomes a topic candidate.
	Vocabulary []*regexp.Regexp
	Stopwords  map[string]struct{}
}

// categorySplitRe splits raw category labels on full-width/half-width dots,
// commas and whitespace.
var categorySplitRe = regexp.MustCompile(`[．·,，\s]+`)

// SplitLabels tokenizes a delimiter-separated label string (categories,
// popular subjects) into trimmed, non-empty tokens.
func SplitLabels(labels string) []string {
	var out []string
	for _, tok := range categorySplitRe.Split(labels, -1) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Topics maps raw category labels plus domain-vocabulary matches in text to a
// sorted, deduplicated set of topic tags. Candidates shorter than two runes
// or present in the stopword set are discarded.
func Topics(categoryLabels, text string, cfg TopicConfig) []string {
	set := make(map[string]struct{})

	for _, tok := range SplitLabels(categoryLabels) {
		set[tok] = struct{}{}
	}

	for _, re := range cfg.Vocabulary {
		for _, m := range re.FindAllString(text, -1) {
			set[strings.TrimSpace(m)] = struct{}{}
		}
	}

	topics := make([]string, 0, len(set))
	for t := range set {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		if _, stop := cfg.Stopwords[t]; stop {
			continue
		}
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}
