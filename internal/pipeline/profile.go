// Package pipeline composes the normalization, chunking and extraction steps
// into per-domain document assembly. The three content domains (articles,
// subject guides, school profiles) share one pipeline parametrized by a
// Profile instead of carrying three copies of the logic.
package pipeline

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bestfranklinAI/web-scraper-future-studies/internal/extract"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/text"
)

// Source types understood by the registry.
const (
	SourceArticle = "article"
	SourceSubject = "subject"
	SourceSchool  = "school"
)

// Profile is the compiled, immutable configuration of one content domain.
type Profile struct {
	SourceType  string
	IDPrefix    string
	ContentType string
	Language    string
	Chunks      text.ChunkLimits
	Keyword     extract.KeywordConfig
	Topic       extract.TopicConfig
	Countries   extract.CountryTable
	Variation   extract.VariationConfig
}

// ProfileSpec is the serializable form of a Profile, loadable from YAML so
// tests and deployments can substitute alternate vocabularies.
type ProfileSpec struct {
	IDPrefix           string                 `yaml:"id_prefix"`
	ContentType        string                 `yaml:"content_type"`
	Language           string                 `yaml:"language"`
	Stopwords          []string               `yaml:"stopwords"`
	ExtraStopwords     []string               `yaml:"extra_stopwords"`
	KeywordPatterns    []string               `yaml:"keyword_patterns"`
	VocabularyPatterns []string               `yaml:"vocabulary_patterns"`
	Synonyms           []extract.SynonymEntry `yaml:"synonyms"`
	CountryTable       extract.CountryTable   `yaml:"country_table"`
	CountryTerms       []extract.LocaleEntry  `yaml:"country_terms"`
	Chunks             text.ChunkLimits       `yaml:"chunks"`
}

// Compile resolves a spec into an immutable Profile, compiling its pattern
// tables. Empty fields fall back to the shared defaults.
func (s ProfileSpec) Compile(sourceType string) (*Profile, error) {
	p := &Profile{
		SourceType:  sourceType,
		IDPrefix:    s.IDPrefix,
		ContentType: s.ContentType,
		Language:    s.Language,
		Chunks:      s.Chunks,
	}
	if p.IDPrefix == "" {
		p.IDPrefix = "linkedu"
	}
	if p.ContentType == "" {
		p.ContentType = "educational_article"
	}
	if p.Language == "" {
		p.Language = "zh-HK"
	}
	if p.Chunks == (text.ChunkLimits{}) {
		p.Chunks = text.DefaultChunkLimits()
	}

	stopwords := s.Stopwords
	if len(stopwords) == 0 {
		stopwords = chineseStopwords
	}
	stopSet := make(map[string]struct{}, len(stopwords)+len(s.ExtraStopwords))
	for _, w := range stopwords {
		stopSet[w] = struct{}{}
	}
	for _, w := range s.ExtraStopwords {
		stopSet[w] = struct{}{}
	}

	keywordPatterns := s.KeywordPatterns
	if len(keywordPatterns) == 0 {
		keywordPatterns = defaultKeywordPatterns
	}
	compiledKeyword, err := compilePatterns(keywordPatterns)
	if err != nil {
		return nil, fmt.Errorf("keyword patterns for %q: %w", sourceType, err)
	}

	vocabPatterns := s.VocabularyPatterns
	if len(vocabPatterns) == 0 {
		vocabPatterns = defaultVocabularyPatterns
	}
	compiledVocab, err := compilePatterns(vocabPatterns)
	if err != nil {
		return nil, fmt.Errorf("vocabulary patterns for %q: %w", sourceType, err)
	}

	p.Keyword = extract.KeywordConfig{Patterns: compiledKeyword, Stopwords: stopSet}
	p.Topic = extract.TopicConfig{Vocabulary: compiledVocab, Stopwords: stopSet}

	p.Countries = s.CountryTable
	if len(p.Countries) == 0 {
		p.Countries = defaultCountryTable()
	}
	p.Variation = extract.VariationConfig{CountryTerms: s.CountryTerms, Synonyms: s.Synonyms}
	if len(p.Variation.CountryTerms) == 0 {
		p.Variation.CountryTerms = defaultCountryTerms()
	}
	if len(p.Variation.Synonyms) == 0 {
		p.Variation.Synonyms = defaultSynonyms()
	}

	return p, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, pat := range patterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pat, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Registry maps a source type to its compiled profile.
type Registry map[string]*Profile

// For returns the profile for sourceType, falling back to the article
// profile for unknown or empty types.
func (r Registry) For(sourceType string) *Profile {
	if p, ok := r[sourceType]; ok {
		return p
	}
	return r[SourceArticle]
}

// DefaultRegistry compiles the built-in article/subject/school profiles.
func DefaultRegistry() Registry {
	reg, err := buildRegistry(defaultSpecs())
	if err != nil {
		// Built-in tables are constants; a compile failure is a programming error.
		panic(err)
	}
	return reg
}

// LoadRegistry returns the default registry overlaid with profile specs from
// a YAML file (a mapping of source type to spec). An empty path yields the
// defaults unchanged.
func LoadRegistry(path string) (Registry, error) {
	reg := DefaultRegistry()
	if path == "" {
		return reg, nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var specs map[string]ProfileSpec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parse profile file: %w", err)
	}
	for sourceType, spec := range specs {
		p, err := spec.Compile(sourceType)
		if err != nil {
			return nil, err
		}
		reg[sourceType] = p
	}
	return reg, nil
}

func buildRegistry(specs map[string]ProfileSpec) (Registry, error) {
	reg := make(Registry, len(specs))
	for sourceType, spec := range specs {
		p, err := spec.Compile(sourceType)
		if err != nil {
			return nil, err
		}
		reg[sourceType] = p
	}
	return reg, nil
}

func defaultSpecs() map[string]ProfileSpec {
	return map[string]ProfileSpec{
		SourceArticle: {
			IDPrefix:    "linkedu",
			ContentType: "educational_article",
		},
		SourceSubject: {
			IDPrefix:    "linkedu_subject",
			ContentType: "subject_guide",
		},
		SourceSchool: {
			IDPrefix:    "linkedu_school",
			ContentType: "school_profile",
			// School pages mix Chinese narrative with English boilerplate.
			ExtraStopwords: []string{"school", "university", "college", "campus", "student", "students", "education"},
		},
	}
}
