package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/extract"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/text"
)

// ErrSkippedRecord marks records excluded from the output set because they
// lack a usable title or body. Callers log and continue; nothing is retried.
var ErrSkippedRecord = errors.New("record skipped")

const (
	summaryRunes       = 200
	summaryMinParaSize = 50 // bytes; shorter paragraphs are not summary material
)

// Extra-fact keys with pipeline meaning; everything else is opaque and copied
// into source metadata verbatim.
const (
	factCountry         = "country"
	factAddress         = "address"
	factPopularSubjects = "popular_subjects"
)

// Assembler turns RawRecords of one source type into Documents. It holds only
// immutable configuration, so a single Assembler may be shared across
// goroutines.
type Assembler struct {
	profile *Profile
	now     func() time.Time
}

func NewAssembler(profile *Profile) *Assembler {
	return &Assembler{profile: profile, now: time.Now}
}

// Assemble builds the retrieval-ready Document for one record. seq numbers
// records within a batch starting at 1 and determines the document ID.
// Records without a usable title or body return ErrSkippedRecord.
func (a *Assembler) Assemble(rec document.RawRecord, seq int) (*document.Document, error) {
	title := text.Normalize(rec.Title)
	excerpt := text.Normalize(rec.Excerpt)
	fullText := text.Normalize(rec.BodyText)

	if title == "" {
		return nil, fmt.Errorf("%w: empty title", ErrSkippedRecord)
	}
	if fullText == "" {
		return nil, fmt.Errorf("%w: empty body", ErrSkippedRecord)
	}

	chunks := a.chunk(rec, title)
	topics := extract.Topics(rec.CategoryLabels, rec.Title+" "+rec.BodyText, a.profile.Topic)
	keywords := extract.Keywords(title+" "+excerpt+" "+fullText, a.profile.Keyword)
	variations := a.variations(rec, title, topics)
	qaPairs := extract.QAPairs(title, fullText, chunks)

	summary := excerpt
	if summary == "" {
		summary = a.summary(rec.BodyText, fullText)
	}

	return &document.Document{
		ID:               fmt.Sprintf("%s_%04d", a.profile.IDPrefix, seq),
		Title:            title,
		Summary:          summary,
		FullText:         fullText,
		Topics:           topics,
		Keywords:         keywords,
		Chunks:           chunks,
		SearchVariations: variations,
		QAPairs:          qaPairs,
		SourceMetadata:   a.metadata(rec),
	}, nil
}

// chunk selects the chunking strategy by input shape: structured sections and
// heading markers go through the heading-delimited chunker, unstructured
// long-form body through the sentence packer.
func (a *Assembler) chunk(rec document.RawRecord, title string) []document.Chunk {
	var pieces []text.Piece
	switch {
	case len(rec.StructuredSections) > 0:
		headings := make([]string, len(rec.StructuredSections))
		contents := make([]string, len(rec.StructuredSections))
		for i, sec := range rec.StructuredSections {
			headings[i] = sec.Heading
			contents[i] = sec.Content
		}
		pieces = text.ChunkSections(headings, contents, a.profile.Chunks)
	case text.HasHeadingMarkers(rec.BodyText):
		pieces = text.ChunkHeadings(rec.BodyText, a.profile.Chunks)
	default:
		pieces = text.PackSentences(rec.BodyText, a.profile.Chunks)
	}

	chunks := make([]document.Chunk, 0, len(pieces))
	for i, piece := range pieces {
		label := title
		if piece.Heading != "" {
			label = title + " - " + piece.Heading
		}
		chunks = append(chunks, document.Chunk{
			ID:           piece.ID,
			Heading:      piece.Heading,
			Text:         piece.Text,
			OrderIndex:   i,
			ContextLabel: label,
		})
	}
	return chunks
}

// summary falls back from the excerpt to the first meaningful body paragraph,
// and finally to the truncated body itself.
func (a *Assembler) summary(rawBody, fullText string) string {
	for _, para := range strings.Split(rawBody, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || strings.HasPrefix(para, "##") {
			continue
		}
		norm := text.Normalize(para)
		if len(norm) > summaryMinParaSize {
			return text.Ellipsize(norm, summaryRunes)
		}
	}
	return text.Ellipsize(fullText, summaryRunes)
}

func (a *Assembler) variations(rec document.RawRecord, title string, topics []string) []string {
	country := strings.TrimSpace(rec.ExtraFacts[factCountry])
	if country == "" {
		country = extract.CountryFromAddress(rec.ExtraFacts[factAddress], a.profile.Countries)
	}

	facets := extract.SplitLabels(rec.ExtraFacts[factPopularSubjects])
	if len(facets) == 0 {
		facets = topics
	}

	return extract.Variations(title, country, facets, a.profile.Variation)
}

func (a *Assembler) metadata(rec document.RawRecord) map[string]string {
	meta := make(map[string]string, len(rec.ExtraFacts)+4)
	for k, v := range rec.ExtraFacts {
		meta[k] = v
	}
	meta["source_url"] = rec.SourceURL
	meta["content_type"] = a.profile.ContentType
	meta["language"] = a.profile.Language
	meta["generated_at"] = a.now().UTC().Format(time.RFC3339)
	return meta
}
