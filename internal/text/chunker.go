package text

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ChunkLimits are the per-domain size thresholds, measured in bytes of the
// raw section/paragraph text.
type ChunkLimits struct {
	MinSection   int `yaml:"min_section"`
	MinParagraph int `yaml:"min_paragraph"`
	MaxPack      int `yaml:"max_pack"`
}

// DefaultChunkLimits matches the thresholds the collector output was tuned
// for: sections under 50 bytes and paragraphs under 30 bytes carry too little
// context to retrieve on, packed chunks stay under 1000 bytes.
func DefaultChunkLimits() ChunkLimits {
	return ChunkLimits{MinSection: 50, MinParagraph: 30, MaxPack: 1000}
}

// Piece is one chunk of normalized text emitted by a chunking strategy.
// The ID is unique within the source document.
type Piece struct {
	ID      string
	Heading string
	Text    string
}

var headingMarkerRe = regexp.MustCompile(`(?m)^##[ \t]+`)

// HasHeadingMarkers reports whether body carries markdown-style "## " section
// markers, which selects the heading-delimited strategy.
func HasHeadingMarkers(body string) bool {
	return headingMarkerRe.MatchString(body)
}

type section struct {
	heading string
	content string
}

// ChunkHeadings splits a marker-structured body into sections on "## " lines
// and chunks each section by paragraph. Text before the first marker becomes
// a heading-less section subject to the same thresholds.
func ChunkHeadings(body string, lim ChunkLimits) []Piece {
	locs := headingMarkerRe.FindAllStringIndex(body, -1)

	var sections []section
	if len(locs) == 0 || locs[0][0] > 0 {
		end := len(body)
		if len(locs) > 0 {
			end = locs[0][0]
		}
		sections = append(sections, section{content: strings.TrimSpace(body[:end])})
	}
	for i, loc := range locs {
		rest := body[loc[1]:]
		if i+1 < len(locs) {
			rest = body[loc[1]:locs[i+1][0]]
		}
		heading, content := rest, ""
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			heading, content = rest[:nl], rest[nl+1:]
		}
		sections = append(sections, section{
			heading: strings.TrimSpace(heading),
			content: strings.TrimSpace(content),
		})
	}

	return chunkSections(sections, lim)
}

// ChunkSections chunks pre-extracted (heading, content) sections, for records
// whose collector already split the page structurally. Both slices must have
// the same length.
func ChunkSections(headings, contents []string, lim ChunkLimits) []Piece {
	sections := make([]section, 0, len(headings))
	for i := range headings {
		sections = append(sections, section{
			heading: strings.TrimSpace(headings[i]),
			content: strings.TrimSpace(contents[i]),
		})
	}
	return chunkSections(sections, lim)
}

func chunkSections(sections []section, lim ChunkLimits) []Piece {
	var pieces []Piece
	for i, sec := range sections {
		if sec.content == "" {
			continue
		}
		// Section weight includes the heading; very short sections carry
		// too little context to retrieve on.
		if len(sec.heading)+len(sec.content) < lim.MinSection {
			continue
		}
		j := 0
		for _, para := range strings.Split(sec.content, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" || len(para) < lim.MinParagraph {
				continue
			}
			norm := Normalize(para)
			if norm == "" {
				continue
			}
			id := fmt.Sprintf("chunk_%d", i)
			if j > 0 {
				id = fmt.Sprintf("chunk_%d_%d", i, j)
			}
			pieces = append(pieces, Piece{ID: id, Heading: Normalize(sec.heading), Text: norm})
			j++
		}
	}
	return pieces
}

// PackSentences chunks unstructured long-form body text by greedily packing
// sentences into buffers of at most lim.MaxPack bytes. A single sentence
// longer than the limit is emitted on its own, oversized. Buffers shorter
// than the paragraph minimum are dropped.
func PackSentences(body string, lim ChunkLimits) []Piece {
	sentences := splitSentences(body)
	if len(sentences) == 0 {
		return nil
	}

	var pieces []Piece
	emit := func(buf string) {
		buf = strings.TrimSpace(buf)
		if buf == "" || len(buf) < lim.MinParagraph {
			return
		}
		norm := Normalize(buf)
		if norm == "" {
			return
		}
		pieces = append(pieces, Piece{ID: fmt.Sprintf("chunk_%d", len(pieces)), Text: norm})
	}

	current := ""
	for _, sentence := range sentences {
		// +1 accounts for the joining space below.
		if current != "" && len(current)+1+len(sentence) > lim.MaxPack {
			emit(current)
			current = sentence
			continue
		}
		if current == "" {
			current = sentence
		} else {
			current += " " + sentence
		}
	}
	emit(current)

	return pieces
}

// terminal punctuation for sentence splitting, full-width and ASCII
func isTerminal(r rune) bool {
	switch r {
	case '。', '！', '？', '.', '!', '?':
		return true
	}
	return false
}

func splitSentences(s string) []string {
	var out []string
	start := 0
	inTerminal := false
	fullWidth := false
	for i, r := range s {
		if isTerminal(r) {
			inTerminal = true
			if r > 0x7F {
				fullWidth = true
			}
			continue
		}
		if inTerminal {
			// ASCII terminals end a sentence only before whitespace, so
			// decimals and abbreviations stay intact. Full-width terminals
			// always end one.
			if fullWidth || unicode.IsSpace(r) {
				sentence := strings.TrimSpace(s[start:i])
				if sentence != "" {
					out = append(out, sentence)
				}
				start = i
			}
			inTerminal = false
			fullWidth = false
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		out = append(out, tail)
	}
	return out
}
