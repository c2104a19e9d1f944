package extract

import (
	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/text"
)

const (
	qaShortAnswerRunes  = 200
	qaDetailAnswerRunes = 300
	qaHeadingChunks     = 5
)

// QAPairs synthesizes templated question/answer pairs from a document's
// structure: two title-level pairs, then one pair per heading-bearing chunk
// among the first five chunks.
func QAPairs(title, fullText string, chunks []document.Chunk) []document.QAPair {
	firstAnswer := text.TruncateRunes(fullText, qaShortAnswerRunes) + "..."
	if len(chunks) > 0 {
		firstAnswer = chunks[0].Text
	}

	pairs := []document.QAPair{
		{
			Question: "什麼是" + title + "？",
			Answer:   firstAnswer,
			Context:  title,
		},
		{
			Question: "關於" + title + "的詳細資訊",
			Answer:   text.Ellipsize(fullText, qaDetailAnswerRunes),
			Context:  title,
		},
	}

	limit := len(chunks)
	if limit > qaHeadingChunks {
		limit = qaHeadingChunks
	}
	for _, chunk := range chunks[:limit] {
		if chunk.Heading == "" {
			continue
		}
		pairs = append(pairs, document.QAPair{
			Question: chunk.Heading + "是什麼？",
			Answer:   chunk.Text,
			Context:  chunk.ContextLabel,
		})
	}

	return pairs
}
