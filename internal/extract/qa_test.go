package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
)

func TestQAPairs_TitlePairs(t *testing.T) {
	chunks := []document.Chunk{
		{ID: "chunk_0", Heading: "簡介", Text: "第一個區塊的內容", ContextLabel: "標題 - 簡介"},
	}

	pairs := QAPairs("IELTS考試攻略", "全文內容", chunks)
	require.GreaterOrEqual(t, len(pairs), 2)

	assert.Equal(t, "什麼是IELTS考試攻略？", pairs[0].Question)
	assert.Equal(t, "第一個區塊的內容", pairs[0].Answer)
	assert.Equal(t, "IELTS考試攻略", pairs[0].Context)

	assert.Equal(t, "關於IELTS考試攻略的詳細資訊", pairs[1].Question)
	assert.Equal(t, "全文內容", pairs[1].Answer)
}

func TestQAPairs_NoChunksFallsBackToFullText(t *testing.T) {
	long := strings.Repeat("很長的全文內容", 50) // 350 runes

	pairs := QAPairs("標題", long, nil)
	require.Len(t, pairs, 2)

	first := []rune(pairs[0].Answer)
	assert.Len(t, first, 203) // 200 runes plus the ellipsis marker
	assert.True(t, strings.HasSuffix(pairs[0].Answer, "..."))

	detail := []rune(pairs[1].Answer)
	assert.Len(t, detail, 303)
}

func TestQAPairs_HeadingPairs(t *testing.T) {
	chunks := []document.Chunk{
		{ID: "chunk_0", Heading: "簡介", Text: "簡介內容", ContextLabel: "標題 - 簡介"},
		{ID: "chunk_1", Text: "沒有標題的區塊"},
		{ID: "chunk_2", Heading: "費用", Text: "費用內容", ContextLabel: "標題 - 費用"},
	}

	pairs := QAPairs("標題", "全文", chunks)
	require.Len(t, pairs, 4)

	assert.Equal(t, "簡介是什麼？", pairs[2].Question)
	assert.Equal(t, "簡介內容", pairs[2].Answer)
	assert.Equal(t, "標題 - 簡介", pairs[2].Context)

	assert.Equal(t, "費用是什麼？", pairs[3].Question)
}

func TestQAPairs_HeadingPairsLimitedToFirstFiveChunks(t *testing.T) {
	var chunks []document.Chunk
	for _, h := range []string{"一", "二", "三", "四", "五", "六", "七"} {
		chunks = append(chunks, document.Chunk{Heading: h, Text: h + "的內容"})
	}

	pairs := QAPairs("標題", "全文", chunks)
	// Two title pairs plus the first five heading-bearing chunks.
	require.Len(t, pairs, 7)
	assert.Equal(t, "五是什麼？", pairs[6].Question)
}
