package extract

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testKeywordConfig() KeywordConfig {
	return KeywordConfig{
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`[A-Z]{2,}`),
			regexp.MustCompile(`\d+年`),
			regexp.MustCompile(`第\d+`),
		},
		Stopwords: map[string]struct{}{
			"可以": {},
			"the":  {},
		},
	}
}

func TestKeywords_PatternChannel(t *testing.T) {
	got := Keywords("IELTS成績要求於2024年公佈，排名第5。", testKeywordConfig())

	assert.Contains(t, got, "IELTS")
	assert.Contains(t, got, "2024年")
	assert.Contains(t, got, "第5")
}

func TestKeywords_FrequencyChannel(t *testing.T) {
	// A token enters the frequency channel once seen three times.
	text := "獎學金 獎學金 獎學金 留學 留學"
	got := Keywords(text, testKeywordConfig())

	assert.Contains(t, got, "獎學金")
	assert.NotContains(t, got, "留學")
}

func TestKeywords_StopwordsExcluded(t *testing.T) {
	text := "可以 可以 可以 可以 出國 出國 出國"
	got := Keywords(text, testKeywordConfig())

	assert.NotContains(t, got, "可以")
	assert.Contains(t, got, "出國")
}

func TestKeywords_ShortTokensIgnored(t *testing.T) {
	// Latin runs under three letters and single ideographs never qualify.
	text := "ab ab ab ab 學 學 學 學"
	got := Keywords(text, testKeywordConfig())
	assert.Empty(t, got)
}

func TestKeywords_CapAndOrder(t *testing.T) {
	var sb strings.Builder
	for _, w := range []string{
		"校園", "宿舍", "獎學", "面試", "排名", "課程", "學科", "學位", "碩士", "博士",
		"預科", "語言", "簽證", "住宿", "交流", "實習", "就業", "文憑", "展覽", "講座",
		"導師", "輔導", "考試", "報名", "繳費",
	} {
		sb.WriteString(strings.Repeat(w+" ", 3))
	}

	got := Keywords(sb.String(), testKeywordConfig())
	assert.Len(t, got, 20)
	assert.True(t, sort.StringsAreSorted(got))
}

func TestKeywords_Empty(t *testing.T) {
	assert.Empty(t, Keywords("", testKeywordConfig()))
}
