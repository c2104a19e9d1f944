package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	require.Contains(t, reg, SourceArticle)
	require.Contains(t, reg, SourceSubject)
	require.Contains(t, reg, SourceSchool)

	assert.Equal(t, "linkedu", reg[SourceArticle].IDPrefix)
	assert.Equal(t, "linkedu_subject", reg[SourceSubject].IDPrefix)
	assert.Equal(t, "linkedu_school", reg[SourceSchool].IDPrefix)
	assert.Equal(t, "zh-HK", reg[SourceArticle].Language)
}

func TestRegistry_For_FallsBackToArticle(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, reg[SourceArticle], reg.For("unknown"))
	assert.Equal(t, reg[SourceArticle], reg.For(""))
	assert.Equal(t, reg[SourceSchool], reg.For(SourceSchool))
}

func TestCompile_Defaults(t *testing.T) {
	p, err := ProfileSpec{}.Compile("custom")
	require.NoError(t, err)

	assert.Equal(t, "custom", p.SourceType)
	assert.Equal(t, "linkedu", p.IDPrefix)
	assert.Equal(t, 50, p.Chunks.MinSection)
	assert.Equal(t, 30, p.Chunks.MinParagraph)
	assert.Equal(t, 1000, p.Chunks.MaxPack)
	assert.NotEmpty(t, p.Keyword.Patterns)
	assert.NotEmpty(t, p.Topic.Vocabulary)
	assert.NotEmpty(t, p.Countries)
}

func TestCompile_ExtraStopwords(t *testing.T) {
	p, err := ProfileSpec{ExtraStopwords: []string{"school"}}.Compile("school")
	require.NoError(t, err)

	_, ok := p.Keyword.Stopwords["school"]
	assert.True(t, ok)
	// The shared stopword list is still present.
	_, ok = p.Keyword.Stopwords["可以"]
	assert.True(t, ok)
}

func TestCompile_InvalidPattern(t *testing.T) {
	_, err := ProfileSpec{KeywordPatterns: []string{"("}}.Compile("bad")
	assert.Error(t, err)
}

func TestLoadRegistry(t *testing.T) {
	t.Run("EmptyPathYieldsDefaults", func(t *testing.T) {
		reg, err := LoadRegistry("")
		require.NoError(t, err)
		assert.Equal(t, "linkedu", reg[SourceArticle].IDPrefix)
	})

	t.Run("OverridesFromYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profiles.yaml")
		content := `article:
  id_prefix: custom_prefix
  chunks:
    min_section: 10
    min_paragraph: 5
    max_pack: 500
exam:
  id_prefix: exam
  content_type: exam_guide
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		reg, err := LoadRegistry(path)
		require.NoError(t, err)

		assert.Equal(t, "custom_prefix", reg[SourceArticle].IDPrefix)
		assert.Equal(t, 10, reg[SourceArticle].Chunks.MinSection)
		// Untouched built-ins survive the overlay, new types join it.
		assert.Equal(t, "linkedu_school", reg[SourceSchool].IDPrefix)
		assert.Equal(t, "exam", reg["exam"].IDPrefix)
		assert.Equal(t, "exam_guide", reg["exam"].ContentType)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadRegistry("/nonexistent/profiles.yaml")
		assert.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("article: [not a mapping"), 0o600))

		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})
}
