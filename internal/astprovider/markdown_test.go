package astprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdownHeadingLevels(t *testing.T) {
	src := []byte("# Title\n\n## Section\n\n### Sub\n\n#### Deep\n\n##### Deeper\n")
	mt, err := ParseMarkdown("doc.md", src)
	require.NoError(t, err)
	require.Len(t, mt.Headings, 5)

	levels := make([]int, len(mt.Headings))
	for i, h := range mt.Headings {
		levels[i] = h.Level
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, levels)
}

func TestParseMarkdownHeadingSpanIsVerbatim(t *testing.T) {
	src := []byte("# Title\n\nbody text\n")
	mt, err := ParseMarkdown("doc.md", src)
	require.NoError(t, err)
	require.Len(t, mt.Headings, 1)

	h := mt.Headings[0]
	assert.Equal(t, "# Title", string(src[h.Start:h.End]))
}

func TestParseMarkdownSetextHeading(t *testing.T) {
	src := []byte("Title\n=====\n\nSubtitle\n--------\n")
	mt, err := ParseMarkdown("doc.md", src)
	require.NoError(t, err)
	require.Len(t, mt.Headings, 2)
	assert.Equal(t, 1, mt.Headings[0].Level)
	assert.Equal(t, 2, mt.Headings[1].Level)
}
