package transform

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/agentic-research/skim/internal/astprovider"
)

// transformMarkdown implements the Markdown row of spec.md §4.C4. Structure
// mode keeps only H1-H3 and re-synthesizes each as "#"*level + " " +
// heading_text; Signatures and Types modes both keep H1-H6 verbatim (the
// spec draws no further distinction between the two for Markdown).
func transformMarkdown(path string, source []byte, mode Mode) ([]byte, error) {
	mt, err := astprovider.ParseMarkdown(path, source)
	if err != nil {
		return nil, err
	}

	var maxLevel int
	var synthesize bool
	switch mode {
	case Structure:
		maxLevel, synthesize = 3, true
	case Signatures, Types:
		maxLevel, synthesize = 6, false
	default:
		return nil, fmt.Errorf("unsupported markdown mode %q", mode)
	}

	var buf bytes.Buffer
	first := true
	for _, h := range mt.Headings {
		if h.Level > maxLevel {
			continue
		}
		if !first {
			buf.WriteByte('\n')
		}
		first = false
		if synthesize {
			buf.WriteString(strings.Repeat("#", h.Level))
			buf.WriteByte(' ')
			buf.Write(headingText(source, h))
		} else {
			buf.Write(source[h.Start:h.End])
		}
	}
	return buf.Bytes(), nil
}

// headingText strips ATX "#" markers (leading and any closing sequence)
// and surrounding whitespace from a heading's raw source line, leaving
// just the heading's text content.
func headingText(source []byte, h astprovider.Heading) []byte {
	line := strings.TrimSpace(string(source[h.Start:h.End]))
	line = strings.TrimLeft(line, "#")
	line = strings.TrimSpace(line)
	line = strings.TrimRight(line, "#")
	line = strings.TrimSpace(line)
	return []byte(line)
}
