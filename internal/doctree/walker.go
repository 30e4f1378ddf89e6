package doctree

import "strings"

// FirstMeaningfulLine walks body in document order and returns the first line
// of the first text run containing non-whitespace content, truncated to
// charLimit runes. The walk is depth-first: tables are entered row by row,
// cell by cell, and cells recurse with the same rule, so text buried in a
// nested table still wins if it comes first in document order. Section breaks
// and unknown elements are skipped.
//
// The second return is false when no run anywhere in the tree has
// non-whitespace content.
func FirstMeaningfulLine(body []Node, charLimit int) (string, bool) {
	for _, node := range body {
		switch n := node.(type) {
		case Paragraph:
			if line, ok := firstLineOfParagraph(n, charLimit); ok {
				return line, true
			}
		case Table:
			for _, row := range n.Rows {
				for _, cell := range row.Cells {
					if line, ok := FirstMeaningfulLine(cell.Content, charLimit); ok {
						return line, true
					}
				}
			}
		case SectionBreak, Unknown:
			// No text content.
		}
	}
	return "", false
}

func firstLineOfParagraph(p Paragraph, charLimit int) (string, bool) {
	for _, run := range p.Runs {
		text := strings.TrimSpace(run.Text)
		if text == "" {
			continue
		}
		line, _, _ := strings.Cut(text, "\n")
		return truncate(line, charLimit), true
	}
	return "", false
}

// truncate bounds s to limit runes. A limit <= 0 means unbounded.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
