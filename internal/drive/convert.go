package drive

import (
	docs "google.golang.org/api/docs/v1"

	"github.com/jackzampolin/gdtriage/internal/doctree"
)

// fromDocsBody converts a Docs API body into doctree nodes. Absent optional
// fields (nil body, nil paragraph elements, empty rows) become empty
// containers so the walker never has to care about API-level nulls.
func fromDocsBody(body *docs.Body) []doctree.Node {
	if body == nil {
		return nil
	}
	return fromStructuralElements(body.Content)
}

func fromStructuralElements(elements []*docs.StructuralElement) []doctree.Node {
	nodes := make([]doctree.Node, 0, len(elements))
	for _, el := range elements {
		if el == nil {
			continue
		}
		switch {
		case el.Paragraph != nil:
			nodes = append(nodes, fromParagraph(el.Paragraph))
		case el.Table != nil:
			nodes = append(nodes, fromTable(el.Table))
		case el.SectionBreak != nil:
			nodes = append(nodes, doctree.SectionBreak{})
		default:
			nodes = append(nodes, doctree.Unknown{})
		}
	}
	return nodes
}

func fromParagraph(p *docs.Paragraph) doctree.Paragraph {
	runs := make([]doctree.TextRun, 0, len(p.Elements))
	for _, el := range p.Elements {
		if el == nil || el.TextRun == nil {
			continue
		}
		runs = append(runs, doctree.TextRun{Text: el.TextRun.Content})
	}
	return doctree.Paragraph{Runs: runs}
}

func fromTable(t *docs.Table) doctree.Table {
	rows := make([]doctree.Row, 0, len(t.TableRows))
	for _, r := range t.TableRows {
		if r == nil {
			continue
		}
		cells := make([]doctree.Cell, 0, len(r.TableCells))
		for _, c := range r.TableCells {
			if c == nil {
				continue
			}
			cells = append(cells, doctree.Cell{Content: fromStructuralElements(c.Content)})
		}
		rows = append(rows, doctree.Row{Cells: cells})
	}
	return doctree.Table{Rows: rows}
}
