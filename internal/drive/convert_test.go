package drive

import (
	"testing"

	docs "google.golang.org/api/docs/v1"

	"github.com/jackzampolin/gdtriage/internal/doctree"
)

func TestFromDocsBody(t *testing.T) {
	t.Run("nil body", func(t *testing.T) {
		if nodes := fromDocsBody(nil); len(nodes) != 0 {
			t.Fatalf("expected no nodes, got %d", len(nodes))
		}
	})

	t.Run("paragraph with runs", func(t *testing.T) {
		body := &docs.Body{Content: []*docs.StructuralElement{
			{Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{
				{TextRun: &docs.TextRun{Content: "Hello\n"}},
				{}, // element without a text run (e.g. inline object)
				{TextRun: &docs.TextRun{Content: "world"}},
			}}},
		}}

		nodes := fromDocsBody(body)
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		p, ok := nodes[0].(doctree.Paragraph)
		if !ok {
			t.Fatalf("expected Paragraph, got %T", nodes[0])
		}
		if len(p.Runs) != 2 || p.Runs[0].Text != "Hello\n" || p.Runs[1].Text != "world" {
			t.Fatalf("unexpected runs: %+v", p.Runs)
		}
	})

	t.Run("table with nested content", func(t *testing.T) {
		body := &docs.Body{Content: []*docs.StructuralElement{
			{Table: &docs.Table{TableRows: []*docs.TableRow{
				{TableCells: []*docs.TableCell{
					{Content: []*docs.StructuralElement{
						{Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{
							{TextRun: &docs.TextRun{Content: "Q3 Report"}},
						}}},
					}},
				}},
			}}},
		}}

		nodes := fromDocsBody(body)
		line, ok := doctree.FirstMeaningfulLine(nodes, 100)
		if !ok || line != "Q3 Report" {
			t.Fatalf("FirstMeaningfulLine = %q, %v", line, ok)
		}
	})

	t.Run("section break and unrecognized elements", func(t *testing.T) {
		body := &docs.Body{Content: []*docs.StructuralElement{
			{SectionBreak: &docs.SectionBreak{}},
			{}, // neither paragraph, table, nor section break
		}}

		nodes := fromDocsBody(body)
		if len(nodes) != 2 {
			t.Fatalf("expected 2 nodes, got %d", len(nodes))
		}
		if _, ok := nodes[0].(doctree.SectionBreak); !ok {
			t.Fatalf("expected SectionBreak, got %T", nodes[0])
		}
		if _, ok := nodes[1].(doctree.Unknown); !ok {
			t.Fatalf("expected Unknown, got %T", nodes[1])
		}
	})

	t.Run("absent rows and cells become empty containers", func(t *testing.T) {
		body := &docs.Body{Content: []*docs.StructuralElement{
			{Table: &docs.Table{}},
			{Table: &docs.Table{TableRows: []*docs.TableRow{nil, {}}}},
		}}

		nodes := fromDocsBody(body)
		if _, ok := doctree.FirstMeaningfulLine(nodes, 100); ok {
			t.Fatal("expected no text in empty tables")
		}
	})
}

func TestEscapeQueryValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Poetry", "Poetry"},
		{"Bob's Files", `Bob\'s Files`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeQueryValue(tt.in); got != tt.want {
			t.Errorf("escapeQueryValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
