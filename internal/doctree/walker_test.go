package doctree

import "testing"

func TestFirstMeaningfulLine(t *testing.T) {
	tests := []struct {
		name  string
		body  []Node
		limit int
		want  string
		found bool
	}{
		{
			name:  "empty body",
			body:  nil,
			limit: 100,
		},
		{
			name: "whitespace only runs",
			body: []Node{
				Paragraph{Runs: []TextRun{{Text: "   "}, {Text: "\n\t"}}},
				Paragraph{Runs: []TextRun{{Text: ""}}},
			},
			limit: 100,
		},
		{
			name: "first non-empty run wins",
			body: []Node{
				Paragraph{Runs: []TextRun{{Text: "  "}, {Text: "Meeting Notes 2024\nmore text"}}},
				Paragraph{Runs: []TextRun{{Text: "later"}}},
			},
			limit: 100,
			want:  "Meeting Notes 2024",
			found: true,
		},
		{
			name: "section break skipped",
			body: []Node{
				SectionBreak{},
				Unknown{},
				Paragraph{Runs: []TextRun{{Text: "After the break"}}},
			},
			limit: 100,
			want:  "After the break",
			found: true,
		},
		{
			name: "text inside table cell",
			body: []Node{
				Paragraph{Runs: []TextRun{{Text: "\n"}}},
				Table{Rows: []Row{
					{Cells: []Cell{
						{Content: []Node{Paragraph{Runs: []TextRun{{Text: "  "}}}}},
						{Content: []Node{Paragraph{Runs: []TextRun{{Text: "Q3 Report"}}}}},
					}},
				}},
			},
			limit: 100,
			want:  "Q3 Report",
			found: true,
		},
		{
			name: "nested table recursion",
			body: []Node{
				Table{Rows: []Row{
					{Cells: []Cell{
						{Content: []Node{
							Table{Rows: []Row{
								{Cells: []Cell{
									{Content: []Node{Paragraph{Runs: []TextRun{{Text: "deep value"}}}}},
								}},
							}},
						}},
					}},
				}},
			},
			limit: 100,
			want:  "deep value",
			found: true,
		},
		{
			name: "table text beats later paragraph",
			body: []Node{
				Table{Rows: []Row{
					{Cells: []Cell{{Content: []Node{Paragraph{Runs: []TextRun{{Text: "in table"}}}}}}},
				}},
				Paragraph{Runs: []TextRun{{Text: "in paragraph"}}},
			},
			limit: 100,
			want:  "in table",
			found: true,
		},
		{
			name: "empty table tolerated",
			body: []Node{
				Table{},
				Table{Rows: []Row{{}}},
				Table{Rows: []Row{{Cells: []Cell{{}}}}},
			},
			limit: 100,
		},
		{
			name: "truncated to limit",
			body: []Node{
				Paragraph{Runs: []TextRun{{Text: "abcdefghij"}}},
			},
			limit: 4,
			want:  "abcd",
			found: true,
		},
		{
			name: "truncation counts runes not bytes",
			body: []Node{
				Paragraph{Runs: []TextRun{{Text: "héllo wörld"}}},
			},
			limit: 5,
			want:  "héllo",
			found: true,
		},
		{
			name: "only first line returned",
			body: []Node{
				Paragraph{Runs: []TextRun{{Text: "first line\nsecond line\nthird"}}},
			},
			limit: 100,
			want:  "first line",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FirstMeaningfulLine(tt.body, tt.limit)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstMeaningfulLine_LeadingWhitespaceTrimmed(t *testing.T) {
	body := []Node{
		Paragraph{Runs: []TextRun{{Text: "\n\n  Title here  \n"}}},
	}
	got, found := FirstMeaningfulLine(body, 100)
	if !found {
		t.Fatal("expected a match")
	}
	if got != "Title here" {
		t.Errorf("line = %q, want %q", got, "Title here")
	}
}
