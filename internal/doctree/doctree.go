// Package doctree models the structured content of a Google Doc as a closed
// set of node variants and provides first-match text extraction over it.
//
// The Docs API returns a heterogeneous tree: a body is a sequence of
// structural elements, each of which is a paragraph, a table, a section
// break, or something we don't care about. Tables recurse — every cell holds
// another sequence of the same union. Modeling this as a sum type keeps the
// walker exhaustive instead of poking at optional JSON fields.
package doctree

// Node is a structural element of a document body.
// Implementations: Paragraph, Table, SectionBreak, Unknown.
type Node interface {
	isNode()
}

// TextRun is a contiguous run of styled text inside a paragraph.
type TextRun struct {
	Text string
}

// Paragraph is an ordered sequence of text runs.
type Paragraph struct {
	Runs []TextRun
}

// Cell holds a nested body — cells can contain paragraphs and further tables.
type Cell struct {
	Content []Node
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []Row
}

// SectionBreak carries no text and is skipped by the walker.
type SectionBreak struct{}

// Unknown stands in for structural elements the walker does not inspect
// (tables of contents, inline drawings, future API additions).
type Unknown struct{}

func (Paragraph) isNode()    {}
func (Table) isNode()        {}
func (SectionBreak) isNode() {}
func (Unknown) isNode()      {}
