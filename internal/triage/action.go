// Package triage contains the per-document decision state machines and the
// run driver that executes them against the remote store.
//
// Decisions are separated from effects: each workflow computes an Action for
// a document, and the driver applies it with a single store mutation. A
// document gets exactly one terminal action per run.
package triage

import (
	"github.com/jackzampolin/gdtriage/internal/doctree"
	"github.com/jackzampolin/gdtriage/internal/drive"
	"github.com/jackzampolin/gdtriage/internal/title"
)

// ActionKind enumerates the terminal actions a workflow can take.
type ActionKind string

const (
	ActionSkip   ActionKind = "skip"
	ActionRename ActionKind = "rename"
	ActionTrash  ActionKind = "trash"
	ActionMove   ActionKind = "move"
)

// Action is the terminal decision for one document. Exactly one of Title or
// FolderID is meaningful, depending on Kind.
type Action struct {
	Kind      ActionKind
	Title     string // new document name, for ActionRename
	FolderID  string // destination folder, for ActionMove
	Category  string // classified category, for ActionMove
	Truncated bool   // candidate title exceeded the length bound
	Reason    string
}

// decideTitle is the rename-or-trash state machine. Only placeholder-titled
// documents are touched. A fetch failure, an empty content tree, or a
// candidate that sanitizes to nothing all terminate in trash; a usable
// sanitized candidate terminates in rename.
func decideTitle(ref drive.DocumentRef, body []doctree.Node, fetchErr error, charLimit, maxTitleLen int) Action {
	if !title.IsPlaceholder(ref.Title) {
		return Action{Kind: ActionSkip, Reason: "title is not a placeholder"}
	}
	if fetchErr != nil {
		return Action{Kind: ActionTrash, Reason: "content fetch failed: " + fetchErr.Error()}
	}

	candidate, ok := doctree.FirstMeaningfulLine(body, charLimit)
	if !ok {
		return Action{Kind: ActionTrash, Reason: "no text content found"}
	}

	clean, truncated, err := title.Sanitize(candidate, maxTitleLen)
	if err != nil {
		return Action{Kind: ActionTrash, Truncated: truncated, Reason: "candidate title sanitized to nothing"}
	}
	return Action{Kind: ActionRename, Title: clean, Truncated: truncated, Reason: "derived title from content"}
}

// decideMove is the categorize-and-move state machine, applied after the
// category folder has been resolved. A resolution failure (of both the
// primary and the fallback folder) terminates in skip so the document is
// never moved to a folder that could not be confirmed.
func decideMove(category, folderID string, resolveErr error) Action {
	if resolveErr != nil {
		return Action{Kind: ActionSkip, Category: category, Reason: "folder resolution failed: " + resolveErr.Error()}
	}
	return Action{Kind: ActionMove, Category: category, FolderID: folderID, Reason: "classified by title"}
}
