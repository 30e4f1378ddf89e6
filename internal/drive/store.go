// Package drive provides the remote-store contract the triage workflows run
// against, plus its Google Drive implementation.
package drive

import (
	"context"

	"github.com/jackzampolin/gdtriage/internal/doctree"
)

// DocumentRef identifies a document in the remote store. The title comes
// from the listing call and may be stale by the time content is fetched;
// there is no transactional guarantee with the store.
type DocumentRef struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Store is the remote-store surface the triage workflows need. The Google
// Drive client implements it; tests substitute fakes.
//
// Every mutation is a single call, idempotent by document id: repeating it
// with the same arguments has no additional effect.
type Store interface {
	// ListDocuments returns every document in the store, following
	// pagination until exhausted. An empty store yields an empty slice.
	ListDocuments(ctx context.Context) ([]DocumentRef, error)

	// FetchContent returns the document's structured body.
	FetchContent(ctx context.Context, id string) ([]doctree.Node, error)

	// Rename sets the document's name.
	Rename(ctx context.Context, id, name string) error

	// Trash moves the document to the store's trash.
	Trash(ctx context.Context, id string) error

	// Move reparents the document into folderID, removing all previous
	// parents in the same call so the document is never in both or neither.
	Move(ctx context.Context, id, folderID string) error

	// FindFolder looks up a folder by exact name, optionally constrained to
	// a parent. When several folders share the name the store's first result
	// wins; the listing order is not defined by the API.
	FindFolder(ctx context.Context, name, parent string) (id string, found bool, err error)

	// CreateFolder creates a folder and returns its id.
	CreateFolder(ctx context.Context, name, parent string) (string, error)
}
