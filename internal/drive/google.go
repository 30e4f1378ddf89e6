package drive

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"
	docs "google.golang.org/api/docs/v1"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/jackzampolin/gdtriage/internal/doctree"
)

const (
	documentMimeType = "application/vnd.google-apps.document"
	folderMimeType   = "application/vnd.google-apps.folder"

	// Maximum page size the Drive API allows for file listings.
	listPageSize = 1000
)

// GoogleStore implements Store against the Drive v3 and Docs v1 APIs.
type GoogleStore struct {
	drive  *gdrive.Service
	docs   *docs.Service
	logger *slog.Logger
}

// NewGoogleStore builds Drive and Docs service clients from an OAuth token
// source. No retries are configured: each remote call is a single attempt
// and failures surface to the caller.
func NewGoogleStore(ctx context.Context, ts oauth2.TokenSource, logger *slog.Logger) (*GoogleStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driveSvc, err := gdrive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	docsSvc, err := docs.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}

	return &GoogleStore{
		drive:  driveSvc,
		docs:   docsSvc,
		logger: logger,
	}, nil
}

// ListDocuments returns every Google Doc in the user's Drive, following
// nextPageToken until the listing is exhausted.
func (s *GoogleStore) ListDocuments(ctx context.Context) ([]DocumentRef, error) {
	query := fmt.Sprintf("mimeType='%s'", documentMimeType)

	var refs []DocumentRef
	pageToken := ""
	for {
		call := s.drive.Files.List().
			Q(query).
			Spaces("drive").
			Fields("nextPageToken, files(id, name)").
			PageSize(listPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}

		for _, f := range resp.Files {
			refs = append(refs, DocumentRef{ID: f.Id, Title: f.Name})
		}
		s.logger.Debug("fetched listing page", "count", len(resp.Files))

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	s.logger.Info("listed documents", "total", len(refs))
	return refs, nil
}

// FetchContent retrieves the document body and converts it to doctree nodes.
func (s *GoogleStore) FetchContent(ctx context.Context, id string) ([]doctree.Node, error) {
	doc, err := s.docs.Documents.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", id, err)
	}
	return fromDocsBody(doc.Body), nil
}

// Rename sets the document's name.
func (s *GoogleStore) Rename(ctx context.Context, id, name string) error {
	_, err := s.drive.Files.Update(id, &gdrive.File{Name: name}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to rename document %s: %w", id, err)
	}
	return nil
}

// Trash flags the document as trashed.
func (s *GoogleStore) Trash(ctx context.Context, id string) error {
	_, err := s.drive.Files.Update(id, &gdrive.File{Trashed: true}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to trash document %s: %w", id, err)
	}
	return nil
}

// Move reparents the document into folderID. The previous parents are read
// first, then added and removed in one update call so there is no window
// where the document has both old and new parents, or neither.
func (s *GoogleStore) Move(ctx context.Context, id, folderID string) error {
	f, err := s.drive.Files.Get(id).Fields("parents").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read parents of document %s: %w", id, err)
	}

	_, err = s.drive.Files.Update(id, &gdrive.File{}).
		AddParents(folderID).
		RemoveParents(strings.Join(f.Parents, ",")).
		Fields("id, parents").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to move document %s: %w", id, err)
	}
	return nil
}

// FindFolder looks up a folder by exact name, optionally under parent.
// When several folders share the name, the API's first result wins.
func (s *GoogleStore) FindFolder(ctx context.Context, name, parent string) (string, bool, error) {
	query := fmt.Sprintf("mimeType='%s' and name='%s'", folderMimeType, escapeQueryValue(name))
	if parent != "" {
		query += fmt.Sprintf(" and '%s' in parents", parent)
	}

	resp, err := s.drive.Files.List().
		Q(query).
		Spaces("drive").
		Fields("files(id, name)").
		PageSize(10).
		Context(ctx).
		Do()
	if err != nil {
		return "", false, fmt.Errorf("failed to look up folder %q: %w", name, err)
	}
	if len(resp.Files) == 0 {
		return "", false, nil
	}
	return resp.Files[0].Id, true, nil
}

// CreateFolder creates a folder, optionally under parent, and returns its id.
func (s *GoogleStore) CreateFolder(ctx context.Context, name, parent string) (string, error) {
	meta := &gdrive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if parent != "" {
		meta.Parents = []string{parent}
	}

	f, err := s.drive.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	return f.Id, nil
}

// escapeQueryValue escapes a string literal for a Drive search query.
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}
