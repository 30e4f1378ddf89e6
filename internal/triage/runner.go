package triage

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jackzampolin/gdtriage/internal/drive"
	"github.com/jackzampolin/gdtriage/internal/title"
)

// Classifier maps a title to a category label. Implementations must always
// return a label from their vocabulary (classify.Client does).
type Classifier interface {
	Classify(ctx context.Context, title string) string
	Fallback() string
}

// FolderResolver maps a category name to a folder id.
type FolderResolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// DefaultPause is the fixed delay after each processed document, keeping
// the run under external rate limits.
const DefaultPause = 100 * time.Millisecond

// Config holds the runner's collaborators and tuning knobs.
type Config struct {
	Store       drive.Store
	Classifier  Classifier     // required for Sort only
	Resolver    FolderResolver // required for Sort only
	Logger      *slog.Logger
	Pause       time.Duration // delay after each processed document
	CharLimit   int           // first-line extraction bound
	MaxTitleLen int           // sanitized title bound
}

// Runner drives a triage workflow over every document in the store,
// sequentially, isolating per-document failures.
type Runner struct {
	store       drive.Store
	classifier  Classifier
	resolver    FolderResolver
	logger      *slog.Logger
	pause       atomic.Int64 // nanoseconds; adjustable mid-run via SetPause
	charLimit   int
	maxTitleLen int
}

// New creates a runner.
func New(cfg Config) *Runner {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Pause == 0 {
		cfg.Pause = DefaultPause
	}
	if cfg.CharLimit == 0 {
		cfg.CharLimit = 100
	}
	if cfg.MaxTitleLen == 0 {
		cfg.MaxTitleLen = 100
	}
	r := &Runner{
		store:       cfg.Store,
		classifier:  cfg.Classifier,
		resolver:    cfg.Resolver,
		logger:      cfg.Logger,
		charLimit:   cfg.CharLimit,
		maxTitleLen: cfg.MaxTitleLen,
	}
	r.pause.Store(int64(cfg.Pause))
	return r
}

// SetPause updates the inter-document pause. Safe to call while a run is in
// progress (config hot-reload fires from the watcher goroutine); the new
// value takes effect from the next processed document.
func (r *Runner) SetPause(d time.Duration) {
	r.pause.Store(int64(d))
}

// sleep pauses between documents, staying under external rate limits.
func (r *Runner) sleep() {
	time.Sleep(time.Duration(r.pause.Load()))
}

// RenameUntitled runs the rename-or-trash workflow: every placeholder-titled
// document either gets a title derived from its content or is trashed.
// Documents with meaningful titles are left untouched.
func (r *Runner) RenameUntitled(ctx context.Context) (*Report, error) {
	docs, err := r.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if len(docs) == 0 {
		r.logger.Info("no documents found")
		return &Report{}, nil
	}

	report := &Report{}
	for _, ref := range docs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if action := r.renameOne(ctx, ref, report); action.Kind != ActionSkip {
			// Pause only after documents that were actually processed.
			r.sleep()
		}
	}
	return report, nil
}

func (r *Runner) renameOne(ctx context.Context, ref drive.DocumentRef, report *Report) Action {
	var action Action
	if !title.IsPlaceholder(ref.Title) {
		// Avoid the content fetch entirely for well-titled documents.
		action = decideTitle(ref, nil, nil, r.charLimit, r.maxTitleLen)
	} else {
		r.logger.Info("processing document", "id", ref.ID, "title", ref.Title)
		body, fetchErr := r.store.FetchContent(ctx, ref.ID)
		if fetchErr != nil {
			r.logger.Error("content fetch failed", "id", ref.ID, "error", fetchErr)
		}
		action = decideTitle(ref, body, fetchErr, r.charLimit, r.maxTitleLen)
	}

	if action.Truncated {
		r.logger.Warn("candidate title truncated", "id", ref.ID, "max_length", r.maxTitleLen)
	}
	r.apply(ctx, ref, action, report)
	return action
}

// Sort runs the categorize-and-move workflow: every document is classified
// by its current title and moved to its category's folder. Classification is
// unconditional — even documents with placeholder titles are sorted.
func (r *Runner) Sort(ctx context.Context) (*Report, error) {
	docs, err := r.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if len(docs) == 0 {
		r.logger.Info("no documents found")
		return &Report{}, nil
	}

	report := &Report{}
	for _, ref := range docs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		r.logger.Info("processing document", "id", ref.ID, "title", ref.Title)
		r.sortOne(ctx, ref, report)
		r.sleep()
	}
	return report, nil
}

func (r *Runner) sortOne(ctx context.Context, ref drive.DocumentRef, report *Report) {
	category := r.classifier.Classify(ctx, ref.Title)

	folderID, err := r.resolver.Resolve(ctx, category)
	if err != nil && category != r.classifier.Fallback() {
		r.logger.Error("folder resolution failed, trying fallback",
			"id", ref.ID, "category", category, "error", err)
		category = r.classifier.Fallback()
		folderID, err = r.resolver.Resolve(ctx, category)
	}

	r.apply(ctx, ref, decideMove(category, folderID, err), report)
}

// apply executes a single terminal action against the store and records the
// outcome. Store failures are logged and counted, never propagated — one
// document's failure must not abort the run.
func (r *Runner) apply(ctx context.Context, ref drive.DocumentRef, action Action, report *Report) {
	result := Result{
		ID:       ref.ID,
		Title:    ref.Title,
		Action:   action.Kind,
		NewTitle: action.Title,
		Category: action.Category,
		FolderID: action.FolderID,
		Reason:   action.Reason,
	}

	var err error
	switch action.Kind {
	case ActionSkip:
		if action.Category != "" {
			// Sort-workflow skips are resolution failures, not routine.
			r.logger.Error("skipping document", "id", ref.ID, "reason", action.Reason)
		} else {
			r.logger.Debug("skipping document", "id", ref.ID, "reason", action.Reason)
		}
	case ActionRename:
		if err = r.store.Rename(ctx, ref.ID, action.Title); err == nil {
			r.logger.Info("renamed document", "id", ref.ID, "new_title", action.Title)
		}
	case ActionTrash:
		if err = r.store.Trash(ctx, ref.ID); err == nil {
			r.logger.Info("trashed document", "id", ref.ID, "reason", action.Reason)
		}
	case ActionMove:
		if err = r.store.Move(ctx, ref.ID, action.FolderID); err == nil {
			r.logger.Info("moved document",
				"id", ref.ID, "category", action.Category, "folder_id", action.FolderID)
		}
	}
	if err != nil {
		r.logger.Error("mutation failed", "id", ref.ID, "action", action.Kind, "error", err)
		result.Error = err.Error()
	}

	report.add(result, err)
}
