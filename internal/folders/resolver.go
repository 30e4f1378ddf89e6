// Package folders resolves category names to Drive folder ids, creating
// folders on first use and caching the mapping for the run.
package folders

import (
	"context"
	"fmt"
	"log/slog"
)

// Store is the slice of the remote store the resolver needs.
type Store interface {
	FindFolder(ctx context.Context, name, parent string) (id string, found bool, err error)
	CreateFolder(ctx context.Context, name, parent string) (string, error)
}

// Resolver maps folder names to ids, memoized for the lifetime of the run.
// Processing is sequential, so the cache is a plain map with no locking.
type Resolver struct {
	store  Store
	parent string // optional parent folder constraint for lookup/create
	cache  map[string]string
	logger *slog.Logger
}

// New creates a resolver. parent may be empty, meaning folders are looked up
// and created at the Drive root.
func New(store Store, parent string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		store:  store,
		parent: parent,
		cache:  make(map[string]string),
		logger: logger,
	}
}

// Resolve returns the folder id for name, reusing an existing folder when
// one is found and creating it otherwise. Repeated calls with the same name
// within a run return the cached id without touching the remote store, so a
// run never creates duplicate folders of the same name.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	if id, ok := r.cache[name]; ok {
		return id, nil
	}

	id, found, err := r.store.FindFolder(ctx, name, r.parent)
	if err != nil {
		return "", fmt.Errorf("failed to resolve folder %q: %w", name, err)
	}
	if found {
		r.logger.Info("found existing folder", "name", name, "id", id)
	} else {
		id, err = r.store.CreateFolder(ctx, name, r.parent)
		if err != nil {
			return "", fmt.Errorf("failed to create folder %q: %w", name, err)
		}
		r.logger.Info("created folder", "name", name, "id", id)
	}

	r.cache[name] = id
	return id, nil
}
