// Package handler implements the HTTP API.
package handler

import (
	"github.com/scout/api/internal/bookmark"
	"github.com/scout/api/internal/cache"
	"github.com/scout/api/internal/linkup"
)

// Handler serves the events search and saved-events endpoints.
type Handler struct {
	searcher linkup.Searcher
	cache    *cache.Cache
	saved    *bookmark.Repository
}

// Dependencies holds all dependencies for the Handler.
type Dependencies struct {
	Searcher linkup.Searcher
	Cache    *cache.Cache
	Saved    *bookmark.Repository
}

// New creates a Handler with all dependencies.
func New(deps Dependencies) *Handler {
	return &Handler{
		searcher: deps.Searcher,
		cache:    deps.Cache,
		saved:    deps.Saved,
	}
}
