package handler

import (
	"context"

	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/value"
)

// Watcher то, чем бот управляет в наблюдателе ленты.
type Watcher interface {
	IsRunning() bool
	Start(ctx context.Context) error
	Stop()
	Filters() value.Filters
	SetFilters(filters value.Filters)
	Last() entity.Result
	ResetAlerts()
}

type Handler struct {
	watcher Watcher
}

func New(watcher Watcher) *Handler {
	return &Handler{
		watcher: watcher,
	}
}
