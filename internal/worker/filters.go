package worker

import (
	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/value"
)

// SetFilters меняет фильтры на лету; применятся на следующем тике.
func (w *FeedWatcher) SetFilters(filters value.Filters) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.filters = filters
}

// Filters возвращает текущие фильтры
func (w *FeedWatcher) Filters() value.Filters {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.filters
}

// ResetAlerts разрешает повторное уведомление по всем сделкам.
func (w *FeedWatcher) ResetAlerts() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.alerted = make(map[string]struct{})
}

// Alerted возвращает копию списка id, по которым уже было уведомление.
func (w *FeedWatcher) Alerted() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.alerted) == 0 {
		return nil
	}

	ids := make([]string, 0, len(w.alerted))
	for id := range w.alerted {
		ids = append(ids, id)
	}

	return ids
}

// markAlerted false, если по сделке уже уведомляли.
func (w *FeedWatcher) markAlerted(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.alerted[id]; ok {
		return false
	}

	w.alerted[id] = struct{}{}

	return true
}

// Last последняя выдача; пустая до первого тика.
func (w *FeedWatcher) Last() entity.Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.last
}
