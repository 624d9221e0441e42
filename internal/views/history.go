package views

import (
	"context"

	"github.com/addisfleet/transport-admin/internal/models"
)

// HistoryFilter selects which decisions the history view shows.
type HistoryFilter string

const (
	FilterAll      HistoryFilter = "All"
	FilterApproved HistoryFilter = "approved"
	FilterRejected HistoryFilter = "rejected"
)

const historyPageSize = 10

// HistorySource provides the audit log. Satisfied by *api.Client.
type HistorySource interface {
	StatusHistory(ctx context.Context) ([]models.HistoryRecord, error)
}

// History is the approval audit-log view. Unlike the user list, the full
// collection is fetched once and both filtering and pagination happen
// client-side over it (filter first, then slice).
type History struct {
	src     HistorySource
	records []models.HistoryRecord
	filter  HistoryFilter
	page    int
	loaded  bool
}

// NewHistory creates a history view showing all decisions, page 1.
func NewHistory(src HistorySource) *History {
	return &History{src: src, filter: FilterAll, page: 1}
}

// Reload fetches the full audit log. Prior state is kept on failure.
func (h *History) Reload(ctx context.Context) error {
	records, err := h.src.StatusHistory(ctx)
	if err != nil {
		return err
	}
	h.records = records
	h.loaded = true
	return nil
}

// Invalidate marks the collection stale without touching the rows.
func (h *History) Invalidate() {
	h.loaded = false
}

// Loaded reports whether the collection reflects a completed fetch.
func (h *History) Loaded() bool {
	return h.loaded
}

// SetFilter switches the decision filter and snaps back to page 1.
func (h *History) SetFilter(f HistoryFilter) {
	h.filter = f
	h.page = 1
}

// Filter returns the active decision filter.
func (h *History) Filter() HistoryFilter {
	return h.filter
}

// SetPage moves to a page. Pages below 1 snap to 1.
func (h *History) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	h.page = page
}

// Page returns the current page number.
func (h *History) Page() int {
	return h.page
}

// filtered returns the records matching the active filter.
func (h *History) filtered() []models.HistoryRecord {
	if h.filter == FilterAll {
		return h.records
	}

	want := models.DecisionApprove
	if h.filter == FilterRejected {
		want = models.DecisionReject
	}

	var out []models.HistoryRecord
	for _, r := range h.records {
		if r.Status == want {
			out = append(out, r)
		}
	}
	return out
}

// Records returns the current page of the filtered set: the slice
// [(page-1)*10, page*10) clamped to its length.
func (h *History) Records() []models.HistoryRecord {
	filtered := h.filtered()

	start := (h.page - 1) * historyPageSize
	if start >= len(filtered) {
		return nil
	}

	end := start + historyPageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Pages returns how many pages the filtered set spans. An empty set still
// has one (empty) page.
func (h *History) Pages() int {
	n := len(h.filtered())
	if n == 0 {
		return 1
	}
	return (n + historyPageSize - 1) / historyPageSize
}
