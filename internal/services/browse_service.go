// internal/services/browse_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopstream/storefront/internal/catalog"
	"github.com/shopstream/storefront/internal/config"
	"github.com/shopstream/storefront/internal/models"
	"github.com/shopstream/storefront/internal/session"
)

var ErrInvalidFilter = errors.New("invalid filter parameter")

// BrowseService owns the per-session browse window: the FilterState
// plus the visible-count cursor of the incremental reveal. Any filter
// change resets the cursor to the base page size.
type BrowseService struct {
	catalog *catalog.Store
	cfg     config.BrowseConfig
}

// Window is the slice of filtered results currently exposed to the
// rendering layer.
type Window struct {
	Products []models.Product    `json:"products"`
	Filter   catalog.FilterState `json:"filter"`
	Visible  int                 `json:"visible"`
	Total    int                 `json:"total"`
	HasMore  bool                `json:"has_more"`
}

func NewBrowseService(store *catalog.Store, cfg config.BrowseConfig) *BrowseService {
	return &BrowseService{catalog: store, cfg: cfg}
}

// SetFilters replaces the session's FilterState and resets the visible
// count to the base page size (10 with the filter panel open, 15
// without). The reset happens on every call, matched or not, so the
// window can never carry a stale cursor across filter changes.
func (s *BrowseService) SetFilters(sess *session.Session, f catalog.FilterState, panelOpen bool) (Window, error) {
	if !f.Sort.Valid() || !f.PriceBucket.Valid() {
		return Window{}, ErrInvalidFilter
	}

	base := s.cfg.PageSize
	if panelOpen {
		base = s.cfg.PanelPageSize
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Filter = f
	sess.Visible = base
	return s.window(sess), nil
}

// Results recomputes the filtered list and clamps the window to it.
func (s *BrowseService) Results(sess *session.Session) Window {
	sess.Lock()
	defer sess.Unlock()
	return s.window(sess)
}

// LoadMore advances the visible-count cursor by the configured
// increment after a synthetic delay standing in for network latency.
// A busy flag rejects overlapping loads: while one load is pending,
// further calls return the current window unchanged. The returned bool
// reports whether the cursor advanced.
func (s *BrowseService) LoadMore(ctx context.Context, sess *session.Session) (Window, bool, error) {
	sess.Lock()
	if sess.Loading {
		w := s.window(sess)
		sess.Unlock()
		return w, false, nil
	}
	if w := s.window(sess); !w.HasMore {
		sess.Unlock()
		return w, false, nil
	}
	sess.Loading = true
	sess.Unlock()

	select {
	case <-ctx.Done():
		sess.Lock()
		sess.Loading = false
		w := s.window(sess)
		sess.Unlock()
		return w, false, ctx.Err()
	case <-time.After(time.Duration(s.cfg.LoadDelayMs) * time.Millisecond):
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Loading = false

	total := len(catalog.Search(s.catalog.Products(), sess.Filter))
	sess.Visible += s.cfg.Increment
	if sess.Visible > total {
		sess.Visible = total
	}

	return s.window(sess), true, nil
}

// window must be called with the session lock held.
func (s *BrowseService) window(sess *session.Session) Window {
	filtered := catalog.Search(s.catalog.Products(), sess.Filter)

	visible := sess.Visible
	if visible > len(filtered) {
		visible = len(filtered)
	}
	if visible < 0 {
		visible = 0
	}

	return Window{
		Products: filtered[:visible],
		Filter:   sess.Filter,
		Visible:  visible,
		Total:    len(filtered),
		HasMore:  visible < len(filtered),
	}
}
