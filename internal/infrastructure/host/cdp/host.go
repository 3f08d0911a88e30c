// Package cdp drives a Chromium browser over the DevTools protocol.
//
// The protocol has no notion of tab groups, pinned tabs or tab indices:
// groups are reported as unsupported, tabs are indexed in target order and
// new tabs are appended to the window that was activated last.
package cdp

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/target"
	"golang.org/x/time/rate"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

const targetTypePage = "page"

// Config configures the DevTools connection.
type Config struct {
	// URL is the DevTools endpoint, e.g. http://127.0.0.1:9222.
	URL string
	// RateLimit caps protocol calls per second. Zero disables throttling.
	RateLimit float64
	Burst     int
}

// Host implements port.HostResourceClient over the DevTools protocol.
type Host struct {
	proto   protocol
	limiter *rate.Limiter
	cancel  context.CancelFunc
}

var _ port.HostResourceClient = (*Host)(nil)

// Connect attaches to a running browser.
func Connect(ctx context.Context, cfg Config) (*Host, error) {
	p, cancel, err := dial(cfg.URL)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Str("url", cfg.URL).Msg("connected to browser")

	h := newHost(p, cfg.RateLimit, cfg.Burst)
	h.cancel = cancel
	return h, nil
}

func newHost(p protocol, limit float64, burst int) *Host {
	l := rate.Inf
	if limit > 0 {
		l = rate.Limit(limit)
	}
	if burst < 1 {
		burst = 1
	}
	return &Host{proto: p, limiter: rate.NewLimiter(l, burst)}
}

// Close drops the browser connection. The browser itself keeps running.
func (h *Host) Close() error {
	if h.cancel != nil {
		h.cancel()
	}
	return nil
}

func (h *Host) wait(ctx context.Context) error {
	if err := h.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	return nil
}

// ListWindows implements port.HostResourceClient.
func (h *Host) ListWindows(ctx context.Context) ([]entity.HostWindow, error) {
	return h.windows(ctx, "")
}

// ListTabGroups implements port.HostResourceClient. The protocol exposes no
// groups, so the list is always empty.
func (h *Host) ListTabGroups(context.Context) ([]entity.HostTabGroup, error) {
	return nil, nil
}

// ListTabs implements port.HostResourceClient.
func (h *Host) ListTabs(ctx context.Context, windowID entity.HostWindowID) ([]entity.HostTab, error) {
	windows, err := h.windows(ctx, windowID)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("window %s: %w", windowID, entity.ErrNotFound)
	}
	return windows[0].Tabs, nil
}

// windows enumerates page targets grouped by browser window, in target order.
// A non-empty only restricts the result to that window.
func (h *Host) windows(ctx context.Context, only entity.HostWindowID) ([]entity.HostWindow, error) {
	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	infos, err := h.proto.Targets(ctx)
	if err != nil {
		return nil, fmt.Errorf("get targets: %w", err)
	}

	var (
		order []entity.HostWindowID
		byID  = make(map[entity.HostWindowID]*entity.HostWindow)
	)
	for _, info := range infos {
		if info.Type != targetTypePage {
			continue
		}
		if err := h.wait(ctx); err != nil {
			return nil, err
		}
		wid, bounds, err := h.proto.WindowForTarget(ctx, info.TargetID)
		if err != nil {
			// The target may have closed since enumeration.
			logging.FromContext(ctx).Debug().Err(err).Str("target", string(info.TargetID)).Msg("skipping target without window")
			continue
		}
		id := windowID(wid)
		if only != "" && id != only {
			continue
		}

		w, ok := byID[id]
		if !ok {
			w = &entity.HostWindow{ID: id, Type: entity.WindowTypeNormal, Bounds: toBounds(bounds)}
			byID[id] = w
			order = append(order, id)
		}
		w.Tabs = append(w.Tabs, entity.HostTab{
			ID:       entity.HostTabID(info.TargetID),
			WindowID: id,
			Index:    len(w.Tabs),
			URL:      info.URL,
			Title:    info.Title,
			Status:   entity.LoadStatusComplete,
		})
	}

	out := make([]entity.HostWindow, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

// CreateWindow implements port.HostResourceClient. Only normal windows can be
// opened over the protocol.
func (h *Host) CreateWindow(ctx context.Context, params entity.WindowCreateParams) (*entity.HostWindow, error) {
	if params.Type != "" && params.Type != entity.WindowTypeNormal {
		return nil, fmt.Errorf("window type %s: %w", params.Type, entity.ErrUnsupported)
	}
	url := params.URL
	if url == "" {
		url = "about:blank"
	}

	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	tid, err := h.proto.CreateTarget(ctx, url, true, !params.Focused)
	if err != nil {
		return nil, fmt.Errorf("create target: %w", err)
	}

	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	wid, bounds, err := h.proto.WindowForTarget(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("window for target %s: %w", tid, err)
	}

	if params.Width > 0 && params.Height > 0 {
		if err := h.wait(ctx); err != nil {
			return nil, err
		}
		size := &browser.Bounds{Width: int64(params.Width), Height: int64(params.Height), WindowState: browser.WindowStateNormal}
		if err := h.proto.SetWindowBounds(ctx, wid, size); err != nil {
			return nil, fmt.Errorf("set window bounds: %w", err)
		}
		if bounds == nil {
			bounds = &browser.Bounds{}
		}
		bounds.Width, bounds.Height = size.Width, size.Height
	}

	id := windowID(wid)
	return &entity.HostWindow{
		ID:      id,
		Focused: params.Focused,
		Type:    entity.WindowTypeNormal,
		Bounds:  toBounds(bounds),
		Tabs: []entity.HostTab{{
			ID:       entity.HostTabID(tid),
			WindowID: id,
			URL:      url,
			Active:   true,
			Status:   entity.LoadStatusLoading,
		}},
	}, nil
}

// CreateTab implements port.HostResourceClient. The tab is appended to the
// window; Index is ignored and Pinned cannot be honoured.
func (h *Host) CreateTab(ctx context.Context, params entity.TabCreateParams) (*entity.HostTab, error) {
	tabs, err := h.ListTabs(ctx, params.WindowID)
	if err != nil {
		return nil, err
	}

	// New targets open in the last active window.
	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	if err := h.proto.ActivateTarget(ctx, target.ID(tabs[len(tabs)-1].ID)); err != nil {
		return nil, fmt.Errorf("activate window %s: %w", params.WindowID, err)
	}

	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	tid, err := h.proto.CreateTarget(ctx, params.URL, false, !params.Active)
	if err != nil {
		return nil, fmt.Errorf("create target: %w", err)
	}
	if params.Pinned {
		logging.FromContext(ctx).Debug().Str("target", string(tid)).Msg("pinning is not available over devtools")
	}

	return &entity.HostTab{
		ID:       entity.HostTabID(tid),
		WindowID: params.WindowID,
		Index:    len(tabs),
		URL:      params.URL,
		Active:   params.Active,
		Status:   entity.LoadStatusLoading,
	}, nil
}

// UpdateTab implements port.HostResourceClient.
func (h *Host) UpdateTab(ctx context.Context, tabID entity.HostTabID, update entity.TabUpdate) error {
	if update.Pinned != nil && *update.Pinned {
		return fmt.Errorf("pin tab %s: %w", tabID, entity.ErrUnsupported)
	}
	if update.Active != nil && *update.Active {
		if err := h.wait(ctx); err != nil {
			return err
		}
		if err := h.proto.ActivateTarget(ctx, target.ID(tabID)); err != nil {
			return fmt.Errorf("activate tab %s: %w", tabID, err)
		}
	}
	return nil
}

// CloseTabs implements port.HostResourceClient. Every tab is attempted and
// the failures are joined.
func (h *Host) CloseTabs(ctx context.Context, tabIDs []entity.HostTabID) error {
	var errs []error
	for _, id := range tabIDs {
		if err := h.wait(ctx); err != nil {
			return err
		}
		if err := h.proto.CloseTarget(ctx, target.ID(id)); err != nil {
			errs = append(errs, fmt.Errorf("close tab %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// GroupTabs implements port.HostResourceClient.
func (h *Host) GroupTabs(context.Context, entity.HostWindowID, []entity.HostTabID) (entity.HostGroupID, error) {
	return "", fmt.Errorf("group tabs: %w", entity.ErrUnsupported)
}

// UpdateTabGroup implements port.HostResourceClient.
func (h *Host) UpdateTabGroup(context.Context, entity.HostGroupID, entity.TabGroupUpdate) error {
	return fmt.Errorf("update tab group: %w", entity.ErrUnsupported)
}

func windowID(id browser.WindowID) entity.HostWindowID {
	return entity.HostWindowID(strconv.FormatInt(int64(id), 10))
}

func toBounds(b *browser.Bounds) entity.Bounds {
	if b == nil {
		return entity.Bounds{}
	}
	return entity.Bounds{Left: int(b.Left), Top: int(b.Top), Width: int(b.Width), Height: int(b.Height)}
}
