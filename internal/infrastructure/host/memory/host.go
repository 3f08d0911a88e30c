// Package memory provides an in-process HostResourceClient.
// It models a browser's windows, tabs and tab groups in memory and supports
// failure injection, which makes it the reference double for restore tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// NewTabURL is the page a window opens when created without a URL.
const NewTabURL = "chrome://newtab/"

// Op names a host operation for failure injection and call recording.
type Op string

const (
	OpListWindows    Op = "list_windows"
	OpListTabGroups  Op = "list_tab_groups"
	OpListTabs       Op = "list_tabs"
	OpCreateWindow   Op = "create_window"
	OpCreateTab      Op = "create_tab"
	OpUpdateTab      Op = "update_tab"
	OpCloseTabs      Op = "close_tabs"
	OpGroupTabs      Op = "group_tabs"
	OpUpdateTabGroup Op = "update_tab_group"
)

// ErrInjected is the default error returned by an injected failure.
var ErrInjected = errors.New("injected host failure")

// Call is one recorded host invocation. Arg holds the request value
// (params struct, id, or id slice) and is nil for list calls.
type Call struct {
	Op  Op
	Arg any
}

type failureRule struct {
	op        Op
	match     func(arg any) bool
	err       error
	remaining int // < 0 means unlimited
}

type window struct {
	entity.HostWindow
	tabs []*entity.HostTab
}

// Host is an in-memory browser.
type Host struct {
	mu      sync.Mutex
	windows []*window
	groups  []*entity.HostTabGroup
	nextID  int
	rules   []*failureRule
	calls   []Call
}

var _ port.HostResourceClient = (*Host)(nil)

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{}
}

// WindowSpec describes a window to seed with AddWindow.
type WindowSpec struct {
	Focused   bool
	Incognito bool
	Type      entity.WindowType
	Bounds    entity.Bounds
	Tabs      []TabSpec
}

// TabSpec describes a tab to seed.
type TabSpec struct {
	URL    string
	Title  string
	Pinned bool
	Active bool
}

// AddWindow seeds a window and returns its id.
func (h *Host) AddWindow(spec WindowSpec) entity.HostWindowID {
	h.mu.Lock()
	defer h.mu.Unlock()

	w := h.newWindow(spec.Type, spec.Bounds, spec.Focused)
	w.Incognito = spec.Incognito
	for _, ts := range spec.Tabs {
		tab := h.insertTab(w, ts.URL, -1, ts.Pinned, ts.Active)
		if ts.Title != "" {
			tab.Title = ts.Title
		}
	}
	return w.ID
}

// AddGroup seeds a tab group holding the tabs at the given indexes of a window.
func (h *Host) AddGroup(
	windowID entity.HostWindowID,
	title string,
	color entity.GroupColor,
	collapsed bool,
	tabIndexes ...int,
) entity.HostGroupID {
	h.mu.Lock()
	defer h.mu.Unlock()

	g := &entity.HostTabGroup{ID: entity.HostGroupID(h.id("g")), WindowID: windowID, Title: title, Color: color, Collapsed: collapsed}
	h.groups = append(h.groups, g)
	if w := h.window(windowID); w != nil {
		for _, i := range tabIndexes {
			if i >= 0 && i < len(w.tabs) {
				w.tabs[i].GroupID = g.ID
			}
		}
	}
	return g.ID
}

// FailAlways makes every call of op that satisfies match fail with err.
// A nil match applies to every call; a nil err uses ErrInjected.
func (h *Host) FailAlways(op Op, match func(arg any) bool, err error) {
	h.addRule(op, match, err, -1)
}

// FailTimes is FailAlways limited to the first n matching calls.
func (h *Host) FailTimes(op Op, n int, match func(arg any) bool, err error) {
	h.addRule(op, match, err, n)
}

func (h *Host) addRule(op Op, match func(arg any) bool, err error, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	h.rules = append(h.rules, &failureRule{op: op, match: match, err: err, remaining: n})
}

// Calls returns every recorded call in order.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// CallsOf returns the recorded calls of one operation.
func (h *Host) CallsOf(op Op) []Call {
	var out []Call
	for _, c := range h.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the call log.
func (h *Host) ResetCalls() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}

// begin records a call and applies failure rules. Callers hold h.mu.
func (h *Host) begin(ctx context.Context, op Op, arg any) error {
	h.calls = append(h.calls, Call{Op: op, Arg: arg})
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, r := range h.rules {
		if r.op != op || r.remaining == 0 {
			continue
		}
		if r.match != nil && !r.match(arg) {
			continue
		}
		if r.remaining > 0 {
			r.remaining--
		}
		return fmt.Errorf("%s: %w", op, r.err)
	}
	return nil
}

// ListWindows implements port.HostResourceClient.
func (h *Host) ListWindows(ctx context.Context) ([]entity.HostWindow, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpListWindows, nil); err != nil {
		return nil, err
	}

	out := make([]entity.HostWindow, 0, len(h.windows))
	for _, w := range h.windows {
		out = append(out, w.snapshot())
	}
	return out, nil
}

// ListTabGroups implements port.HostResourceClient.
func (h *Host) ListTabGroups(ctx context.Context) ([]entity.HostTabGroup, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpListTabGroups, nil); err != nil {
		return nil, err
	}

	out := make([]entity.HostTabGroup, 0, len(h.groups))
	for _, g := range h.groups {
		out = append(out, *g)
	}
	return out, nil
}

// ListTabs implements port.HostResourceClient.
func (h *Host) ListTabs(ctx context.Context, windowID entity.HostWindowID) ([]entity.HostTab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpListTabs, windowID); err != nil {
		return nil, err
	}

	w := h.window(windowID)
	if w == nil {
		return nil, fmt.Errorf("window %s: %w", windowID, entity.ErrNotFound)
	}
	return w.snapshot().Tabs, nil
}

// CreateWindow implements port.HostResourceClient.
func (h *Host) CreateWindow(ctx context.Context, params entity.WindowCreateParams) (*entity.HostWindow, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpCreateWindow, params); err != nil {
		return nil, err
	}

	w := h.newWindow(params.Type, entity.Bounds{Width: params.Width, Height: params.Height}, params.Focused)
	url := params.URL
	if url == "" {
		url = NewTabURL
	}
	h.insertTab(w, url, 0, false, true)

	out := w.snapshot()
	return &out, nil
}

// CreateTab implements port.HostResourceClient. An index outside the window appends.
func (h *Host) CreateTab(ctx context.Context, params entity.TabCreateParams) (*entity.HostTab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpCreateTab, params); err != nil {
		return nil, err
	}

	w := h.window(params.WindowID)
	if w == nil {
		return nil, fmt.Errorf("window %s: %w", params.WindowID, entity.ErrNotFound)
	}
	tab := h.insertTab(w, params.URL, params.Index, params.Pinned, params.Active)
	out := *tab
	return &out, nil
}

// UpdateTab implements port.HostResourceClient.
func (h *Host) UpdateTab(ctx context.Context, tabID entity.HostTabID, update entity.TabUpdate) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpUpdateTab, tabID); err != nil {
		return err
	}

	w, tab := h.tab(tabID)
	if tab == nil {
		return fmt.Errorf("tab %s: %w", tabID, entity.ErrNotFound)
	}
	if update.Pinned != nil {
		tab.Pinned = *update.Pinned
	}
	if update.Active != nil && *update.Active {
		w.activate(tab)
	}
	return nil
}

// CloseTabs implements port.HostResourceClient. Windows left without tabs close too.
func (h *Host) CloseTabs(ctx context.Context, tabIDs []entity.HostTabID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpCloseTabs, append([]entity.HostTabID(nil), tabIDs...)); err != nil {
		return err
	}

	closing := make(map[entity.HostTabID]bool, len(tabIDs))
	for _, id := range tabIDs {
		closing[id] = true
	}

	kept := h.windows[:0]
	for _, w := range h.windows {
		tabs := w.tabs[:0]
		for _, t := range w.tabs {
			if !closing[t.ID] {
				tabs = append(tabs, t)
			}
		}
		w.tabs = tabs
		w.reindex()
		if len(w.tabs) > 0 {
			kept = append(kept, w)
		}
	}
	h.windows = kept
	h.pruneGroups()
	return nil
}

// GroupTabs implements port.HostResourceClient.
func (h *Host) GroupTabs(ctx context.Context, windowID entity.HostWindowID, tabIDs []entity.HostTabID) (entity.HostGroupID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpGroupTabs, append([]entity.HostTabID(nil), tabIDs...)); err != nil {
		return "", err
	}
	if len(tabIDs) == 0 {
		return "", fmt.Errorf("group needs at least one tab")
	}

	w := h.window(windowID)
	if w == nil {
		return "", fmt.Errorf("window %s: %w", windowID, entity.ErrNotFound)
	}
	members := make([]*entity.HostTab, 0, len(tabIDs))
	for _, id := range tabIDs {
		owner, tab := h.tab(id)
		if tab == nil || owner != w {
			return "", fmt.Errorf("tab %s is not in window %s", id, windowID)
		}
		members = append(members, tab)
	}

	g := &entity.HostTabGroup{ID: entity.HostGroupID(h.id("g")), WindowID: windowID, Color: entity.GroupColorGrey}
	h.groups = append(h.groups, g)
	for _, t := range members {
		t.GroupID = g.ID
	}
	h.pruneGroups()
	return g.ID, nil
}

// UpdateTabGroup implements port.HostResourceClient.
func (h *Host) UpdateTabGroup(ctx context.Context, groupID entity.HostGroupID, update entity.TabGroupUpdate) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.begin(ctx, OpUpdateTabGroup, groupID); err != nil {
		return err
	}

	for _, g := range h.groups {
		if g.ID == groupID {
			g.Title = update.Title
			if update.Color != "" {
				g.Color = update.Color
			}
			g.Collapsed = update.Collapsed
			return nil
		}
	}
	return fmt.Errorf("group %s: %w", groupID, entity.ErrNotFound)
}

func (h *Host) id(prefix string) string {
	h.nextID++
	return prefix + strconv.Itoa(h.nextID)
}

func (h *Host) newWindow(t entity.WindowType, b entity.Bounds, focused bool) *window {
	if t == "" {
		t = entity.WindowTypeNormal
	}
	w := &window{HostWindow: entity.HostWindow{ID: entity.HostWindowID(h.id("w")), Type: t, Bounds: b}}
	if focused || len(h.windows) == 0 {
		for _, other := range h.windows {
			other.Focused = false
		}
		w.Focused = true
	}
	h.windows = append(h.windows, w)
	return w
}

func (h *Host) insertTab(w *window, url string, index int, pinned, active bool) *entity.HostTab {
	tab := &entity.HostTab{
		ID:       entity.HostTabID(h.id("t")),
		WindowID: w.ID,
		URL:      url,
		Title:    url,
		Pinned:   pinned,
		Status:   entity.LoadStatusComplete,
	}
	if index < 0 || index > len(w.tabs) {
		index = len(w.tabs)
	}
	w.tabs = append(w.tabs, nil)
	copy(w.tabs[index+1:], w.tabs[index:])
	w.tabs[index] = tab
	w.reindex()
	if active || len(w.tabs) == 1 {
		w.activate(tab)
	}
	return tab
}

func (h *Host) window(id entity.HostWindowID) *window {
	for _, w := range h.windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (h *Host) tab(id entity.HostTabID) (*window, *entity.HostTab) {
	for _, w := range h.windows {
		for _, t := range w.tabs {
			if t.ID == id {
				return w, t
			}
		}
	}
	return nil, nil
}

// pruneGroups drops groups that no longer contain any tab, as a browser does.
func (h *Host) pruneGroups() {
	used := make(map[entity.HostGroupID]bool)
	for _, w := range h.windows {
		for _, t := range w.tabs {
			if t.GroupID != "" {
				used[t.GroupID] = true
			}
		}
	}
	kept := h.groups[:0]
	for _, g := range h.groups {
		if used[g.ID] {
			kept = append(kept, g)
		}
	}
	h.groups = kept
}

func (w *window) reindex() {
	for i, t := range w.tabs {
		t.Index = i
	}
}

func (w *window) activate(tab *entity.HostTab) {
	for _, t := range w.tabs {
		t.Active = t == tab
	}
}

func (w *window) snapshot() entity.HostWindow {
	out := w.HostWindow
	out.Tabs = make([]entity.HostTab, 0, len(w.tabs))
	for _, t := range w.tabs {
		out.Tabs = append(out.Tabs, *t)
	}
	sort.SliceStable(out.Tabs, func(i, j int) bool { return out.Tabs[i].Index < out.Tabs[j].Index })
	return out
}
