package entity

// WindowType mirrors the host's window kinds.
type WindowType string

const (
	WindowTypeNormal   WindowType = "normal"
	WindowTypePopup    WindowType = "popup"
	WindowTypePanel    WindowType = "panel"
	WindowTypeApp      WindowType = "app"
	WindowTypeDevTools WindowType = "devtools"
)

// LoadStatus is a tab's loading state at capture time.
type LoadStatus string

const (
	LoadStatusUnloaded LoadStatus = "unloaded"
	LoadStatusLoading  LoadStatus = "loading"
	LoadStatusComplete LoadStatus = "complete"
)

// GroupColor is one of the host's fixed tab group colors.
type GroupColor string

const (
	GroupColorGrey   GroupColor = "grey"
	GroupColorBlue   GroupColor = "blue"
	GroupColorRed    GroupColor = "red"
	GroupColorYellow GroupColor = "yellow"
	GroupColorGreen  GroupColor = "green"
	GroupColorPink   GroupColor = "pink"
	GroupColorPurple GroupColor = "purple"
	GroupColorCyan   GroupColor = "cyan"
	GroupColorOrange GroupColor = "orange"
)

// Live host identifiers. They are issued by the running host, are only valid
// for that host instance and are never persisted in a Session.
type (
	HostWindowID string
	HostTabID    string
	HostGroupID  string
)

// HostWindow is a live window as enumerated from (or created on) the host.
type HostWindow struct {
	ID        HostWindowID
	Focused   bool
	Incognito bool
	Type      WindowType
	Bounds    Bounds
	Tabs      []HostTab
}

// HostTab is a live tab. GroupID is empty when the tab is not grouped.
type HostTab struct {
	ID          HostTabID
	WindowID    HostWindowID
	Index       int
	URL         string
	Title       string
	FaviconURL  string
	Pinned      bool
	Active      bool
	Highlighted bool
	Status      LoadStatus
	GroupID     HostGroupID
}

// HostTabGroup is a live tab group.
type HostTabGroup struct {
	ID        HostGroupID
	WindowID  HostWindowID
	Title     string
	Color     GroupColor
	Collapsed bool
}

// WindowCreateParams describes a window creation request.
// Zero Width/Height leave sizing to the host; left/top are never sent.
type WindowCreateParams struct {
	URL     string
	Type    WindowType
	Width   int
	Height  int
	Focused bool
}

// TabCreateParams describes a tab creation request.
type TabCreateParams struct {
	WindowID HostWindowID
	URL      string
	Index    int
	Pinned   bool
	Active   bool
}

// TabUpdate carries optional tab property changes.
type TabUpdate struct {
	Pinned *bool
	Active *bool
}

// TabGroupUpdate carries the visual properties applied to a regrouped set of tabs.
type TabGroupUpdate struct {
	Title     string
	Color     GroupColor
	Collapsed bool
}
