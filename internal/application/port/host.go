package port

import (
	"context"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// HostResourceClient drives the live browser: it enumerates windows, tabs and
// tab groups and creates or modifies them. Every call may fail independently;
// returned ids are only valid for the running host.
type HostResourceClient interface {
	// ListWindows returns all live windows with their tabs ordered by index.
	ListWindows(ctx context.Context) ([]entity.HostWindow, error)

	// ListTabGroups returns all live tab groups.
	ListTabGroups(ctx context.Context) ([]entity.HostTabGroup, error)

	// ListTabs returns the live tabs of one window ordered by index.
	ListTabs(ctx context.Context, windowID entity.HostWindowID) ([]entity.HostTab, error)

	// CreateWindow opens a window seeded with params.URL and returns it with its tabs.
	CreateWindow(ctx context.Context, params entity.WindowCreateParams) (*entity.HostWindow, error)

	// CreateTab opens a tab in an existing window.
	CreateTab(ctx context.Context, params entity.TabCreateParams) (*entity.HostTab, error)

	// UpdateTab changes tab properties.
	UpdateTab(ctx context.Context, tabID entity.HostTabID, update entity.TabUpdate) error

	// CloseTabs closes the given tabs.
	CloseTabs(ctx context.Context, tabIDs []entity.HostTabID) error

	// GroupTabs puts the given tabs of one window into a new group.
	GroupTabs(ctx context.Context, windowID entity.HostWindowID, tabIDs []entity.HostTabID) (entity.HostGroupID, error)

	// UpdateTabGroup sets a group's title, color and collapsed state.
	UpdateTabGroup(ctx context.Context, groupID entity.HostGroupID, update entity.TabGroupUpdate) error
}
