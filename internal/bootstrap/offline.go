package bootstrap

import (
	"context"
	"fmt"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// errOffline is returned by every OfflineHost call.
var errOffline = fmt.Errorf("%w: no browser connection", entity.ErrHostEnumeration)

// OfflineHost stands in for the browser when a command only touches storage
// (listing, deleting, exporting). Every host call fails.
type OfflineHost struct{}

var _ port.HostResourceClient = OfflineHost{}

func (OfflineHost) ListWindows(context.Context) ([]entity.HostWindow, error) { return nil, errOffline }

func (OfflineHost) ListTabGroups(context.Context) ([]entity.HostTabGroup, error) {
	return nil, errOffline
}

func (OfflineHost) ListTabs(context.Context, entity.HostWindowID) ([]entity.HostTab, error) {
	return nil, errOffline
}

func (OfflineHost) CreateWindow(context.Context, entity.WindowCreateParams) (*entity.HostWindow, error) {
	return nil, errOffline
}

func (OfflineHost) CreateTab(context.Context, entity.TabCreateParams) (*entity.HostTab, error) {
	return nil, errOffline
}

func (OfflineHost) UpdateTab(context.Context, entity.HostTabID, entity.TabUpdate) error {
	return errOffline
}

func (OfflineHost) CloseTabs(context.Context, []entity.HostTabID) error { return errOffline }

func (OfflineHost) GroupTabs(context.Context, entity.HostWindowID, []entity.HostTabID) (entity.HostGroupID, error) {
	return "", errOffline
}

func (OfflineHost) UpdateTabGroup(context.Context, entity.HostGroupID, entity.TabGroupUpdate) error {
	return errOffline
}
