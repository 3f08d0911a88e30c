package usecase

import (
	"context"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// relinkGroups recreates the tab groups owned by w on the live window.
//
// Live tabs have fresh ids, so each grouped snapshot tab is matched to the live
// tab with the same URL at the same position. Positions are not corrected after
// a failed tab creation, so a failure earlier in the window can make later
// members of a group unresolvable; those members are simply left ungrouped.
func (uc *RestoreSessionUseCase) relinkGroups(
	ctx context.Context,
	session *entity.Session,
	w *entity.WindowSnapshot,
	target *liveTarget,
	result *entity.RestoreResult,
) {
	groups := session.GroupsOwnedBy(w.LocalID)
	if len(groups) == 0 {
		return
	}
	log := logging.FromContext(ctx)

	var live []entity.HostTab
	err := uc.call(ctx, func(ctx context.Context) error {
		var err error
		live, err = uc.host.ListTabs(ctx, target.windowID)
		return err
	})
	if err != nil {
		result.Warn(entity.StageGroupTabs, w.LocalID, err)
		return
	}

	byPosition := make(map[liveTabKey]entity.HostTabID, len(live))
	for _, t := range live {
		key := liveTabKey{url: t.URL, index: t.Index}
		if _, taken := byPosition[key]; !taken {
			byPosition[key] = t.ID
		}
	}

	for _, g := range groups {
		ids := resolveGroupMembers(w.Tabs, g.LocalID, target.offset, byPosition)
		if len(ids) == 0 {
			log.Debug().Int("group", int(g.LocalID)).Msg("no live tabs matched group, skipping")
			continue
		}

		var groupID entity.HostGroupID
		err := uc.call(ctx, func(ctx context.Context) error {
			var err error
			groupID, err = uc.host.GroupTabs(ctx, target.windowID, ids)
			return err
		})
		if err != nil {
			result.Warn(entity.StageGroupTabs, w.LocalID, err)
			continue
		}
		result.RestoredGroups++

		update := entity.TabGroupUpdate{Title: g.Title, Color: g.Color, Collapsed: g.Collapsed}
		err = uc.call(ctx, func(ctx context.Context) error {
			return uc.host.UpdateTabGroup(ctx, groupID, update)
		})
		if err != nil {
			result.Warn(entity.StageUpdateGroup, w.LocalID, err)
		}
	}
}

type liveTabKey struct {
	url   string
	index int
}

// resolveGroupMembers maps the snapshot tabs of one group to live tab ids, in position order.
func resolveGroupMembers(
	tabs []entity.TabSnapshot,
	group entity.LocalID,
	offset int,
	byPosition map[liveTabKey]entity.HostTabID,
) []entity.HostTabID {
	var ids []entity.HostTabID
	for _, tab := range orderedTabs(tabs) {
		if tab.GroupRef == nil || *tab.GroupRef != group {
			continue
		}
		if id, ok := byPosition[liveTabKey{url: tab.URL, index: tab.PositionIndex + offset}]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
