package memory_test

import (
	"context"
	"testing"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHost_CreateAndListPreservesOrder(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()

	w, err := h.CreateWindow(ctx, entity.WindowCreateParams{URL: "https://a.example", Width: 800, Height: 600})
	require.NoError(t, err)
	require.Len(t, w.Tabs, 1)
	assert.Equal(t, "https://a.example", w.Tabs[0].URL)

	_, err = h.CreateTab(ctx, entity.TabCreateParams{WindowID: w.ID, URL: "https://c.example", Index: 1})
	require.NoError(t, err)
	_, err = h.CreateTab(ctx, entity.TabCreateParams{WindowID: w.ID, URL: "https://b.example", Index: 1})
	require.NoError(t, err)
	_, err = h.CreateTab(ctx, entity.TabCreateParams{WindowID: w.ID, URL: "https://z.example", Index: 99})
	require.NoError(t, err)

	tabs, err := h.ListTabs(ctx, w.ID)
	require.NoError(t, err)
	var urls []string
	for i, tab := range tabs {
		assert.Equal(t, i, tab.Index)
		urls = append(urls, tab.URL)
	}
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example", "https://z.example"}, urls)
}

func TestHost_EmptyURLOpensNewTabPage(t *testing.T) {
	w, err := memory.NewHost().CreateWindow(context.Background(), entity.WindowCreateParams{})
	require.NoError(t, err)
	assert.Equal(t, memory.NewTabURL, w.Tabs[0].URL)
	assert.Equal(t, entity.WindowTypeNormal, w.Type)
}

func TestHost_CloseTabsClosesEmptyWindowsAndGroups(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()
	w1 := h.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "a"}, {URL: "b"}}})
	h.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "c"}}})
	h.AddGroup(w1, "g", entity.GroupColorRed, false, 0, 1)

	windows, err := h.ListWindows(ctx)
	require.NoError(t, err)
	var ids []entity.HostTabID
	for _, w := range windows {
		for _, tab := range w.Tabs {
			ids = append(ids, tab.ID)
		}
	}
	require.Len(t, ids, 3)

	require.NoError(t, h.CloseTabs(ctx, ids))

	windows, err = h.ListWindows(ctx)
	require.NoError(t, err)
	assert.Empty(t, windows)
	groups, err := h.ListTabGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestHost_GroupTabs(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()
	wid := h.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "a"}, {URL: "b"}, {URL: "c"}}})
	tabs, err := h.ListTabs(ctx, wid)
	require.NoError(t, err)

	gid, err := h.GroupTabs(ctx, wid, []entity.HostTabID{tabs[1].ID, tabs[2].ID})
	require.NoError(t, err)
	require.NoError(t, h.UpdateTabGroup(ctx, gid, entity.TabGroupUpdate{Title: "Docs", Color: entity.GroupColorBlue, Collapsed: true}))

	groups, err := h.ListTabGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, entity.HostTabGroup{ID: gid, WindowID: wid, Title: "Docs", Color: entity.GroupColorBlue, Collapsed: true}, groups[0])

	tabs, err = h.ListTabs(ctx, wid)
	require.NoError(t, err)
	assert.Empty(t, tabs[0].GroupID)
	assert.Equal(t, gid, tabs[1].GroupID)
	assert.Equal(t, gid, tabs[2].GroupID)

	other := h.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "d"}}})
	_, err = h.GroupTabs(ctx, other, []entity.HostTabID{tabs[0].ID})
	require.Error(t, err)
}

func TestHost_FailureInjection(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()

	h.FailTimes(memory.OpCreateWindow, 1, func(arg any) bool {
		return arg.(entity.WindowCreateParams).URL == "https://bad.example"
	}, nil)

	_, err := h.CreateWindow(ctx, entity.WindowCreateParams{URL: "https://good.example"})
	require.NoError(t, err)

	_, err = h.CreateWindow(ctx, entity.WindowCreateParams{URL: "https://bad.example"})
	require.ErrorIs(t, err, memory.ErrInjected)

	_, err = h.CreateWindow(ctx, entity.WindowCreateParams{URL: "https://bad.example"})
	require.NoError(t, err, "rule is exhausted after one failure")

	h.FailAlways(memory.OpListWindows, nil, nil)
	_, err = h.ListWindows(ctx)
	require.ErrorIs(t, err, memory.ErrInjected)

	assert.Len(t, h.CallsOf(memory.OpCreateWindow), 3)
}

func TestHost_UpdateTab(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()
	wid := h.AddWindow(memory.WindowSpec{Tabs: []memory.TabSpec{{URL: "a", Active: true}, {URL: "b"}}})
	tabs, _ := h.ListTabs(ctx, wid)
	require.True(t, tabs[0].Active)

	pinned, active := true, true
	require.NoError(t, h.UpdateTab(ctx, tabs[1].ID, entity.TabUpdate{Pinned: &pinned, Active: &active}))

	tabs, _ = h.ListTabs(ctx, wid)
	assert.False(t, tabs[0].Active)
	assert.True(t, tabs[1].Active)
	assert.True(t, tabs[1].Pinned)

	require.ErrorIs(t, h.UpdateTab(ctx, "missing", entity.TabUpdate{}), entity.ErrNotFound)
}
