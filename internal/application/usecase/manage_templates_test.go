package usecase_test

import (
	"testing"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManageTemplatesUseCase_Create(t *testing.T) {
	ctx := testContext()
	e := newEngine()
	e.seedWork()

	tmpl, err := e.manage.Create(ctx, usecase.CreateTemplateInput{Name: "  Deep work ", WorkflowTag: "focus"})
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateID("tmpl_001"), tmpl.ID)
	assert.Equal(t, "Deep work", tmpl.Name)
	assert.Equal(t, "focus", tmpl.WorkflowTag)
	assert.Equal(t, entity.SessionKindComplete, tmpl.BaseSession.Kind)
	assert.Equal(t, 0, tmpl.UsageCount)
	assert.Nil(t, tmpl.LastUsedAt)

	history, err := e.history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1, "the template capture is also recorded in history")
	assert.Equal(t, tmpl.BaseSession.ID, history[0].ID)

	summaries, err := e.manage.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, tmpl.BaseSession.Stats, summaries[0].Stats)
}

func TestManageTemplatesUseCase_Create_RequiresName(t *testing.T) {
	e := newEngine()
	_, err := e.manage.Create(testContext(), usecase.CreateTemplateInput{Name: "   "})
	require.ErrorIs(t, err, entity.ErrInvalidTemplate)
	assert.Empty(t, e.host.Calls(), "nothing is captured for an invalid template")
}

func TestManageTemplatesUseCase_Restore_RecordsUsage(t *testing.T) {
	ctx := testContext()
	e := newEngine()
	e.seedWork()
	tmpl, err := e.manage.Create(ctx, usecase.CreateTemplateInput{Name: "Work"})
	require.NoError(t, err)

	for range 2 {
		result, err := e.manage.Restore(ctx, tmpl.ID, entity.DefaultRestoreOptions())
		require.NoError(t, err)
		assert.Equal(t, 4, result.RestoredTabs)
	}

	stored, err := e.manage.Get(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.UsageCount)
	require.NotNil(t, stored.LastUsedAt)
	assert.True(t, stored.LastUsedAt.Equal(fixedNow))
}

func TestManageTemplatesUseCase_Restore_BusyDoesNotCountAsUse(t *testing.T) {
	ctx := testContext()
	e := newEngine()
	e.seedWork()
	tmpl, err := e.manage.Create(ctx, usecase.CreateTemplateInput{Name: "Work"})
	require.NoError(t, err)

	require.True(t, e.gate.TryAcquire())
	defer e.gate.Release()

	_, err = e.manage.Restore(ctx, tmpl.ID, entity.DefaultRestoreOptions())
	require.ErrorIs(t, err, entity.ErrBusy)

	stored, err := e.manage.Get(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.UsageCount)
}

func TestManageTemplatesUseCase_Restore_DeletedMeanwhileStaysDeleted(t *testing.T) {
	ctx := testContext()
	e := newEngine()
	e.seedWork()
	tmpl, err := e.manage.Create(ctx, usecase.CreateTemplateInput{Name: "Work"})
	require.NoError(t, err)

	// Delete the template from inside the restore, on its first window creation.
	var deleteErr error
	deleted := false
	e.host.FailAlways(memory.OpCreateWindow, func(any) bool {
		if !deleted {
			deleted = true
			deleteErr = e.manage.Delete(ctx, tmpl.ID)
		}
		return false
	}, nil)

	result, err := e.manage.Restore(ctx, tmpl.ID, entity.DefaultRestoreOptions())
	require.NoError(t, err)
	require.NoError(t, deleteErr)
	assert.Equal(t, 4, result.RestoredTabs)

	summaries, err := e.manage.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	_, err = e.manage.Get(ctx, tmpl.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestManageTemplatesUseCase_ExportImport(t *testing.T) {
	ctx := testContext()
	e := newEngine()
	e.seedWork()
	tmpl, err := e.manage.Create(ctx, usecase.CreateTemplateInput{Name: "Work", WorkflowTag: "dev"})
	require.NoError(t, err)
	_, err = e.manage.Restore(ctx, tmpl.ID, entity.DefaultRestoreOptions())
	require.NoError(t, err)

	doc, err := e.manage.Export(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "kind: "+usecase.TemplateDocumentKind)
	assert.Contains(t, string(doc), "https://c.example")

	later := fixedNow.Add(time.Hour)
	other := newEngine()
	other.manage.WithClock(func() time.Time { return later })

	imported, err := other.manage.Import(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateID("tmpl_001"), imported.ID)
	assert.Equal(t, "Work", imported.Name)
	assert.Equal(t, "dev", imported.WorkflowTag)
	assert.Equal(t, 0, imported.UsageCount)
	assert.Nil(t, imported.LastUsedAt)
	assert.True(t, imported.CreatedAt.Equal(later))
	assert.Equal(t, tmpl.BaseSession.Stats, imported.BaseSession.Stats)
	require.Len(t, imported.BaseSession.TabGroups, 1)
	assert.Equal(t, "Dev", imported.BaseSession.TabGroups[0].Title)

	result, err := other.manage.Restore(ctx, imported.ID, entity.DefaultRestoreOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RestoredGroups)
}

func TestManageTemplatesUseCase_Import_RejectsForeignDocuments(t *testing.T) {
	ctx := testContext()
	e := newEngine()

	_, err := e.manage.Import(ctx, []byte("kind: something-else\ntemplate:\n  name: x\n"))
	require.ErrorIs(t, err, entity.ErrInvalidTemplate)

	_, err = e.manage.Import(ctx, []byte("kind: [unterminated"))
	require.ErrorIs(t, err, entity.ErrInvalidTemplate)

	doc := "kind: " + usecase.TemplateDocumentKind + "\n" +
		"template:\n" +
		"  name: broken\n" +
		"  base_session:\n" +
		"    id: sess_1\n" +
		"    kind: manual\n" +
		"    windows:\n" +
		"      - local_id: 0\n" +
		"        tabs:\n" +
		"          - url: https://a.example\n" +
		"            group_ref: 4\n"
	_, err = e.manage.Import(ctx, []byte(doc))
	require.Error(t, err)

	list, err := e.manage.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestManageTemplatesUseCase_Delete(t *testing.T) {
	ctx := testContext()
	e := newEngine()
	e.seedWork()
	tmpl, err := e.manage.Create(ctx, usecase.CreateTemplateInput{Name: "Work"})
	require.NoError(t, err)

	require.NoError(t, e.manage.Delete(ctx, tmpl.ID))
	_, err = e.manage.Get(ctx, tmpl.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.ErrorIs(t, e.manage.Delete(ctx, tmpl.ID), entity.ErrNotFound)
	require.ErrorIs(t, e.manage.Delete(ctx, ""), entity.ErrNotFound)
}
