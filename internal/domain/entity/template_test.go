package entity_test

import (
	"testing"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate_CopiesBaseSession(t *testing.T) {
	base := sampleSession()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.FixedZone("X", 3600))

	tmpl := entity.NewTemplate("tmpl_01", "  Workday ", " focus ", base, now)
	require.NoError(t, tmpl.Validate())
	assert.Equal(t, "Workday", tmpl.Name)
	assert.Equal(t, "focus", tmpl.WorkflowTag)
	assert.True(t, tmpl.CreatedAt.Equal(now))
	assert.Equal(t, time.UTC, tmpl.CreatedAt.Location())
	assert.Zero(t, tmpl.UsageCount)

	base.Windows[0].Tabs[0].URL = "https://mutated.example"
	assert.Equal(t, "https://a.example", tmpl.BaseSession.Windows[0].Tabs[0].URL)
}

func TestSessionTemplate_MarkUsed(t *testing.T) {
	tmpl := entity.NewTemplate("tmpl_01", "Workday", "", sampleSession(), time.Now())
	first := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	tmpl.MarkUsed(first)
	tmpl.MarkUsed(first.Add(time.Hour))

	assert.Equal(t, 2, tmpl.UsageCount)
	require.NotNil(t, tmpl.LastUsedAt)
	assert.True(t, tmpl.LastUsedAt.Equal(first.Add(time.Hour)))

	sum := tmpl.Summary()
	assert.Equal(t, 2, sum.UsageCount)
	assert.Equal(t, tmpl.BaseSession.Stats, sum.Stats)
}

func TestSessionTemplate_Validate(t *testing.T) {
	noName := entity.NewTemplate("tmpl_01", " ", "", sampleSession(), time.Now())
	require.ErrorIs(t, noName.Validate(), entity.ErrInvalidTemplate)

	noID := entity.NewTemplate("", "Workday", "", sampleSession(), time.Now())
	require.ErrorIs(t, noID.Validate(), entity.ErrInvalidTemplate)

	broken := sampleSession()
	broken.Stats.TabCount = 42
	badBase := entity.NewTemplate("tmpl_01", "Workday", "", broken, time.Now())
	err := badBase.Validate()
	require.ErrorIs(t, err, entity.ErrInvalidTemplate)
	require.ErrorIs(t, err, entity.ErrInvalidSession)
}

func TestSessionTemplate_CloneAndNormalize(t *testing.T) {
	tmpl := entity.NewTemplate("tmpl_01", "Workday", "", sampleSession(), time.Now())
	tmpl.MarkUsed(time.Now())

	c := tmpl.Clone()
	c.BaseSession.Name = "other"
	*c.LastUsedAt = time.Time{}
	assert.Equal(t, "Work", tmpl.BaseSession.Name)
	assert.False(t, tmpl.LastUsedAt.IsZero())

	legacy := &entity.SessionTemplate{ID: "tmpl_old", Name: "Old", UsageCount: -3}
	legacy.Normalize()
	assert.Equal(t, entity.SessionSchemaVersion, legacy.SchemaVersion)
	assert.Zero(t, legacy.UsageCount)
	assert.Equal(t, entity.SessionKindManual, legacy.BaseSession.Kind)
}
