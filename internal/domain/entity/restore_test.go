package entity_test

import (
	"errors"
	"testing"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeLimits_Clamp(t *testing.T) {
	limits := entity.DefaultSizeLimits()

	tests := []struct {
		name   string
		bounds entity.Bounds
		wantW  int
		wantH  int
	}{
		{"within range", entity.Bounds{Width: 1280, Height: 800}, 1280, 800},
		{"too small", entity.Bounds{Width: 120, Height: 90}, 400, 300},
		{"too large", entity.Bounds{Width: 5120, Height: 2880}, 1920, 1080},
		{"unknown size", entity.Bounds{}, 400, 300},
		{"position ignored", entity.Bounds{Left: -4000, Top: 9000, Width: 800, Height: 600}, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := limits.Clamp(tt.bounds)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestRestoreResult_Warn(t *testing.T) {
	var r entity.RestoreResult
	r.Warn(entity.StageCreateTab, 2, errors.New("tab refused"))

	require.Len(t, r.Warnings, 1)
	assert.Equal(t, entity.StageCreateTab, r.Warnings[0].Stage)
	assert.Equal(t, entity.LocalID(2), r.Warnings[0].Window)
	assert.Equal(t, "tab refused", r.Warnings[0].Message)
}

func TestDefaultRestoreOptions(t *testing.T) {
	opts := entity.DefaultRestoreOptions()
	assert.True(t, opts.NewWindows)
	assert.False(t, opts.CloseCurrentTabs)
}
