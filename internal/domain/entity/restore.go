package entity

// RestoreOptions controls how a session is reconstructed.
type RestoreOptions struct {
	// CloseCurrentTabs closes every live tab before restoring (best effort).
	CloseCurrentTabs bool `json:"closeCurrentTabs"`
	// NewWindows creates a host window for every restored window. When false the
	// first restorable window is merged into the focused live window, if any.
	NewWindows bool `json:"newWindows"`
}

// DefaultRestoreOptions returns the options used when a caller supplies none.
func DefaultRestoreOptions() RestoreOptions {
	return RestoreOptions{NewWindows: true}
}

// RestoreStage names the host operation a warning came from.
type RestoreStage string

const (
	StageCloseTabs    RestoreStage = "close_tabs"
	StageCreateWindow RestoreStage = "create_window"
	StageCreateTab    RestoreStage = "create_tab"
	StagePinTab       RestoreStage = "pin_tab"
	StageGroupTabs    RestoreStage = "group_tabs"
	StageUpdateGroup  RestoreStage = "update_group"
)

// RestoreWarning records a host failure that was recovered locally.
type RestoreWarning struct {
	Stage   RestoreStage `json:"stage"`
	Window  LocalID      `json:"window"`
	Message string       `json:"message"`
}

// RestoreResult is a best-effort count of what was actually reconstructed.
type RestoreResult struct {
	RestoredWindows  int              `json:"restoredWindows"`
	RestoredTabs     int              `json:"restoredTabs"`
	RestoredGroups   int              `json:"restoredGroups"`
	SkippedIncognito int              `json:"skippedIncognito"`
	Warnings         []RestoreWarning `json:"warnings,omitempty"`
}

// Warn appends a warning for the given stage.
func (r *RestoreResult) Warn(stage RestoreStage, window LocalID, err error) {
	r.Warnings = append(r.Warnings, RestoreWarning{Stage: stage, Window: window, Message: err.Error()})
}

// SizeLimits bounds the size of restored windows.
type SizeLimits struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// DefaultSizeLimits keeps restored windows on a typical screen.
func DefaultSizeLimits() SizeLimits {
	return SizeLimits{MinWidth: 400, MaxWidth: 1920, MinHeight: 300, MaxHeight: 1080}
}

// Clamp returns the width and height to request for b. Position is never restored.
func (l SizeLimits) Clamp(b Bounds) (width, height int) {
	return clamp(b.Width, l.MinWidth, l.MaxWidth), clamp(b.Height, l.MinHeight, l.MaxHeight)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
