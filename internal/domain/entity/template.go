package entity

import (
	"fmt"
	"strings"
	"time"
)

// TemplateID uniquely identifies a session template.
type TemplateID string

// SessionTemplate is a named, reusable session layout derived from a capture.
type SessionTemplate struct {
	SchemaVersion int        `json:"schema_version" yaml:"schema_version"`
	ID            TemplateID `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	WorkflowTag   string     `json:"workflow_tag" yaml:"workflow_tag"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
	BaseSession   Session    `json:"base_session" yaml:"base_session"`
	UsageCount    int        `json:"usage_count" yaml:"usage_count"`
	LastUsedAt    *time.Time `json:"last_used_at,omitempty" yaml:"last_used_at,omitempty"`
}

// TemplateSummary is the listing projection of a template.
type TemplateSummary struct {
	ID          TemplateID   `json:"id"`
	Name        string       `json:"name"`
	WorkflowTag string       `json:"workflow_tag"`
	CreatedAt   time.Time    `json:"created_at"`
	UsageCount  int          `json:"usage_count"`
	LastUsedAt  *time.Time   `json:"last_used_at,omitempty"`
	Stats       SessionStats `json:"stats"`
}

// NewTemplate wraps a copy of base into a template.
func NewTemplate(id TemplateID, name, workflowTag string, base *Session, now time.Time) *SessionTemplate {
	t := &SessionTemplate{
		SchemaVersion: SessionSchemaVersion,
		ID:            id,
		Name:          strings.TrimSpace(name),
		WorkflowTag:   strings.TrimSpace(workflowTag),
		CreatedAt:     now.UTC(),
	}
	if base != nil {
		t.BaseSession = *base.Clone()
	}
	return t
}

// MarkUsed records one restore of the template.
func (t *SessionTemplate) MarkUsed(now time.Time) {
	now = now.UTC()
	t.UsageCount++
	t.LastUsedAt = &now
}

// Summary returns the listing projection of t.
func (t *SessionTemplate) Summary() TemplateSummary {
	return TemplateSummary{
		ID:          t.ID,
		Name:        t.Name,
		WorkflowTag: t.WorkflowTag,
		CreatedAt:   t.CreatedAt,
		UsageCount:  t.UsageCount,
		LastUsedAt:  t.LastUsedAt,
		Stats:       t.BaseSession.Stats,
	}
}

// Normalize fills defaults at the deserialization boundary.
func (t *SessionTemplate) Normalize() {
	if t.SchemaVersion == 0 {
		t.SchemaVersion = SessionSchemaVersion
	}
	if t.UsageCount < 0 {
		t.UsageCount = 0
	}
	t.BaseSession.Normalize()
}

// Validate checks the template and its embedded session.
func (t *SessionTemplate) Validate() error {
	if t == nil {
		return ErrInvalidTemplate
	}
	if strings.TrimSpace(string(t.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if err := t.BaseSession.Validate(); err != nil {
		return fmt.Errorf("%w: base session: %w", ErrInvalidTemplate, err)
	}
	return nil
}

// Clone returns a deep copy of t.
func (t *SessionTemplate) Clone() *SessionTemplate {
	if t == nil {
		return nil
	}
	out := *t
	out.BaseSession = *t.BaseSession.Clone()
	if t.LastUsedAt != nil {
		last := *t.LastUsedAt
		out.LastUsedAt = &last
	}
	return &out
}
