package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// TemplateDocumentKind identifies an exported template document.
const TemplateDocumentKind = "tabsnap/session-template"

// templateDocument is the YAML envelope used by Export and Import.
type templateDocument struct {
	Kind     string                 `yaml:"kind"`
	Template entity.SessionTemplate `yaml:"template"`
}

// ManageTemplatesUseCase creates, lists, restores and removes session templates.
type ManageTemplatesUseCase struct {
	templates repository.TemplateRepository
	capture   *CaptureSessionUseCase
	restore   *RestoreSessionUseCase
	newID     entity.IDGenerator
	metrics   port.EngineMetrics
	now       func() time.Time
}

// NewManageTemplatesUseCase creates a new ManageTemplatesUseCase.
func NewManageTemplatesUseCase(
	templates repository.TemplateRepository,
	capture *CaptureSessionUseCase,
	restore *RestoreSessionUseCase,
	newID entity.IDGenerator,
	metrics port.EngineMetrics,
) *ManageTemplatesUseCase {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	return &ManageTemplatesUseCase{
		templates: templates,
		capture:   capture,
		restore:   restore,
		newID:     newID,
		metrics:   metrics,
		now:       time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (uc *ManageTemplatesUseCase) WithClock(now func() time.Time) *ManageTemplatesUseCase {
	uc.now = now
	return uc
}

// CreateTemplateInput contains the parameters for creating a template.
type CreateTemplateInput struct {
	Name        string
	WorkflowTag string
}

// Create captures the live host as a complete session and stores it as a template.
// The capture is also appended to the history ledger.
func (uc *ManageTemplatesUseCase) Create(ctx context.Context, input CreateTemplateInput) (*entity.SessionTemplate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrInvalidTemplate)
	}

	session, err := uc.capture.Execute(ctx, CaptureInput{Name: name, Kind: entity.SessionKindComplete})
	if err != nil {
		return nil, fmt.Errorf("capture template session: %w", err)
	}

	tmpl := entity.NewTemplate(entity.TemplateID(uc.newID()), name, input.WorkflowTag, session, uc.now())
	if err := uc.templates.Save(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}
	uc.refreshCount(ctx)

	logging.FromContext(ctx).Info().
		Str("template_id", string(tmpl.ID)).
		Str("session_id", string(session.ID)).
		Str("workflow_tag", tmpl.WorkflowTag).
		Msg("template created")

	return tmpl, nil
}

// List returns template summaries, newest first.
func (uc *ManageTemplatesUseCase) List(ctx context.Context) ([]entity.TemplateSummary, error) {
	templates, err := uc.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	out := make([]entity.TemplateSummary, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Summary())
	}
	return out, nil
}

// Get returns one template.
func (uc *ManageTemplatesUseCase) Get(ctx context.Context, id entity.TemplateID) (*entity.SessionTemplate, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: template id required", entity.ErrNotFound)
	}
	return uc.templates.Get(ctx, id)
}

// Delete removes a template. Unknown ids return entity.ErrNotFound.
func (uc *ManageTemplatesUseCase) Delete(ctx context.Context, id entity.TemplateID) error {
	if id == "" {
		return fmt.Errorf("%w: template id required", entity.ErrNotFound)
	}
	if err := uc.templates.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete template %s: %w", id, err)
	}
	uc.refreshCount(ctx)
	logging.FromContext(ctx).Info().Str("template_id", string(id)).Msg("template deleted")
	return nil
}

// Restore rebuilds the template's base session and records the use.
// Usage is recorded whenever the restore ran, even when it produced warnings.
func (uc *ManageTemplatesUseCase) Restore(
	ctx context.Context,
	id entity.TemplateID,
	opts entity.RestoreOptions,
) (*entity.RestoreResult, error) {
	tmpl, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := uc.restore.RestoreSnapshot(ctx, &tmpl.BaseSession, opts)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	_, err = uc.templates.MarkUsed(ctx, id, uc.now())
	switch {
	case errors.Is(err, entity.ErrNotFound):
		log.Info().Str("template_id", string(id)).Msg("template deleted during restore, usage not recorded")
	case err != nil:
		log.Warn().Err(err).Str("template_id", string(id)).Msg("failed to record template usage")
	}
	return result, nil
}

// Export renders a template as a YAML document.
func (uc *ManageTemplatesUseCase) Export(ctx context.Context, id entity.TemplateID) ([]byte, error) {
	tmpl, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := yaml.Marshal(templateDocument{Kind: TemplateDocumentKind, Template: *tmpl})
	if err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	return doc, nil
}

// Import stores a template read from a YAML document under a fresh id.
// Usage statistics are reset.
func (uc *ManageTemplatesUseCase) Import(ctx context.Context, doc []byte) (*entity.SessionTemplate, error) {
	var parsed templateDocument
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode document: %w", entity.ErrInvalidTemplate, err)
	}
	if parsed.Kind != TemplateDocumentKind {
		return nil, fmt.Errorf("%w: unexpected document kind %q", entity.ErrInvalidTemplate, parsed.Kind)
	}

	tmpl := parsed.Template
	tmpl.Normalize()
	tmpl.ID = entity.TemplateID(uc.newID())
	tmpl.Name = strings.TrimSpace(tmpl.Name)
	tmpl.WorkflowTag = strings.TrimSpace(tmpl.WorkflowTag)
	tmpl.CreatedAt = uc.now().UTC()
	tmpl.UsageCount = 0
	tmpl.LastUsedAt = nil
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	if err := uc.templates.Save(ctx, &tmpl); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}
	uc.refreshCount(ctx)

	logging.FromContext(ctx).Info().Str("template_id", string(tmpl.ID)).Str("name", tmpl.Name).Msg("template imported")
	return &tmpl, nil
}

func (uc *ManageTemplatesUseCase) refreshCount(ctx context.Context) {
	templates, err := uc.templates.List(ctx)
	if err != nil {
		return
	}
	uc.metrics.TemplateCount(len(templates))
}
