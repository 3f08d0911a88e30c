package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// TemplateRepository stores templates as a JSON object keyed by id.
type TemplateRepository struct {
	mu    sync.Mutex
	store port.BlobStore
}

var _ repository.TemplateRepository = (*TemplateRepository)(nil)

// NewTemplateRepository creates a new TemplateRepository.
func NewTemplateRepository(store port.BlobStore) *TemplateRepository {
	return &TemplateRepository{store: store}
}

// Save implements repository.TemplateRepository.
func (r *TemplateRepository) Save(ctx context.Context, tmpl *entity.SessionTemplate) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.load(ctx)
	if err != nil {
		return err
	}
	templates[tmpl.ID] = tmpl.Clone()
	return r.save(ctx, templates)
}

// Get implements repository.TemplateRepository.
func (r *TemplateRepository) Get(ctx context.Context, id entity.TemplateID) (*entity.SessionTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	tmpl, ok := templates[id]
	if !ok {
		return nil, fmt.Errorf("template %s: %w", id, entity.ErrNotFound)
	}
	return tmpl, nil
}

// List implements repository.TemplateRepository.
// Templates are ordered newest first; equal creation times fall back to id order.
func (r *TemplateRepository) List(ctx context.Context) ([]*entity.SessionTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.SessionTemplate, 0, len(templates))
	for _, t := range templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// MarkUsed implements repository.TemplateRepository.
func (r *TemplateRepository) MarkUsed(ctx context.Context, id entity.TemplateID, now time.Time) (*entity.SessionTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	tmpl, ok := templates[id]
	if !ok {
		return nil, fmt.Errorf("template %s: %w", id, entity.ErrNotFound)
	}
	tmpl.MarkUsed(now)
	if err := r.save(ctx, templates); err != nil {
		return nil, err
	}
	return tmpl.Clone(), nil
}

// Delete implements repository.TemplateRepository.
func (r *TemplateRepository) Delete(ctx context.Context, id entity.TemplateID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := templates[id]; !ok {
		return fmt.Errorf("template %s: %w", id, entity.ErrNotFound)
	}
	delete(templates, id)
	return r.save(ctx, templates)
}

func (r *TemplateRepository) load(ctx context.Context) (map[entity.TemplateID]*entity.SessionTemplate, error) {
	templates := make(map[entity.TemplateID]*entity.SessionTemplate)

	raw, err := r.store.Get(ctx, port.BlobKeySessionTemplates)
	if errors.Is(err, entity.ErrNotFound) || (err == nil && len(raw) == 0) {
		return templates, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read templates: %w", entity.ErrStorage, err)
	}

	var decoded map[entity.TemplateID]*entity.SessionTemplate
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode templates: %w", entity.ErrStorage, err)
	}
	for id, t := range decoded {
		if t == nil {
			continue
		}
		t.Normalize()
		if t.ID == "" {
			t.ID = id
		}
		if err := t.Validate(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("template_id", string(id)).Msg("dropping invalid template")
			continue
		}
		templates[id] = t
	}
	return templates, nil
}

func (r *TemplateRepository) save(ctx context.Context, templates map[entity.TemplateID]*entity.SessionTemplate) error {
	raw, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("%w: encode templates: %w", entity.ErrStorage, err)
	}
	if err := r.store.Set(ctx, port.BlobKeySessionTemplates, raw); err != nil {
		return fmt.Errorf("%w: write templates: %w", entity.ErrStorage, err)
	}
	return nil
}
