package repository

import (
	"context"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// TemplateRepository persists session templates keyed by id.
type TemplateRepository interface {
	// Save inserts or replaces a template.
	Save(ctx context.Context, tmpl *entity.SessionTemplate) error

	// Get returns a template by id or entity.ErrNotFound.
	Get(ctx context.Context, id entity.TemplateID) (*entity.SessionTemplate, error)

	// List returns all templates, newest first.
	List(ctx context.Context) ([]*entity.SessionTemplate, error)

	// MarkUsed records one use of a template at now. A template deleted in the
	// meantime returns entity.ErrNotFound and is not written back.
	MarkUsed(ctx context.Context, id entity.TemplateID, now time.Time) (*entity.SessionTemplate, error)

	// Delete removes a template. Unknown ids return entity.ErrNotFound without writing.
	Delete(ctx context.Context, id entity.TemplateID) error
}
