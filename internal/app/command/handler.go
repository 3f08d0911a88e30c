// Package command exposes the session engine to UI collaborators as a
// request/response protocol: one JSON request per command name, one
// envelope back.
package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// Capturer captures the live host into the history ledger.
type Capturer interface {
	Execute(ctx context.Context, input usecase.CaptureInput) (*entity.Session, error)
}

// SessionReader lists and loads sessions.
type SessionReader interface {
	Execute(ctx context.Context, limit int) (*usecase.ListSessionsOutput, error)
	Get(ctx context.Context, id entity.SessionID) (*entity.Session, error)
}

// SessionRestorer restores a session from the ledger.
type SessionRestorer interface {
	Execute(ctx context.Context, input usecase.RestoreInput) (*entity.RestoreResult, error)
}

// SessionDeleter removes a session from the ledger.
type SessionDeleter interface {
	Execute(ctx context.Context, id entity.SessionID) error
}

// TemplateManager manages session templates.
type TemplateManager interface {
	Create(ctx context.Context, input usecase.CreateTemplateInput) (*entity.SessionTemplate, error)
	List(ctx context.Context) ([]entity.TemplateSummary, error)
	Delete(ctx context.Context, id entity.TemplateID) error
	Restore(ctx context.Context, id entity.TemplateID, opts entity.RestoreOptions) (*entity.RestoreResult, error)
	Export(ctx context.Context, id entity.TemplateID) ([]byte, error)
	Import(ctx context.Context, doc []byte) (*entity.SessionTemplate, error)
}

// Syncer pushes the ledger to a sync provider.
type Syncer interface {
	Execute(ctx context.Context) error
}

// Deps holds the use cases a Handler dispatches to.
type Deps struct {
	Capture   Capturer
	Sessions  SessionReader
	Restore   SessionRestorer
	Delete    SessionDeleter
	Templates TemplateManager
	Sync      Syncer
}

// Handler dispatches commands to use cases.
type Handler struct {
	deps  Deps
	dedup *Deduplicator
}

// NewHandler creates a new command handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps, dedup: NewDeduplicator(DefaultReplayWindow)}
}

// Handle decodes payload and dispatches it.
func (h *Handler) Handle(ctx context.Context, payload []byte) Response {
	req, err := ParseRequest(payload)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to decode command")
		return Fail(fmt.Errorf("%w: %v", errInvalidRequest, err))
	}
	return h.Dispatch(ctx, req)
}

// Dispatch runs one command. Mutating commands carrying a requestId are
// executed once per replay window; repeats get the first response.
func (h *Handler) Dispatch(ctx context.Context, req Request) Response {
	if req.RequestID != "" {
		ctx = logging.WithRequestID(ctx, req.RequestID)
	}
	log := logging.FromContext(ctx)
	start := time.Now()

	run := func() Response { return h.dispatch(ctx, req) }
	var resp Response
	if req.RequestID != "" && isMutating(req.Type) {
		var replayed bool
		resp, replayed = h.dedup.Do(req.Type+":"+req.RequestID, run)
		if replayed {
			log.Debug().Str("command", req.Type).Msg("replayed duplicate command")
		}
	} else {
		resp = run()
	}

	if resp.OK {
		log.Debug().Str("command", req.Type).Dur("duration", time.Since(start)).Msg("command handled")
	} else {
		log.Warn().
			Str("command", req.Type).
			Str("code", resp.Error.Code).
			Str("error", resp.Error.Message).
			Msg("command failed")
	}
	return resp
}

func (h *Handler) dispatch(ctx context.Context, req Request) Response {
	switch req.Type {
	case TypeCaptureSession:
		return h.handleCapture(ctx, req)
	case TypeListSessions:
		return h.handleListSessions(ctx, req)
	case TypeGetSession:
		return h.handleGetSession(ctx, req)
	case TypeRestoreSession:
		return h.handleRestoreSession(ctx, req)
	case TypeDeleteSession:
		return h.handleDeleteSession(ctx, req)
	case TypeCreateTemplate:
		return h.handleCreateTemplate(ctx, req)
	case TypeListTemplates:
		return h.handleListTemplates(ctx)
	case TypeDeleteTemplate:
		return h.handleDeleteTemplate(ctx, req)
	case TypeRestoreTemplate:
		return h.handleRestoreTemplate(ctx, req)
	case TypeExportTemplate:
		return h.handleExportTemplate(ctx, req)
	case TypeImportTemplate:
		return h.handleImportTemplate(ctx, req)
	case TypeSyncSessions:
		return h.handleSync(ctx)
	case "":
		return Fail(fmt.Errorf("%w: missing command type", errInvalidRequest))
	default:
		return Fail(fmt.Errorf("%w: unknown command %q", errInvalidRequest, req.Type))
	}
}

func isMutating(t string) bool {
	switch t {
	case TypeCaptureSession, TypeRestoreSession, TypeDeleteSession,
		TypeCreateTemplate, TypeDeleteTemplate, TypeRestoreTemplate, TypeImportTemplate:
		return true
	}
	return false
}

func (h *Handler) handleCapture(ctx context.Context, req Request) Response {
	session, err := h.deps.Capture.Execute(ctx, usecase.CaptureInput{Name: req.Name, Kind: entity.SessionKindManual})
	if err != nil {
		return Fail(err)
	}
	return OK(CaptureData{
		ID:        session.ID,
		Name:      session.Name,
		Timestamp: session.CapturedAt.UTC().Format(time.RFC3339),
		Stats:     session.Stats,
	})
}

func (h *Handler) handleListSessions(ctx context.Context, req Request) Response {
	if req.Limit < 0 {
		return Fail(fmt.Errorf("%w: limit must not be negative", errInvalidRequest))
	}
	out, err := h.deps.Sessions.Execute(ctx, req.Limit)
	if err != nil {
		return Fail(err)
	}
	return OK(out.Sessions)
}

func (h *Handler) handleGetSession(ctx context.Context, req Request) Response {
	session, err := h.deps.Sessions.Get(ctx, entity.SessionID(req.TargetID()))
	if err != nil {
		return Fail(err)
	}
	return OK(session)
}

func (h *Handler) handleRestoreSession(ctx context.Context, req Request) Response {
	result, err := h.deps.Restore.Execute(ctx, usecase.RestoreInput{
		SessionID: entity.SessionID(req.TargetID()),
		Options:   req.RestoreOptions(),
	})
	if err != nil {
		return Fail(err)
	}
	return OK(result)
}

func (h *Handler) handleDeleteSession(ctx context.Context, req Request) Response {
	if err := h.deps.Delete.Execute(ctx, entity.SessionID(req.TargetID())); err != nil {
		return Fail(err)
	}
	return OK(nil)
}

func (h *Handler) handleCreateTemplate(ctx context.Context, req Request) Response {
	tmpl, err := h.deps.Templates.Create(ctx, usecase.CreateTemplateInput{Name: req.Name, WorkflowTag: req.WorkflowTag})
	if err != nil {
		return Fail(err)
	}
	return OK(TemplateCreated{ID: tmpl.ID, Name: tmpl.Name})
}

func (h *Handler) handleListTemplates(ctx context.Context) Response {
	templates, err := h.deps.Templates.List(ctx)
	if err != nil {
		return Fail(err)
	}
	return OK(templates)
}

func (h *Handler) handleDeleteTemplate(ctx context.Context, req Request) Response {
	if err := h.deps.Templates.Delete(ctx, entity.TemplateID(req.TargetID())); err != nil {
		return Fail(err)
	}
	return OK(nil)
}

func (h *Handler) handleRestoreTemplate(ctx context.Context, req Request) Response {
	result, err := h.deps.Templates.Restore(ctx, entity.TemplateID(req.TargetID()), req.RestoreOptions())
	if err != nil {
		return Fail(err)
	}
	return OK(result)
}

func (h *Handler) handleExportTemplate(ctx context.Context, req Request) Response {
	doc, err := h.deps.Templates.Export(ctx, entity.TemplateID(req.TargetID()))
	if err != nil {
		return Fail(err)
	}
	return OK(ExportData{Document: string(doc)})
}

func (h *Handler) handleImportTemplate(ctx context.Context, req Request) Response {
	if req.Document == "" {
		return Fail(fmt.Errorf("%w: document is required", errInvalidRequest))
	}
	tmpl, err := h.deps.Templates.Import(ctx, []byte(req.Document))
	if err != nil {
		return Fail(err)
	}
	return OK(TemplateCreated{ID: tmpl.ID, Name: tmpl.Name})
}

func (h *Handler) handleSync(ctx context.Context) Response {
	if h.deps.Sync == nil {
		return Fail(entity.ErrSyncUnavailable)
	}
	if err := h.deps.Sync.Execute(ctx); err != nil {
		return Fail(err)
	}
	return OK(nil)
}

var errInvalidRequest = errors.New("invalid request")

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{OK: true, Data: data}
}

// Fail wraps err in a failed envelope.
func Fail(err error) Response {
	return Response{Error: &ErrorBody{Code: ErrorCode(err), Message: err.Error()}}
}

// ErrorCode maps an engine error to its wire code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, entity.ErrBusy):
		return CodeBusy
	case errors.Is(err, entity.ErrHostEnumeration):
		return CodeHostEnumeration
	case errors.Is(err, entity.ErrStorage):
		return CodeStorage
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, entity.ErrInvalidSession),
		errors.Is(err, entity.ErrInvalidTemplate):
		return CodeInvalidRequest
	case errors.Is(err, entity.ErrSyncUnavailable),
		errors.Is(err, entity.ErrUnsupported):
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
