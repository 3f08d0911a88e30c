package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// Command names accepted in Request.Type.
const (
	TypeCaptureSession  = "captureSession"
	TypeListSessions    = "listSessions"
	TypeGetSession      = "getSession"
	TypeRestoreSession  = "restoreSession"
	TypeDeleteSession   = "deleteSession"
	TypeCreateTemplate  = "createTemplate"
	TypeListTemplates   = "listTemplates"
	TypeDeleteTemplate  = "deleteTemplate"
	TypeRestoreTemplate = "restoreTemplate"
	TypeExportTemplate  = "exportTemplate"
	TypeImportTemplate  = "importTemplate"
	TypeSyncSessions    = "syncSessions"
)

// Error codes carried in ErrorBody.Code.
const (
	CodeNotFound        = "not_found"
	CodeBusy            = "busy"
	CodeHostEnumeration = "host_enumeration"
	CodeStorage         = "storage"
	CodeInvalidRequest  = "invalid_request"
	CodeUnavailable     = "unavailable"
	CodeInternal        = "internal"
)

// Request is one command from a UI collaborator.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`

	// ID addresses a session or a template. SessionID and TemplateID are
	// accepted as aliases.
	ID         string `json:"id,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
	TemplateID string `json:"templateId,omitempty"`

	Name        string                 `json:"name,omitempty"`
	WorkflowTag string                 `json:"workflowTag,omitempty"`
	Limit       int                    `json:"limit,omitempty"`
	Options     *entity.RestoreOptions `json:"options,omitempty"`
	Document    string                 `json:"document,omitempty"`
}

// TargetID returns the addressed id, preferring ID over the aliases.
func (r Request) TargetID() string {
	switch {
	case r.ID != "":
		return r.ID
	case r.SessionID != "":
		return r.SessionID
	default:
		return r.TemplateID
	}
}

// RestoreOptions returns the request's options or the defaults.
func (r Request) RestoreOptions() entity.RestoreOptions {
	if r.Options == nil {
		return entity.DefaultRestoreOptions()
	}
	return *r.Options
}

// Response is the envelope returned for every command.
type Response struct {
	OK    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed command.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CaptureData is returned by captureSession.
type CaptureData struct {
	ID        entity.SessionID    `json:"id"`
	Name      string              `json:"name"`
	Timestamp string              `json:"timestamp"`
	Stats     entity.SessionStats `json:"stats"`
}

// TemplateCreated is returned by createTemplate and importTemplate.
type TemplateCreated struct {
	ID   entity.TemplateID `json:"id"`
	Name string            `json:"name"`
}

// ExportData is returned by exportTemplate.
type ExportData struct {
	Document string `json:"document"`
}

var errEmptyPayload = errors.New("empty payload")

// ParseRequest decodes a command. Numeric id and limit values sent by
// loosely typed callers are accepted.
func ParseRequest(payload []byte) (Request, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return Request{}, errEmptyPayload
	}

	var req Request
	err := json.Unmarshal(payload, &req)
	if err == nil {
		return req, nil
	}

	normalized, normErr := normalizePayload(payload)
	if normErr != nil {
		return Request{}, err
	}
	if err := json.Unmarshal(normalized, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// normalizePayload rewrites numeric ids as strings and string limits as numbers.
func normalizePayload(data []byte) ([]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	for _, key := range []string{"id", "sessionId", "templateId", "requestId"} {
		value, ok := raw[key]
		if !ok {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(value, &n); err == nil {
			quoted, _ := json.Marshal(n.String())
			raw[key] = quoted
		}
	}

	if value, ok := raw["limit"]; ok {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, err
			}
			raw["limit"] = json.RawMessage(strconv.Itoa(n))
		}
	}

	return json.Marshal(raw)
}
