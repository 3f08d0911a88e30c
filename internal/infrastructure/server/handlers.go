package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/app/command"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// StatusFor maps a command error code to an HTTP status.
func StatusFor(code string) int {
	switch code {
	case command.CodeNotFound:
		return http.StatusNotFound
	case command.CodeBusy:
		return http.StatusConflict
	case command.CodeHostEnumeration:
		return http.StatusBadGateway
	case command.CodeInvalidRequest:
		return http.StatusBadRequest
	case command.CodeUnavailable:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respond(c *gin.Context, resp command.Response) {
	status := http.StatusOK
	if !resp.OK {
		status = StatusFor(resp.Error.Code)
	}
	c.JSON(status, resp)
}

func (s *Server) dispatch(c *gin.Context, req command.Request) {
	s.respond(c, s.commands.Dispatch(c.Request.Context(), req))
}

func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, command.Response{
		Error: &command.ErrorBody{Code: command.CodeInvalidRequest, Message: err.Error()},
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleCommand accepts the raw command envelope.
func (s *Server) handleCommand(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		s.badRequest(c, err)
		return
	}
	s.respond(c, s.commands.Handle(c.Request.Context(), body))
}

// bindOptional decodes a JSON body when one is present.
func bindOptional(c *gin.Context, dst any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) listSessions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.badRequest(c, err)
			return
		}
		limit = n
	}
	s.dispatch(c, command.Request{Type: command.TypeListSessions, Limit: limit})
}

type captureBody struct {
	Name      string `json:"name"`
	RequestID string `json:"requestId"`
}

func (s *Server) captureSession(c *gin.Context) {
	var body captureBody
	if err := bindOptional(c, &body); err != nil {
		s.badRequest(c, err)
		return
	}
	s.dispatch(c, command.Request{Type: command.TypeCaptureSession, Name: body.Name, RequestID: body.RequestID})
}

func (s *Server) getSession(c *gin.Context) {
	s.dispatch(c, command.Request{Type: command.TypeGetSession, ID: c.Param("id")})
}

func (s *Server) deleteSession(c *gin.Context) {
	s.dispatch(c, command.Request{Type: command.TypeDeleteSession, ID: c.Param("id")})
}

func (s *Server) restoreOptions(c *gin.Context) (*entity.RestoreOptions, bool) {
	if c.Request.ContentLength == 0 {
		return nil, true
	}
	opts := entity.DefaultRestoreOptions()
	if err := bindOptional(c, &opts); err != nil {
		s.badRequest(c, err)
		return nil, false
	}
	return &opts, true
}

func (s *Server) restoreSession(c *gin.Context) {
	opts, ok := s.restoreOptions(c)
	if !ok {
		return
	}
	s.dispatch(c, command.Request{Type: command.TypeRestoreSession, ID: c.Param("id"), Options: opts})
}

func (s *Server) listTemplates(c *gin.Context) {
	s.dispatch(c, command.Request{Type: command.TypeListTemplates})
}

type templateBody struct {
	Name        string `json:"name"`
	WorkflowTag string `json:"workflowTag"`
}

func (s *Server) createTemplate(c *gin.Context) {
	var body templateBody
	if err := bindOptional(c, &body); err != nil {
		s.badRequest(c, err)
		return
	}
	s.dispatch(c, command.Request{Type: command.TypeCreateTemplate, Name: body.Name, WorkflowTag: body.WorkflowTag})
}

func (s *Server) deleteTemplate(c *gin.Context) {
	s.dispatch(c, command.Request{Type: command.TypeDeleteTemplate, ID: c.Param("id")})
}

func (s *Server) restoreTemplate(c *gin.Context) {
	opts, ok := s.restoreOptions(c)
	if !ok {
		return
	}
	s.dispatch(c, command.Request{Type: command.TypeRestoreTemplate, ID: c.Param("id"), Options: opts})
}

// exportTemplate serves the YAML document itself rather than the envelope.
func (s *Server) exportTemplate(c *gin.Context) {
	resp := s.commands.Dispatch(c.Request.Context(), command.Request{Type: command.TypeExportTemplate, ID: c.Param("id")})
	if !resp.OK {
		s.respond(c, resp)
		return
	}
	data, ok := resp.Data.(command.ExportData)
	if !ok {
		c.JSON(http.StatusInternalServerError, command.Fail(errors.New("unexpected export payload")))
		return
	}
	c.Data(http.StatusOK, "application/yaml", []byte(data.Document))
}
