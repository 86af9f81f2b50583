package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/problem"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/response"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/validator"
)

type ProblemHandler interface {
	CreateLog(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
	MarkSolved(w http.ResponseWriter, r *http.Request)
	DeleteLog(w http.ResponseWriter, r *http.Request)
}

type problemHandlerImpl struct {
	problemService problem.ProblemService
}

func NewProblemHandler(problemService problem.ProblemService) ProblemHandler {
	return &problemHandlerImpl{problemService: problemService}
}

func (h *problemHandlerImpl) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req problem.CreateProblemLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if validator.IsEmpty(req.Title) {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "title", Message: "Title is required"},
		})
		return
	}

	result, err := h.problemService.CreateLog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Problem log created", result)
}

func (h *problemHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.problemService.ListLogs(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *problemHandlerImpl) MarkSolved(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Problem log ID is required", nil)
		return
	}

	result, err := h.problemService.MarkSolved(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Problem marked solved", result)
}

func (h *problemHandlerImpl) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Problem log ID is required", nil)
		return
	}

	if err := h.problemService.DeleteLog(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Problem log deleted", nil)
}
