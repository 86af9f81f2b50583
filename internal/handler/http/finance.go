package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/finance"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	UpsertDeduction(w http.ResponseWriter, r *http.Request)
	SetReview(w http.ResponseWriter, r *http.Request)
	GetFinancials(w http.ResponseWriter, r *http.Request)
	ResetPeriod(w http.ResponseWriter, r *http.Request)
	AddCommissionLog(w http.ResponseWriter, r *http.Request)
	ListCommissionLogs(w http.ResponseWriter, r *http.Request)
	DeleteCommissionLog(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

func (h *financeHandlerImpl) UpsertDeduction(w http.ResponseWriter, r *http.Request) {
	var req finance.ManualDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.AddOrUpdateManualDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) SetReview(w http.ResponseWriter, r *http.Request) {
	var req finance.ManagerReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.SetManagerReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) GetFinancials(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid month or year", nil)
		return
	}

	result, err := h.financeService.GetFinancials(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) ResetPeriod(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid month or year", nil)
		return
	}

	if err := h.financeService.ResetMonthlyFinancials(r.Context(), employeeID, month, year); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly financials reset", nil)
}

func (h *financeHandlerImpl) AddCommissionLog(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateCommissionLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.AddCommissionLog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Commission log created", result)
}

func (h *financeHandlerImpl) ListCommissionLogs(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid month or year", nil)
		return
	}

	result, err := h.financeService.ListCommissionLogs(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) DeleteCommissionLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Commission log ID is required", nil)
		return
	}

	if err := h.financeService.DeleteCommissionLog(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Commission log deleted", nil)
}
