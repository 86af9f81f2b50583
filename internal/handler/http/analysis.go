package http

import (
	"encoding/json"
	"net/http"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/analysis"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/response"
)

type AnalysisHandler interface {
	AnalyzeWorkforce(w http.ResponseWriter, r *http.Request)
}

type analysisHandlerImpl struct {
	analysisService analysis.AnalysisService
}

func NewAnalysisHandler(analysisService analysis.AnalysisService) AnalysisHandler {
	return &analysisHandlerImpl{analysisService: analysisService}
}

func (h *analysisHandlerImpl) AnalyzeWorkforce(w http.ResponseWriter, r *http.Request) {
	var req analysis.WorkforceAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.analysisService.AnalyzeWorkforce(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
