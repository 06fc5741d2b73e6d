package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
	"github.com/kintai-hq/kintai-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Generate handles POST /reports
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req report.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.reportService.Generate(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report generated", result)
}

// Get handles GET /reports?year=&month=
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.Get(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete handles DELETE /reports?year=&month=
func (h *reportHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	if err := h.reportService.Delete(ctx, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report deleted", nil)
}

func parseYearMonth(w http.ResponseWriter, r *http.Request) (report.GetReportRequest, bool) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return report.GetReportRequest{}, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return report.GetReportRequest{}, false
	}

	return report.GetReportRequest{Year: year, Month: month}, true
}
