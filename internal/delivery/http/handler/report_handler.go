package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/service"
	"lab-supply-ledger/internal/usecase"
	"lab-supply-ledger/pkg/response"
	"lab-supply-ledger/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// GetUsage handles the aggregated usage report
// @Summary Get usage report
// @Description Sum requested quantities per material within a date window
// @Tags Reports
// @Produce json
// @Param from query string true "From date (YYYY-MM-DD)"
// @Param to query string true "To date, inclusive (YYYY-MM-DD)"
// @Param doctor_id query int false "Restrict to one doctor (0 = all)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports/usage [get]
func (h *ReportHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	report, err := h.reportUsecase.Summarize(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrInvalidReportDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report built successfully", report)
}

// ExportUsage handles exporting the usage report to a spreadsheet
// @Summary Export usage report
// @Description Build the usage report and write it to a timestamped xlsx file
// @Tags Reports
// @Produce json
// @Param from query string true "From date (YYYY-MM-DD)"
// @Param to query string true "To date, inclusive (YYYY-MM-DD)"
// @Param doctor_id query int false "Restrict to one doctor (0 = all)"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /reports/usage/export [post]
func (h *ReportHandler) ExportUsage(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	result, err := h.reportUsecase.Export(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidReportDate):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, service.ErrNothingToExport):
			response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to export report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report exported successfully", result)
}

func (h *ReportHandler) parseQuery(w http.ResponseWriter, r *http.Request) (*dto.UsageReportQuery, bool) {
	doctorID, _ := strconv.ParseUint(r.URL.Query().Get("doctor_id"), 10, 32)
	query := &dto.UsageReportQuery{
		From:     r.URL.Query().Get("from"),
		To:       r.URL.Query().Get("to"),
		DoctorID: uint(doctorID),
	}

	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return query, true
}
