package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/usecase"
	"lab-supply-ledger/pkg/response"
	"lab-supply-ledger/pkg/validator"
)

type RequestHandler struct {
	requestUsecase usecase.RequestUsecase
	validator      *validator.CustomValidator
}

func NewRequestHandler(requestUsecase usecase.RequestUsecase, validator *validator.CustomValidator) *RequestHandler {
	return &RequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

// Submit handles recording a new material request
// @Summary Submit a material request
// @Description Record that a doctor requested a quantity of a material
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestRequest true "Submit Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.requestUsecase.Submit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrQuantityOutOfRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrMaterialNotFound:
			response.NotFound(w, "Material not found")
		default:
			response.InternalServerError(w, "Failed to submit request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Request submitted successfully", request)
}

// GetAll handles the joined request listing
// @Summary Get all material requests
// @Description Get material requests joined with doctor and material, optionally filtered
// @Tags Requests
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date, inclusive (YYYY-MM-DD)"
// @Param doctor_id query int false "Restrict to one doctor"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	doctorID, _ := strconv.ParseUint(r.URL.Query().Get("doctor_id"), 10, 32)
	query := &dto.ListRequestsQuery{
		From:     r.URL.Query().Get("from"),
		To:       r.URL.Query().Get("to"),
		DoctorID: uint(doctorID),
	}

	requests, err := h.requestUsecase.GetAll(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrInvalidReportDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get requests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Requests retrieved successfully", requests)
}
