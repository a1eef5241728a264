package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/usecase"
	"lab-supply-ledger/pkg/response"
	"lab-supply-ledger/pkg/validator"

	"github.com/gorilla/mux"
)

type MaterialHandler struct {
	materialUsecase usecase.MaterialUsecase
	validator       *validator.CustomValidator
}

func NewMaterialHandler(materialUsecase usecase.MaterialUsecase, validator *validator.CustomValidator) *MaterialHandler {
	return &MaterialHandler{
		materialUsecase: materialUsecase,
		validator:       validator,
	}
}

// Create handles adding a catalogue material
// @Summary Add a material
// @Description Add a new material to the supply catalogue
// @Tags Materials
// @Accept json
// @Produce json
// @Param request body dto.CreateMaterialRequest true "Create Material Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /materials [post]
func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	material, err := h.materialUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create material")
		return
	}

	response.Success(w, http.StatusCreated, "Material created successfully", material)
}

// GetAll handles listing the catalogue
// @Summary Get all materials
// @Description Get the full supply catalogue
// @Tags Materials
// @Produce json
// @Success 200 {object} response.Response
// @Router /materials [get]
func (h *MaterialHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	materials, err := h.materialUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get materials")
		return
	}

	response.Success(w, http.StatusOK, "Materials retrieved successfully", materials)
}

// Update handles editing a catalogue material
// @Summary Update a material
// @Description Update a catalogue material by its ID
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body dto.UpdateMaterialRequest true "Update Material Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /materials/{id} [put]
func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid material ID", nil)
		return
	}

	var req dto.UpdateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	material, err := h.materialUsecase.Update(r.Context(), uint(id), &req)
	if err != nil {
		switch err {
		case usecase.ErrMaterialNotFound:
			response.NotFound(w, "Material not found")
		default:
			response.InternalServerError(w, "Failed to update material")
		}
		return
	}

	response.Success(w, http.StatusOK, "Material updated successfully", material)
}
