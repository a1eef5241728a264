package converter

import (
	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/domain/entity"
)

// RequestToResponse converts a MaterialRequest entity, joined with its
// doctor and material, to a MaterialRequestResponse DTO.
func RequestToResponse(request *entity.MaterialRequest) *dto.MaterialRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.MaterialRequestResponse{
		ID:                  request.ID,
		RequestedOn:         request.RequestedOn,
		Quantity:            request.Quantity,
		DoctorID:            request.DoctorID,
		DoctorName:          request.Doctor.Name,
		MaterialID:          request.MaterialID,
		MaterialDescription: request.Material.Description,
		MaterialUnit:        request.Material.Unit,
	}
}

// RequestsToResponses converts a slice of joined MaterialRequest entities
// to a slice of MaterialRequestResponse DTOs.
func RequestsToResponses(requests []entity.MaterialRequest) []dto.MaterialRequestResponse {
	responses := make([]dto.MaterialRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *RequestToResponse(&requests[i])
	}
	return responses
}
