package converter

import (
	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/domain/entity"
)

// MaterialToResponse converts a Material entity to a MaterialResponse DTO
func MaterialToResponse(material *entity.Material) *dto.MaterialResponse {
	if material == nil {
		return nil
	}

	return &dto.MaterialResponse{
		ID:          material.ID,
		Description: material.Description,
		Unit:        material.Unit,
		UnitPrice:   material.UnitPrice,
		CreatedAt:   material.CreatedAt,
		UpdatedAt:   material.UpdatedAt,
	}
}

// MaterialsToResponses converts a slice of Material entities to a slice of MaterialResponse DTOs
func MaterialsToResponses(materials []entity.Material) []dto.MaterialResponse {
	responses := make([]dto.MaterialResponse, len(materials))
	for i := range materials {
		responses[i] = *MaterialToResponse(&materials[i])
	}
	return responses
}
