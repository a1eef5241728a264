package converter

import (
	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		PracticeAddress: doctor.PracticeAddress,
		CreatedAt:       doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to a slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = dto.DoctorResponse{
			ID:              doctor.ID,
			Name:            doctor.Name,
			PracticeAddress: doctor.PracticeAddress,
			CreatedAt:       doctor.CreatedAt,
		}
	}
	return responses
}
