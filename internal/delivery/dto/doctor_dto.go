package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=255"`
	PracticeAddress string `json:"practice_address" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	PracticeAddress string    `json:"practice_address,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
