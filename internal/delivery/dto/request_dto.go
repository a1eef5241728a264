package dto

import "time"

// Request DTOs

type SubmitRequestRequest struct {
	DoctorID   uint `json:"doctor_id" validate:"required"`
	MaterialID uint `json:"material_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,gte=1,lte=1000"`
}

// ListRequestsQuery narrows the joined request listing. All fields are
// optional; From and To are calendar dates (YYYY-MM-DD, To inclusive).
type ListRequestsQuery struct {
	From     string `json:"from"`
	To       string `json:"to"`
	DoctorID uint   `json:"doctor_id"`
}

// Response DTOs

// MaterialRequestResponse is the joined view of one ledger entry: the
// request itself plus the doctor and material it references.
type MaterialRequestResponse struct {
	ID                  uint      `json:"id"`
	RequestedOn         time.Time `json:"requested_on"`
	Quantity            int       `json:"quantity"`
	DoctorID            uint      `json:"doctor_id"`
	DoctorName          string    `json:"doctor_name"`
	MaterialID          uint      `json:"material_id"`
	MaterialDescription string    `json:"material_description"`
	MaterialUnit        string    `json:"material_unit"`
}

type MaterialRequestListResponse struct {
	Requests []MaterialRequestResponse `json:"requests"`
	Total    int                       `json:"total"`
}
