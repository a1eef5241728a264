package dto

// UsageReportQuery carries the raw query parameters for a usage report.
// From and To are calendar dates (YYYY-MM-DD); To is inclusive of its
// entire day. DoctorID zero selects every doctor.
type UsageReportQuery struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	DoctorID uint   `json:"doctor_id"`
}

// UsageReportRow is one aggregated line: a material description and the
// summed quantity requested within the window.
type UsageReportRow struct {
	Material string `json:"material"`
	Total    int    `json:"total"`
}

type UsageReportResponse struct {
	From     string           `json:"from"`
	To       string           `json:"to"`
	DoctorID uint             `json:"doctor_id,omitempty"`
	Rows     []UsageReportRow `json:"rows"`
}

type ExportReportResponse struct {
	File string `json:"file"`
}
