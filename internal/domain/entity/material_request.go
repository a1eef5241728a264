package entity

import "time"

// Quantity bounds accepted for a single material request.
const (
	MinRequestQuantity = 1
	MaxRequestQuantity = 1000
)

// MaterialRequest is one immutable ledger entry: a doctor requested a
// quantity of a catalogue material on a date. Requests are append-only;
// there is no update or delete path through ordinary operations.
type MaterialRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequestedOn time.Time `gorm:"not null;index" json:"requested_on"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	DoctorID    uint      `gorm:"not null;index" json:"doctor_id"`
	MaterialID  uint      `gorm:"not null;index" json:"material_id"`

	// Relationships
	Doctor   Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Material Material `gorm:"foreignKey:MaterialID" json:"material,omitempty"`
}

func (MaterialRequest) TableName() string {
	return "material_requests"
}
