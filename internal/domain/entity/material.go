package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is one catalogue item of laboratory supplies. Unit is the
// human-readable packaging unit ("pack of 50", "bottle 500ml").
type Material struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Unit        string          `gorm:"type:varchar(100);not null" json:"unit"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Material) TableName() string {
	return "materials"
}
