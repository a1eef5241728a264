package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMaterialRequest struct {
	Description string          `json:"description" validate:"required,min=2"`
	Unit        string          `json:"unit" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type UpdateMaterialRequest struct {
	Description string          `json:"description" validate:"required,min=2"`
	Unit        string          `json:"unit" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Response DTOs

type MaterialResponse struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
	Total     int                `json:"total"`
}
