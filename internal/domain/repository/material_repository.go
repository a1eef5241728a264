package repository

import (
	"context"

	"lab-supply-ledger/internal/domain/entity"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	FindByID(ctx context.Context, id uint) (*entity.Material, error)
	FindAll(ctx context.Context) ([]entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
}
