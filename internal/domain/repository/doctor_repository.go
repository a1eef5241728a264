package repository

import (
	"context"

	"lab-supply-ledger/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uint) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Delete(ctx context.Context, id uint) error
}
