package repository

import (
	"context"
	"time"

	"lab-supply-ledger/internal/domain/entity"
)

// RequestFilter narrows a joined request listing. Zero values mean "no
// restriction"; the date window is half-open: From <= RequestedOn < Until.
type RequestFilter struct {
	DoctorID uint
	From     time.Time
	Until    time.Time
}

type RequestRepository interface {
	Create(ctx context.Context, request *entity.MaterialRequest) error
	FindAll(ctx context.Context, filter RequestFilter) ([]entity.MaterialRequest, error)
	CountByDoctorID(ctx context.Context, doctorID uint) (int64, error)
}
