package repository

import (
	"context"
	"time"

	"lab-supply-ledger/internal/domain/entity"
	domainRepo "lab-supply-ledger/internal/domain/repository"

	"gorm.io/gorm"
)

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) domainRepo.RequestRepository {
	return &requestRepository{db: db}
}

// Create validates the quantity bounds and both foreign keys before
// inserting, all inside one transaction, so a failed request leaves the
// ledger untouched. A zero RequestedOn defaults to the moment of creation.
func (r *requestRepository) Create(ctx context.Context, request *entity.MaterialRequest) error {
	if request.Quantity < entity.MinRequestQuantity || request.Quantity > entity.MaxRequestQuantity {
		return domainRepo.ErrQuantityOutOfRange
	}
	if request.RequestedOn.IsZero() {
		request.RequestedOn = time.Now()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.Doctor{}).Where("id = ?", request.DoctorID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domainRepo.ErrUnknownDoctor
		}
		if err := tx.Model(&entity.Material{}).Where("id = ?", request.MaterialID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domainRepo.ErrUnknownMaterial
		}
		return tx.Create(request).Error
	})
}

func (r *requestRepository) FindAll(ctx context.Context, filter domainRepo.RequestFilter) ([]entity.MaterialRequest, error) {
	query := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Material").
		Model(&entity.MaterialRequest{})

	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if !filter.From.IsZero() {
		query = query.Where("requested_on >= ?", filter.From)
	}
	if !filter.Until.IsZero() {
		query = query.Where("requested_on < ?", filter.Until)
	}

	var requests []entity.MaterialRequest
	if err := query.Order("requested_on ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) CountByDoctorID(ctx context.Context, doctorID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.MaterialRequest{}).Where("doctor_id = ?", doctorID).Count(&total).Error
	return total, err
}
