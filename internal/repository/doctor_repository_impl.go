package repository

import (
	"context"
	"errors"
	"strings"

	"lab-supply-ledger/internal/domain/entity"
	domainRepo "lab-supply-ledger/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	err := r.db.WithContext(ctx).Create(doctor).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domainRepo.ErrDuplicateDoctorName
		}
		return err
	}
	return nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// Delete refuses to remove a doctor that is still referenced by any
// material request. The check and the delete run in one transaction so
// a request committed in between cannot orphan itself.
func (r *doctorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var referencing int64
		if err := tx.Model(&entity.MaterialRequest{}).Where("doctor_id = ?", id).Count(&referencing).Error; err != nil {
			return err
		}
		if referencing > 0 {
			return domainRepo.ErrDoctorReferenced
		}
		return tx.Where("id = ?", id).Delete(&entity.Doctor{}).Error
	})
}

// isUniqueViolation matches both gorm's translated error and the raw
// SQLite constraint message, since the pure-Go driver does not always
// translate.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
