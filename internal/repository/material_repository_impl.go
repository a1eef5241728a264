package repository

import (
	"context"
	"errors"

	"lab-supply-ledger/internal/domain/entity"
	domainRepo "lab-supply-ledger/internal/domain/repository"

	"gorm.io/gorm"
)

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) domainRepo.MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) FindByID(ctx context.Context, id uint) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) FindAll(ctx context.Context) ([]entity.Material, error) {
	var materials []entity.Material
	if err := r.db.WithContext(ctx).Order("description ASC").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) Update(ctx context.Context, material *entity.Material) error {
	return r.db.WithContext(ctx).Save(material).Error
}
