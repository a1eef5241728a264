package usecase

import (
	"context"
	"errors"

	"lab-supply-ledger/internal/converter"
	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/domain/entity"
	"lab-supply-ledger/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrMaterialNotFound = errors.New("material not found")
)

type MaterialUsecase interface {
	Create(ctx context.Context, req *dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
	GetAll(ctx context.Context) (*dto.MaterialListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateMaterialRequest) (*dto.MaterialResponse, error)
}

type materialUsecase struct {
	log          *logrus.Logger
	materialRepo repository.MaterialRepository
}

func NewMaterialUsecase(log *logrus.Logger, materialRepo repository.MaterialRepository) MaterialUsecase {
	return &materialUsecase{
		log:          log,
		materialRepo: materialRepo,
	}
}

func (u *materialUsecase) Create(ctx context.Context, req *dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	material := &entity.Material{
		Description: req.Description,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
	}

	if err := u.materialRepo.Create(ctx, material); err != nil {
		u.log.Warnf("Failed to create material: %+v", err)
		return nil, err
	}

	return converter.MaterialToResponse(material), nil
}

func (u *materialUsecase) GetAll(ctx context.Context) (*dto.MaterialListResponse, error) {
	materials, err := u.materialRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list materials: %+v", err)
		return nil, err
	}

	return &dto.MaterialListResponse{
		Materials: converter.MaterialsToResponses(materials),
		Total:     len(materials),
	}, nil
}

func (u *materialUsecase) Update(ctx context.Context, id uint, req *dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := u.materialRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find material %d: %+v", id, err)
		return nil, err
	}
	if material == nil {
		return nil, ErrMaterialNotFound
	}

	material.Description = req.Description
	material.Unit = req.Unit
	material.UnitPrice = req.UnitPrice

	if err := u.materialRepo.Update(ctx, material); err != nil {
		u.log.Warnf("Failed to update material %d: %+v", id, err)
		return nil, err
	}

	return converter.MaterialToResponse(material), nil
}
