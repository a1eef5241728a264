package usecase

import (
	"context"
	"errors"
	"time"

	"lab-supply-ledger/internal/converter"
	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/domain/entity"
	"lab-supply-ledger/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and 1000")
)

type RequestUsecase interface {
	Submit(ctx context.Context, req *dto.SubmitRequestRequest) (*dto.MaterialRequestResponse, error)
	GetAll(ctx context.Context, query *dto.ListRequestsQuery) (*dto.MaterialRequestListResponse, error)
}

type requestUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	materialRepo repository.MaterialRepository
	requestRepo  repository.RequestRepository
}

func NewRequestUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	materialRepo repository.MaterialRepository,
	requestRepo repository.RequestRepository,
) RequestUsecase {
	return &requestUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		materialRepo: materialRepo,
		requestRepo:  requestRepo,
	}
}

// Submit records a new material request. The quantity bounds and both
// references are checked before the store write; the request date is
// always the moment of submission, never caller-supplied.
func (u *requestUsecase) Submit(ctx context.Context, req *dto.SubmitRequestRequest) (*dto.MaterialRequestResponse, error) {
	if req.Quantity < entity.MinRequestQuantity || req.Quantity > entity.MaxRequestQuantity {
		return nil, ErrQuantityOutOfRange
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	material, err := u.materialRepo.FindByID(ctx, req.MaterialID)
	if err != nil {
		u.log.Warnf("Failed to find material %d: %+v", req.MaterialID, err)
		return nil, err
	}
	if material == nil {
		return nil, ErrMaterialNotFound
	}

	request := &entity.MaterialRequest{
		RequestedOn: time.Now(),
		Quantity:    req.Quantity,
		DoctorID:    doctor.ID,
		MaterialID:  material.ID,
	}

	if err := u.requestRepo.Create(ctx, request); err != nil {
		u.log.Warnf("Failed to create material request: %+v", err)
		return nil, err
	}

	request.Doctor = *doctor
	request.Material = *material
	return converter.RequestToResponse(request), nil
}

func (u *requestUsecase) GetAll(ctx context.Context, query *dto.ListRequestsQuery) (*dto.MaterialRequestListResponse, error) {
	filter := repository.RequestFilter{DoctorID: query.DoctorID}

	if query.From != "" {
		from, err := parseDay(query.From)
		if err != nil {
			return nil, err
		}
		filter.From = from
	}
	if query.To != "" {
		to, err := parseDay(query.To)
		if err != nil {
			return nil, err
		}
		// To names a calendar day; include all of it.
		filter.Until = to.AddDate(0, 0, 1)
	}

	requests, err := u.requestRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list material requests: %+v", err)
		return nil, err
	}

	return &dto.MaterialRequestListResponse{
		Requests: converter.RequestsToResponses(requests),
		Total:    len(requests),
	}, nil
}
