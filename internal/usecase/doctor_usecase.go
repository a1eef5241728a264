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
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDuplicateDoctorName = errors.New("a doctor with this name already exists")
	ErrDoctorReferenced    = errors.New("doctor still has material requests and cannot be deleted")
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context) (*dto.DoctorListResponse, error)
	Delete(ctx context.Context, id uint) error
}

type doctorUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	requestRepo repository.RequestRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, requestRepo repository.RequestRepository) DoctorUsecase {
	return &doctorUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		requestRepo: requestRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:            req.Name,
		PracticeAddress: req.PracticeAddress,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateDoctorName) {
			return nil, ErrDuplicateDoctorName
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uint) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	// Checked here before the store write; the store re-checks inside
	// its own transaction.
	referencing, err := u.requestRepo.CountByDoctorID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count requests for doctor %d: %+v", id, err)
		return err
	}
	if referencing > 0 {
		return ErrDoctorReferenced
	}

	if err := u.doctorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDoctorReferenced) {
			return ErrDoctorReferenced
		}
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}
	return nil
}
