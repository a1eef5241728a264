package repository

import (
	"context"
	"testing"

	"lab-supply-ledger/internal/domain/entity"
	domainRepo "lab-supply-ledger/internal/domain/repository"

	"github.com/stretchr/testify/suite"
)

type DoctorRepositorySuite struct {
	suite.Suite
	ctx       context.Context
	doctors   domainRepo.DoctorRepository
	materials domainRepo.MaterialRepository
	requests  domainRepo.RequestRepository
}

func (s *DoctorRepositorySuite) SetupTest() {
	db := newTestDB(s.T())
	s.ctx = context.Background()
	s.doctors = NewDoctorRepository(db)
	s.materials = NewMaterialRepository(db)
	s.requests = NewRequestRepository(db)
}

func TestDoctorRepositorySuite(t *testing.T) {
	suite.Run(t, new(DoctorRepositorySuite))
}

func (s *DoctorRepositorySuite) TestCreateAssignsID() {
	doctor := &entity.Doctor{Name: "Dr. Weber", PracticeAddress: "Hauptstr. 1"}
	s.Require().NoError(s.doctors.Create(s.ctx, doctor))
	s.NotZero(doctor.ID)

	found, err := s.doctors.FindByID(s.ctx, doctor.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("Dr. Weber", found.Name)
	s.Equal("Hauptstr. 1", found.PracticeAddress)
}

func (s *DoctorRepositorySuite) TestDuplicateNameRejected() {
	s.Require().NoError(s.doctors.Create(s.ctx, &entity.Doctor{Name: "Dr. Weber"}))

	err := s.doctors.Create(s.ctx, &entity.Doctor{Name: "Dr. Weber"})
	s.Require().ErrorIs(err, domainRepo.ErrDuplicateDoctorName)

	// The failed create must leave the store unchanged.
	doctors, err := s.doctors.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(doctors, 1)
}

func (s *DoctorRepositorySuite) TestDuplicateCheckIsCaseSensitive() {
	s.Require().NoError(s.doctors.Create(s.ctx, &entity.Doctor{Name: "Dr. Weber"}))
	s.Require().NoError(s.doctors.Create(s.ctx, &entity.Doctor{Name: "dr. weber"}))

	doctors, err := s.doctors.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(doctors, 2)
}

func (s *DoctorRepositorySuite) TestDeleteReferencedDoctorFails() {
	doctor := &entity.Doctor{Name: "Dr. Weber"}
	s.Require().NoError(s.doctors.Create(s.ctx, doctor))

	material := &entity.Material{Description: "Gauze", Unit: "pack of 50"}
	s.Require().NoError(s.materials.Create(s.ctx, material))

	s.Require().NoError(s.requests.Create(s.ctx, &entity.MaterialRequest{
		DoctorID:   doctor.ID,
		MaterialID: material.ID,
		Quantity:   3,
	}))

	err := s.doctors.Delete(s.ctx, doctor.ID)
	s.Require().ErrorIs(err, domainRepo.ErrDoctorReferenced)

	found, err := s.doctors.FindByID(s.ctx, doctor.ID)
	s.Require().NoError(err)
	s.NotNil(found)
}

func (s *DoctorRepositorySuite) TestDeleteUnreferencedDoctor() {
	doctor := &entity.Doctor{Name: "Dr. Weber"}
	s.Require().NoError(s.doctors.Create(s.ctx, doctor))

	s.Require().NoError(s.doctors.Delete(s.ctx, doctor.ID))

	found, err := s.doctors.FindByID(s.ctx, doctor.ID)
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *DoctorRepositorySuite) TestFindAllSortedByName() {
	s.Require().NoError(s.doctors.Create(s.ctx, &entity.Doctor{Name: "Dr. Zimmer"}))
	s.Require().NoError(s.doctors.Create(s.ctx, &entity.Doctor{Name: "Dr. Abel"}))

	doctors, err := s.doctors.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(doctors, 2)
	s.Equal("Dr. Abel", doctors[0].Name)
	s.Equal("Dr. Zimmer", doctors[1].Name)
}
