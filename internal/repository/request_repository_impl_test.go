package repository

import (
	"context"
	"testing"
	"time"

	"lab-supply-ledger/internal/domain/entity"
	domainRepo "lab-supply-ledger/internal/domain/repository"

	"github.com/stretchr/testify/suite"
)

type RequestRepositorySuite struct {
	suite.Suite
	ctx       context.Context
	doctors   domainRepo.DoctorRepository
	materials domainRepo.MaterialRepository
	requests  domainRepo.RequestRepository

	doctor   *entity.Doctor
	material *entity.Material
}

func (s *RequestRepositorySuite) SetupTest() {
	db := newTestDB(s.T())
	s.ctx = context.Background()
	s.doctors = NewDoctorRepository(db)
	s.materials = NewMaterialRepository(db)
	s.requests = NewRequestRepository(db)

	s.doctor = &entity.Doctor{Name: "Dr. Weber"}
	s.Require().NoError(s.doctors.Create(s.ctx, s.doctor))
	s.material = &entity.Material{Description: "Gauze", Unit: "pack of 50"}
	s.Require().NoError(s.materials.Create(s.ctx, s.material))
}

func TestRequestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RequestRepositorySuite))
}

func (s *RequestRepositorySuite) newRequest(quantity int, requestedOn time.Time) *entity.MaterialRequest {
	return &entity.MaterialRequest{
		DoctorID:    s.doctor.ID,
		MaterialID:  s.material.ID,
		Quantity:    quantity,
		RequestedOn: requestedOn,
	}
}

func (s *RequestRepositorySuite) TestQuantityBoundsEnforced() {
	s.Require().ErrorIs(s.requests.Create(s.ctx, s.newRequest(0, time.Time{})), domainRepo.ErrQuantityOutOfRange)
	s.Require().ErrorIs(s.requests.Create(s.ctx, s.newRequest(1001, time.Time{})), domainRepo.ErrQuantityOutOfRange)
	s.Require().NoError(s.requests.Create(s.ctx, s.newRequest(1, time.Time{})))
	s.Require().NoError(s.requests.Create(s.ctx, s.newRequest(1000, time.Time{})))

	all, err := s.requests.FindAll(s.ctx, domainRepo.RequestFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *RequestRepositorySuite) TestUnknownReferencesRejected() {
	err := s.requests.Create(s.ctx, &entity.MaterialRequest{DoctorID: 999, MaterialID: s.material.ID, Quantity: 1})
	s.Require().ErrorIs(err, domainRepo.ErrUnknownDoctor)

	err = s.requests.Create(s.ctx, &entity.MaterialRequest{DoctorID: s.doctor.ID, MaterialID: 999, Quantity: 1})
	s.Require().ErrorIs(err, domainRepo.ErrUnknownMaterial)

	all, err := s.requests.FindAll(s.ctx, domainRepo.RequestFilter{})
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *RequestRepositorySuite) TestZeroRequestedOnDefaultsToNow() {
	before := time.Now().Add(-time.Second)
	request := s.newRequest(5, time.Time{})
	s.Require().NoError(s.requests.Create(s.ctx, request))
	s.False(request.RequestedOn.IsZero())
	s.True(request.RequestedOn.After(before))
}

func (s *RequestRepositorySuite) TestFindAllJoinsDoctorAndMaterial() {
	s.Require().NoError(s.requests.Create(s.ctx, s.newRequest(5, time.Time{})))

	all, err := s.requests.FindAll(s.ctx, domainRepo.RequestFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Dr. Weber", all[0].Doctor.Name)
	s.Equal("Gauze", all[0].Material.Description)
	s.Equal("pack of 50", all[0].Material.Unit)
}

func (s *RequestRepositorySuite) TestDateWindowIsHalfOpen() {
	inside := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	atLowerBound := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	atUpperBound := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.requests.Create(s.ctx, s.newRequest(1, inside)))
	s.Require().NoError(s.requests.Create(s.ctx, s.newRequest(2, atLowerBound)))
	s.Require().NoError(s.requests.Create(s.ctx, s.newRequest(3, atUpperBound)))

	all, err := s.requests.FindAll(s.ctx, domainRepo.RequestFilter{
		From:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	// Lower bound included, upper bound excluded.
	s.Equal(2, all[0].Quantity)
	s.Equal(1, all[1].Quantity)
}

func (s *RequestRepositorySuite) TestDoctorFilter() {
	other := &entity.Doctor{Name: "Dr. Abel"}
	s.Require().NoError(s.doctors.Create(s.ctx, other))

	s.Require().NoError(s.requests.Create(s.ctx, s.newRequest(4, time.Time{})))
	s.Require().NoError(s.requests.Create(s.ctx, &entity.MaterialRequest{
		DoctorID: other.ID, MaterialID: s.material.ID, Quantity: 7,
	}))

	mine, err := s.requests.FindAll(s.ctx, domainRepo.RequestFilter{DoctorID: s.doctor.ID})
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(4, mine[0].Quantity)

	count, err := s.requests.CountByDoctorID(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}
