package usecase

import (
	"context"
	"testing"
	"time"

	"lab-supply-ledger/internal/delivery/dto"
	"lab-supply-ledger/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestFixture(t *testing.T) (RequestUsecase, testRepos, *entity.Doctor, *entity.Material) {
	t.Helper()

	repos := newTestRepos(t)
	ctx := context.Background()

	doctor := &entity.Doctor{Name: "Dr. Weber"}
	require.NoError(t, repos.doctors.Create(ctx, doctor))

	material := &entity.Material{Description: "Gauze", Unit: "pack of 50", UnitPrice: decimal.NewFromFloat(4.90)}
	require.NoError(t, repos.materials.Create(ctx, material))

	uc := NewRequestUsecase(newTestLogger(), repos.doctors, repos.materials, repos.requests)
	return uc, repos, doctor, material
}

func TestSubmitRecordsRequest(t *testing.T) {
	uc, _, doctor, material := newRequestFixture(t)

	before := time.Now().Add(-time.Second)
	resp, err := uc.Submit(context.Background(), &dto.SubmitRequestRequest{
		DoctorID:   doctor.ID,
		MaterialID: material.ID,
		Quantity:   5,
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, 5, resp.Quantity)
	assert.Equal(t, "Dr. Weber", resp.DoctorName)
	assert.Equal(t, "Gauze", resp.MaterialDescription)
	assert.Equal(t, "pack of 50", resp.MaterialUnit)
	// The request date is set at submission time, never by the caller.
	assert.True(t, resp.RequestedOn.After(before))
	assert.True(t, resp.RequestedOn.Before(time.Now().Add(time.Second)))
}

func TestSubmitQuantityBounds(t *testing.T) {
	uc, _, doctor, material := newRequestFixture(t)
	ctx := context.Background()

	for _, quantity := range []int{-1, 0, 1001, 5000} {
		_, err := uc.Submit(ctx, &dto.SubmitRequestRequest{
			DoctorID:   doctor.ID,
			MaterialID: material.ID,
			Quantity:   quantity,
		})
		assert.ErrorIs(t, err, ErrQuantityOutOfRange, "quantity %d", quantity)
	}

	for _, quantity := range []int{1, 1000} {
		_, err := uc.Submit(ctx, &dto.SubmitRequestRequest{
			DoctorID:   doctor.ID,
			MaterialID: material.ID,
			Quantity:   quantity,
		})
		assert.NoError(t, err, "quantity %d", quantity)
	}
}

func TestSubmitRejectsUnknownReferences(t *testing.T) {
	uc, _, doctor, material := newRequestFixture(t)
	ctx := context.Background()

	_, err := uc.Submit(ctx, &dto.SubmitRequestRequest{DoctorID: 999, MaterialID: material.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = uc.Submit(ctx, &dto.SubmitRequestRequest{DoctorID: doctor.ID, MaterialID: 999, Quantity: 1})
	assert.ErrorIs(t, err, ErrMaterialNotFound)

	// Nothing may be persisted by a failed submit.
	all, err := uc.GetAll(ctx, &dto.ListRequestsQuery{})
	require.NoError(t, err)
	assert.Zero(t, all.Total)
}

func TestSubmitVisibleToListing(t *testing.T) {
	uc, _, doctor, material := newRequestFixture(t)
	ctx := context.Background()

	_, err := uc.Submit(ctx, &dto.SubmitRequestRequest{DoctorID: doctor.ID, MaterialID: material.ID, Quantity: 3})
	require.NoError(t, err)

	all, err := uc.GetAll(ctx, &dto.ListRequestsQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, all.Total)
	assert.Equal(t, 3, all.Requests[0].Quantity)

	filtered, err := uc.GetAll(ctx, &dto.ListRequestsQuery{DoctorID: doctor.ID + 1})
	require.NoError(t, err)
	assert.Zero(t, filtered.Total)
}

func TestGetAllRejectsMalformedDates(t *testing.T) {
	uc, _, _, _ := newRequestFixture(t)

	_, err := uc.GetAll(context.Background(), &dto.ListRequestsQuery{From: "03/01/2026"})
	assert.ErrorIs(t, err, ErrInvalidReportDate)
}
