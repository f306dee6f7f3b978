package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/utils"
)

type fakeDemandWriter struct {
	created    *models.Demand
	deleteRows int64
}

func (f *fakeDemandWriter) Create(ctx context.Context, demand *models.Demand) error {
	demand.DemandID = 91
	f.created = demand
	return nil
}

func (f *fakeDemandWriter) ListByOrg(ctx context.Context, orgID uint) ([]models.DemandListItem, error) {
	return nil, nil
}

func (f *fakeDemandWriter) GetDetail(ctx context.Context, demandID uint) (*models.DemandDetail, error) {
	return nil, nil
}

func (f *fakeDemandWriter) SoftDelete(ctx context.Context, demandID, orgID uint) (int64, error) {
	return f.deleteRows, nil
}

func TestDemandService_CreateDefaults(t *testing.T) {
	service := CreateDemandService(&fakeDemandWriter{}, &fakeCategoryResolver{upsertID: 5}, &fakeInvalidator{})

	demand, err := service.Create(context.Background(), 12, &models.CreateDemandRequest{
		ItemName: "Rice",
	})
	require.NoError(t, err)

	assert.Equal(t, "INR", demand.Currency)
	assert.Equal(t, "unit", demand.QuantityUnit)
	assert.Equal(t, DefaultSearchRadius, demand.SearchRadius)
	assert.Equal(t, uint(12), demand.OrgID)
}

func TestDemandService_CreateRequiresItemName(t *testing.T) {
	service := CreateDemandService(&fakeDemandWriter{}, &fakeCategoryResolver{}, &fakeInvalidator{})

	_, err := service.Create(context.Background(), 12, &models.CreateDemandRequest{})
	assert.ErrorIs(t, err, utils.ErrItemNameRequired)
}

func TestDemandService_DeleteInvalidatesCache(t *testing.T) {
	invalidator := &fakeInvalidator{}
	service := CreateDemandService(&fakeDemandWriter{deleteRows: 1}, &fakeCategoryResolver{}, invalidator)

	require.NoError(t, service.Delete(context.Background(), 91, 12))
	assert.Equal(t, []uint{91}, invalidator.demandIDs)
}

func TestDemandService_DeleteMissRowIsNotFound(t *testing.T) {
	service := CreateDemandService(&fakeDemandWriter{deleteRows: 0}, &fakeCategoryResolver{}, &fakeInvalidator{})

	err := service.Delete(context.Background(), 91, 12)
	assert.ErrorIs(t, err, utils.ErrDemandNotFound)
}
