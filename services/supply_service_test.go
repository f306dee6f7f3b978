package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/utils"
)

type fakeSupplyWriter struct {
	created    *models.Supply
	createErr  error
	deleteRows int64
	deleteErr  error
}

func (f *fakeSupplyWriter) Create(ctx context.Context, supply *models.Supply) error {
	if f.createErr != nil {
		return f.createErr
	}
	supply.SupplyID = 42
	f.created = supply
	return nil
}

func (f *fakeSupplyWriter) ListByOrg(ctx context.Context, orgID uint) ([]models.SupplyListItem, error) {
	return nil, nil
}

func (f *fakeSupplyWriter) GetDetail(ctx context.Context, supplyID uint) (*models.SupplyDetail, error) {
	return nil, nil
}

func (f *fakeSupplyWriter) SoftDelete(ctx context.Context, supplyID, orgID uint) (int64, error) {
	return f.deleteRows, f.deleteErr
}

type fakeCategoryResolver struct {
	upsertID   uint
	upsertErr  error
	defaultErr error
	upserts    []string
}

func (f *fakeCategoryResolver) Upsert(ctx context.Context, name string) (uint, error) {
	f.upserts = append(f.upserts, name)
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	return f.upsertID, nil
}

func (f *fakeCategoryResolver) EnsureDefault(ctx context.Context) (uint, error) {
	if f.defaultErr != nil {
		return 0, f.defaultErr
	}
	return models.DefaultCategoryID, nil
}

type fakeInvalidator struct {
	supplyIDs []uint
	demandIDs []uint
}

func (f *fakeInvalidator) InvalidateSupply(ctx context.Context, supplyID uint) {
	f.supplyIDs = append(f.supplyIDs, supplyID)
}

func (f *fakeInvalidator) InvalidateDemand(ctx context.Context, demandID uint) {
	f.demandIDs = append(f.demandIDs, demandID)
}

func TestSupplyService_CreateDefaults(t *testing.T) {
	store := &fakeSupplyWriter{}
	service := CreateSupplyService(store, &fakeCategoryResolver{upsertID: 5}, &fakeInvalidator{})

	supply, err := service.Create(context.Background(), 7, &models.CreateSupplyRequest{
		ItemName:        "Rice",
		SupplierContact: "+91-9000000001",
	})
	require.NoError(t, err)

	assert.Equal(t, "INR", supply.Currency)
	assert.Equal(t, "unit", supply.QuantityUnit)
	assert.Equal(t, DefaultSearchRadius, supply.SearchRadius)
	assert.Equal(t, uint(7), supply.OrgID)
	assert.Equal(t, "+91-9000000001", supply.SupplierPhone)
	assert.True(t, supply.IsActive)
	assert.Equal(t, models.DefaultCategoryID, supply.CategoryID)
}

func TestSupplyService_CreateRequiresItemName(t *testing.T) {
	service := CreateSupplyService(&fakeSupplyWriter{}, &fakeCategoryResolver{}, &fakeInvalidator{})

	_, err := service.Create(context.Background(), 7, &models.CreateSupplyRequest{ItemName: "   "})
	assert.ErrorIs(t, err, utils.ErrItemNameRequired)
}

func TestSupplyService_CategoryResolution(t *testing.T) {
	t.Run("Explicit id wins", func(t *testing.T) {
		categories := &fakeCategoryResolver{upsertID: 5}
		service := CreateSupplyService(&fakeSupplyWriter{}, categories, &fakeInvalidator{})

		supply, err := service.Create(context.Background(), 7, &models.CreateSupplyRequest{
			ItemName:     "Rice",
			CategoryID:   9,
			ItemCategory: "Grains",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(9), supply.CategoryID)
		assert.Empty(t, categories.upserts, "name must not be upserted when an id is given")
	})

	t.Run("Name is upserted", func(t *testing.T) {
		categories := &fakeCategoryResolver{upsertID: 5}
		service := CreateSupplyService(&fakeSupplyWriter{}, categories, &fakeInvalidator{})

		supply, err := service.Create(context.Background(), 7, &models.CreateSupplyRequest{
			ItemName:     "Rice",
			ItemCategory: "Grains",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), supply.CategoryID)
		assert.Equal(t, []string{"Grains"}, categories.upserts)
	})

	t.Run("Upsert failure falls back to default", func(t *testing.T) {
		categories := &fakeCategoryResolver{upsertErr: errors.New("db down")}
		service := CreateSupplyService(&fakeSupplyWriter{}, categories, &fakeInvalidator{})

		supply, err := service.Create(context.Background(), 7, &models.CreateSupplyRequest{
			ItemName:     "Rice",
			ItemCategory: "Grains",
		})
		require.NoError(t, err, "category trouble must not block the listing")
		assert.Equal(t, models.DefaultCategoryID, supply.CategoryID)
	})
}

func TestSupplyService_DeleteInvalidatesCache(t *testing.T) {
	invalidator := &fakeInvalidator{}
	service := CreateSupplyService(&fakeSupplyWriter{deleteRows: 1}, &fakeCategoryResolver{}, invalidator)

	err := service.Delete(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Equal(t, []uint{42}, invalidator.supplyIDs)
}

func TestSupplyService_DeleteMissRowIsNotFound(t *testing.T) {
	invalidator := &fakeInvalidator{}
	service := CreateSupplyService(&fakeSupplyWriter{deleteRows: 0}, &fakeCategoryResolver{}, invalidator)

	err := service.Delete(context.Background(), 42, 7)
	assert.ErrorIs(t, err, utils.ErrSupplyNotFound)
	assert.Empty(t, invalidator.supplyIDs, "a miss must not invalidate the cache")
}
