package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/utils"
)

type SupplyWriter interface {
	Create(ctx context.Context, supply *models.Supply) error
	ListByOrg(ctx context.Context, orgID uint) ([]models.SupplyListItem, error)
	GetDetail(ctx context.Context, supplyID uint) (*models.SupplyDetail, error)
	SoftDelete(ctx context.Context, supplyID, orgID uint) (int64, error)
}

type CategoryResolver interface {
	Upsert(ctx context.Context, name string) (uint, error)
	EnsureDefault(ctx context.Context) (uint, error)
}

// SearchInvalidator drops cached search results when the underlying listing
// changes. SearchService satisfies it.
type SearchInvalidator interface {
	InvalidateSupply(ctx context.Context, supplyID uint)
	InvalidateDemand(ctx context.Context, demandID uint)
}

type SupplyService struct {
	store       SupplyWriter
	categories  CategoryResolver
	invalidator SearchInvalidator
}

func CreateSupplyService(store SupplyWriter, categories CategoryResolver, invalidator SearchInvalidator) *SupplyService {
	return &SupplyService{
		store:       store,
		categories:  categories,
		invalidator: invalidator,
	}
}

func (s *SupplyService) Create(ctx context.Context, orgID uint, req *models.CreateSupplyRequest) (*models.Supply, error) {
	if strings.TrimSpace(req.ItemName) == "" {
		return nil, utils.ErrItemNameRequired
	}

	categoryID := s.resolveCategory(ctx, req.CategoryID, req.ItemCategory)

	supply := &models.Supply{
		OrgID:           orgID,
		CategoryID:      categoryID,
		ItemName:        strings.TrimSpace(req.ItemName),
		ItemDescription: req.ItemDescription,
		PricePerUnit:    req.PricePerUnit,
		Currency:        req.Currency,
		Quantity:        req.Quantity,
		QuantityUnit:    req.QuantityUnit,
		SearchRadius:    req.SearchRadius,
		ExpiryDate:      req.ExpiryDate,
		SupplierName:    req.SupplierName,
		SupplierPhone:   req.SupplierContact,
		SupplierEmail:   req.SupplierEmail,
		IsActive:        true,
	}
	if supply.Currency == "" {
		supply.Currency = "INR"
	}
	if supply.QuantityUnit == "" {
		supply.QuantityUnit = "unit"
	}
	if supply.SearchRadius <= 0 {
		supply.SearchRadius = DefaultSearchRadius
	}

	if err := s.store.Create(ctx, supply); err != nil {
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return supply, nil
}

func (s *SupplyService) List(ctx context.Context, orgID uint) ([]models.SupplyListItem, error) {
	items, err := s.store.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return items, nil
}

func (s *SupplyService) Get(ctx context.Context, supplyID uint) (*models.SupplyDetail, error) {
	detail, err := s.store.GetDetail(ctx, supplyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrSupplyNotFound
		}
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return detail, nil
}

// Delete soft-deletes a supply owned by the caller and drops its cached
// search so a stale result cannot outlive the listing.
func (s *SupplyService) Delete(ctx context.Context, supplyID, orgID uint) error {
	affected, err := s.store.SoftDelete(ctx, supplyID, orgID)
	if err != nil {
		return utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	if affected == 0 {
		return utils.ErrSupplyNotFound
	}

	s.invalidator.InvalidateSupply(ctx, supplyID)
	return nil
}

// resolveCategory turns the request's category id or free-text name into a
// category id, falling back to the default category when resolution fails.
func (s *SupplyService) resolveCategory(ctx context.Context, categoryID uint, categoryName string) uint {
	if categoryID != 0 {
		return categoryID
	}

	if name := strings.TrimSpace(categoryName); name != "" {
		id, err := s.categories.Upsert(ctx, name)
		if err == nil {
			return id
		}
		utils.LogError(ctx, err, "category upsert failed, using default", map[string]interface{}{
			"category_name": name,
		})
	}

	id, err := s.categories.EnsureDefault(ctx)
	if err != nil {
		utils.LogError(ctx, err, "default category ensure failed", nil)
		return models.DefaultCategoryID
	}
	return id
}
