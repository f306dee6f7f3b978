package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/utils"
)

type DemandWriter interface {
	Create(ctx context.Context, demand *models.Demand) error
	ListByOrg(ctx context.Context, orgID uint) ([]models.DemandListItem, error)
	GetDetail(ctx context.Context, demandID uint) (*models.DemandDetail, error)
	SoftDelete(ctx context.Context, demandID, orgID uint) (int64, error)
}

type DemandService struct {
	store       DemandWriter
	categories  CategoryResolver
	invalidator SearchInvalidator
}

func CreateDemandService(store DemandWriter, categories CategoryResolver, invalidator SearchInvalidator) *DemandService {
	return &DemandService{
		store:       store,
		categories:  categories,
		invalidator: invalidator,
	}
}

func (s *DemandService) Create(ctx context.Context, orgID uint, req *models.CreateDemandRequest) (*models.Demand, error) {
	if strings.TrimSpace(req.ItemName) == "" {
		return nil, utils.ErrItemNameRequired
	}

	categoryID := s.resolveCategory(ctx, req.CategoryID, req.ItemCategory)

	demand := &models.Demand{
		OrgID:           orgID,
		CategoryID:      categoryID,
		ItemName:        strings.TrimSpace(req.ItemName),
		ItemDescription: req.ItemDescription,
		MaxPricePerUnit: req.MaxPricePerUnit,
		Currency:        req.Currency,
		Quantity:        req.Quantity,
		QuantityUnit:    req.QuantityUnit,
		SearchRadius:    req.SearchRadius,
		ExpiryDate:      req.ExpiryDate,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		IsActive:        true,
	}
	if demand.Currency == "" {
		demand.Currency = "INR"
	}
	if demand.QuantityUnit == "" {
		demand.QuantityUnit = "unit"
	}
	if demand.SearchRadius <= 0 {
		demand.SearchRadius = DefaultSearchRadius
	}

	if err := s.store.Create(ctx, demand); err != nil {
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return demand, nil
}

func (s *DemandService) List(ctx context.Context, orgID uint) ([]models.DemandListItem, error) {
	items, err := s.store.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return items, nil
}

func (s *DemandService) Get(ctx context.Context, demandID uint) (*models.DemandDetail, error) {
	detail, err := s.store.GetDetail(ctx, demandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDemandNotFound
		}
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return detail, nil
}

func (s *DemandService) Delete(ctx context.Context, demandID, orgID uint) error {
	affected, err := s.store.SoftDelete(ctx, demandID, orgID)
	if err != nil {
		return utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	if affected == 0 {
		return utils.ErrDemandNotFound
	}

	s.invalidator.InvalidateDemand(ctx, demandID)
	return nil
}

func (s *DemandService) resolveCategory(ctx context.Context, categoryID uint, categoryName string) uint {
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
