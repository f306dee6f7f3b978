package stores

import (
	"context"
	"time"

	"github.com/orgmatch/orgmatch/models"
	"gorm.io/gorm"
)

type DemandStore struct {
	BaseStore
}

func CreateDemandStore(db *gorm.DB) *DemandStore {
	return &DemandStore{BaseStore: BaseStore{db: db}}
}

func (s *DemandStore) Create(ctx context.Context, demand *models.Demand) error {
	return s.GetDB(ctx).Create(demand).Error
}

func (s *DemandStore) ListByOrg(ctx context.Context, orgID uint) ([]models.DemandListItem, error) {
	var items []models.DemandListItem
	err := s.GetDB(ctx).
		Table("org_demand d").
		Select(`d.demand_id, d.item_name, c.category_name AS item_category,
			d.item_description, d.max_price_per_unit, d.currency,
			d.quantity, d.quantity_unit, d.search_radius,
			d.expiry_date, d.contact_name, d.contact_phone, d.contact_email,
			d.is_active, d.created_at`).
		Joins("LEFT JOIN item_category c ON c.category_id = d.category_id").
		Where("d.org_id = ? AND d.deleted_at IS NULL", orgID).
		Order("d.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *DemandStore) GetDetail(ctx context.Context, demandID uint) (*models.DemandDetail, error) {
	return s.detail(ctx, "d.demand_id = ? AND d.deleted_at IS NULL", demandID)
}

func (s *DemandStore) GetActiveDetail(ctx context.Context, demandID uint) (*models.DemandDetail, error) {
	return s.detail(ctx, "d.demand_id = ? AND d.is_active = TRUE AND d.deleted_at IS NULL", demandID)
}

func (s *DemandStore) detail(ctx context.Context, cond string, demandID uint) (*models.DemandDetail, error) {
	var detail models.DemandDetail
	tx := s.GetDB(ctx).
		Table("org_demand d").
		Select(`d.demand_id, d.org_id, d.category_id, d.item_name,
			c.category_name AS item_category,
			d.item_description, d.max_price_per_unit, d.currency,
			d.quantity, d.quantity_unit, d.search_radius,
			d.expiry_date, d.contact_name, d.contact_phone, d.contact_email,
			d.is_active, d.created_at,
			o.org_name, o.email AS org_email, o.phone_number AS org_phone,
			o.address AS org_address, o.latitude AS org_lat, o.longitude AS org_lng`).
		Joins("JOIN organisation o ON o.org_id = d.org_id").
		Joins("LEFT JOIN item_category c ON c.category_id = d.category_id").
		Where(cond, demandID).
		Limit(1).
		Scan(&detail)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

// ListActiveWithOrg returns the candidate set for a supply-side search: all
// active, non-deleted demands owned by other organisations.
func (s *DemandStore) ListActiveWithOrg(ctx context.Context, excludeOrgID uint) ([]models.DemandWithOrg, error) {
	var rows []models.DemandWithOrg
	err := s.GetDB(ctx).
		Table("org_demand d").
		Select(`d.demand_id, d.org_id, d.category_id, d.item_name,
			c.category_name AS item_category,
			d.item_description, d.max_price_per_unit, d.currency,
			d.quantity, d.quantity_unit, d.is_active, d.deleted_at,
			o.org_name, o.email AS org_email, o.phone_number AS org_phone,
			o.address AS org_address, o.latitude, o.longitude`).
		Joins("JOIN organisation o ON o.org_id = d.org_id").
		Joins("LEFT JOIN item_category c ON c.category_id = d.category_id").
		Where("d.is_active = TRUE AND d.deleted_at IS NULL AND d.org_id != ?", excludeOrgID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *DemandStore) SoftDelete(ctx context.Context, demandID, orgID uint) (int64, error) {
	now := time.Now()
	tx := s.GetDB(ctx).
		Table("org_demand").
		Where("demand_id = ? AND org_id = ? AND deleted_at IS NULL", demandID, orgID).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"is_active":  false,
			"updated_at": now,
		})
	return tx.RowsAffected, tx.Error
}
