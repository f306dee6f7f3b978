package stores

import (
	"context"
	"time"

	"github.com/orgmatch/orgmatch/models"
	"gorm.io/gorm"
)

type SupplyStore struct {
	BaseStore
}

func CreateSupplyStore(db *gorm.DB) *SupplyStore {
	return &SupplyStore{BaseStore: BaseStore{db: db}}
}

func (s *SupplyStore) Create(ctx context.Context, supply *models.Supply) error {
	return s.GetDB(ctx).Create(supply).Error
}

// ListByOrg returns an organisation's own non-deleted supplies, newest
// first, with the category name joined in.
func (s *SupplyStore) ListByOrg(ctx context.Context, orgID uint) ([]models.SupplyListItem, error) {
	var items []models.SupplyListItem
	err := s.GetDB(ctx).
		Table("org_supply s").
		Select(`s.supply_id, s.item_name, c.category_name AS item_category,
			s.item_description, s.price_per_unit, s.currency,
			s.quantity, s.quantity_unit, s.search_radius,
			s.expiry_date, s.supplier_name,
			s.supplier_phone AS supplier_contact,
			s.supplier_email, s.is_active, s.created_at`).
		Joins("LEFT JOIN item_category c ON c.category_id = s.category_id").
		Where("s.org_id = ? AND s.deleted_at IS NULL", orgID).
		Order("s.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetDetail fetches a non-deleted supply joined with its organisation and
// category, without requiring the active flag.
func (s *SupplyStore) GetDetail(ctx context.Context, supplyID uint) (*models.SupplyDetail, error) {
	return s.detail(ctx, "s.supply_id = ? AND s.deleted_at IS NULL", supplyID)
}

// GetActiveDetail is the search-context variant: the supply must also be
// active.
func (s *SupplyStore) GetActiveDetail(ctx context.Context, supplyID uint) (*models.SupplyDetail, error) {
	return s.detail(ctx, "s.supply_id = ? AND s.is_active = TRUE AND s.deleted_at IS NULL", supplyID)
}

func (s *SupplyStore) detail(ctx context.Context, cond string, supplyID uint) (*models.SupplyDetail, error) {
	var detail models.SupplyDetail
	tx := s.GetDB(ctx).
		Table("org_supply s").
		Select(`s.supply_id, s.org_id, s.category_id, s.item_name,
			c.category_name AS item_category,
			s.item_description, s.price_per_unit, s.currency,
			s.quantity, s.quantity_unit, s.search_radius,
			s.expiry_date, s.supplier_name, s.supplier_phone, s.supplier_email,
			s.is_active, s.created_at,
			o.org_name, o.email AS org_email, o.phone_number AS org_phone,
			o.address AS org_address, o.latitude AS org_lat, o.longitude AS org_lng`).
		Joins("JOIN organisation o ON o.org_id = s.org_id").
		Joins("LEFT JOIN item_category c ON c.category_id = s.category_id").
		Where(cond, supplyID).
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

// ListActiveWithOrg returns the candidate set for a demand-side search: all
// active, non-deleted supplies owned by organisations other than the
// querying one.
func (s *SupplyStore) ListActiveWithOrg(ctx context.Context, excludeOrgID uint) ([]models.SupplyWithOrg, error) {
	var rows []models.SupplyWithOrg
	err := s.GetDB(ctx).
		Table("org_supply s").
		Select(`s.supply_id, s.org_id, s.category_id, s.item_name,
			c.category_name AS item_category,
			s.item_description, s.price_per_unit, s.currency,
			s.quantity, s.quantity_unit, s.is_active, s.deleted_at,
			o.org_name, o.email AS org_email, o.phone_number AS org_phone,
			o.address AS org_address, o.latitude, o.longitude`).
		Joins("JOIN organisation o ON o.org_id = s.org_id").
		Joins("LEFT JOIN item_category c ON c.category_id = s.category_id").
		Where("s.is_active = TRUE AND s.deleted_at IS NULL AND s.org_id != ?", excludeOrgID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SoftDelete marks a supply deleted and inactive, scoped to the owning
// organisation. Rows stay in place; they simply drop out of every query.
// Returns the number of rows touched so callers can distinguish a delete
// from a miss.
func (s *SupplyStore) SoftDelete(ctx context.Context, supplyID, orgID uint) (int64, error) {
	now := time.Now()
	tx := s.GetDB(ctx).
		Table("org_supply").
		Where("supply_id = ? AND org_id = ? AND deleted_at IS NULL", supplyID, orgID).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"is_active":  false,
			"updated_at": now,
		})
	return tx.RowsAffected, tx.Error
}
