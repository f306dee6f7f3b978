package models

import (
	"time"
)

// Supply is an organisation's offer to provide a quantity of a categorized
// item. Rows are never hard-deleted: DeletedAt marks a soft delete and a row
// with DeletedAt set is excluded from every fetch and candidate set even if
// IsActive is still true.
type Supply struct {
	SupplyID        uint       `json:"supply_id" gorm:"column:supply_id;primaryKey;autoIncrement"`
	OrgID           uint       `json:"org_id" gorm:"not null;index"`
	CategoryID      uint       `json:"category_id" gorm:"index"`
	ItemName        string     `json:"item_name" gorm:"not null"`
	ItemDescription string     `json:"item_description"`
	PricePerUnit    float64    `json:"price_per_unit"`
	Currency        string     `json:"currency" gorm:"default:'INR'"`
	Quantity        float64    `json:"quantity"`
	QuantityUnit    string     `json:"quantity_unit" gorm:"default:'unit'"`
	SearchRadius    float64    `json:"search_radius" gorm:"default:50"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	SupplierName    string     `json:"supplier_name"`
	SupplierPhone   string     `json:"supplier_phone"`
	SupplierEmail   string     `json:"supplier_email"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	DeletedAt       *time.Time `json:"deleted_at" gorm:"index"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Supply) TableName() string {
	return "org_supply"
}

// CreateSupplyRequest carries the listing form. Clients may send either a
// category id or a free-text category name; supplier_contact maps onto the
// supplier_phone column.
type CreateSupplyRequest struct {
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category,omitempty"`
	CategoryID      uint       `json:"category_id,omitempty"`
	ItemDescription string     `json:"item_description,omitempty"`
	PricePerUnit    float64    `json:"price_per_unit,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	Quantity        float64    `json:"quantity,omitempty"`
	QuantityUnit    string     `json:"quantity_unit,omitempty"`
	SearchRadius    float64    `json:"search_radius,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	SupplierName    string     `json:"supplier_name,omitempty"`
	SupplierContact string     `json:"supplier_contact,omitempty"`
	SupplierEmail   string     `json:"supplier_email,omitempty"`
}

type CreateListingResponse struct {
	Message  string `json:"message"`
	SupplyID uint   `json:"supply_id,omitempty"`
	DemandID uint   `json:"demand_id,omitempty"`
}

// SupplyListItem is one row of an organisation's own listing overview,
// joined with the category name.
type SupplyListItem struct {
	SupplyID        uint       `json:"supply_id"`
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category"`
	ItemDescription string     `json:"item_description"`
	PricePerUnit    float64    `json:"price_per_unit"`
	Currency        string     `json:"currency"`
	Quantity        float64    `json:"quantity"`
	QuantityUnit    string     `json:"quantity_unit"`
	SearchRadius    float64    `json:"search_radius"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	SupplierName    string     `json:"supplier_name"`
	SupplierContact string     `json:"supplier_contact"`
	SupplierEmail   string     `json:"supplier_email"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SupplyDetail is a supply joined with its category and owning organisation,
// the unit the orchestrator works with.
type SupplyDetail struct {
	SupplyID        uint       `json:"supply_id"`
	OrgID           uint       `json:"org_id"`
	CategoryID      uint       `json:"category_id"`
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category"`
	ItemDescription string     `json:"item_description"`
	PricePerUnit    float64    `json:"price_per_unit"`
	Currency        string     `json:"currency"`
	Quantity        float64    `json:"quantity"`
	QuantityUnit    string     `json:"quantity_unit"`
	SearchRadius    float64    `json:"search_radius"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	SupplierName    string     `json:"supplier_name"`
	SupplierPhone   string     `json:"supplier_phone"`
	SupplierEmail   string     `json:"supplier_email"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	OrgName         string     `json:"org_name"`
	OrgEmail        string     `json:"org_email"`
	OrgPhone        string     `json:"org_phone"`
	OrgAddress      string     `json:"org_address"`
	OrgLat          float64    `json:"org_lat"`
	OrgLng          float64    `json:"org_lng"`
}

// SupplyWithOrg is a candidate supply row for a demand-side search: the
// supply plus its owning organisation's identity and coordinates.
type SupplyWithOrg struct {
	SupplyID        uint       `json:"supply_id"`
	OrgID           uint       `json:"org_id"`
	CategoryID      uint       `json:"category_id"`
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category"`
	ItemDescription string     `json:"item_description"`
	PricePerUnit    float64    `json:"price_per_unit"`
	Currency        string     `json:"currency"`
	Quantity        float64    `json:"quantity"`
	QuantityUnit    string     `json:"quantity_unit"`
	IsActive        bool       `json:"is_active"`
	DeletedAt       *time.Time `json:"deleted_at"`
	OrgName         string     `json:"org_name"`
	OrgEmail        string     `json:"org_email"`
	OrgPhone        string     `json:"org_phone"`
	OrgAddress      string     `json:"org_address"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
}
