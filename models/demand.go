package models

import (
	"time"
)

// Demand mirrors Supply with a maximum acceptable price instead of a unit
// price. The same soft-delete invariant applies.
type Demand struct {
	DemandID        uint       `json:"demand_id" gorm:"column:demand_id;primaryKey;autoIncrement"`
	OrgID           uint       `json:"org_id" gorm:"not null;index"`
	CategoryID      uint       `json:"category_id" gorm:"index"`
	ItemName        string     `json:"item_name" gorm:"not null"`
	ItemDescription string     `json:"item_description"`
	MaxPricePerUnit float64    `json:"max_price_per_unit"`
	Currency        string     `json:"currency" gorm:"default:'INR'"`
	Quantity        float64    `json:"quantity"`
	QuantityUnit    string     `json:"quantity_unit" gorm:"default:'unit'"`
	SearchRadius    float64    `json:"search_radius" gorm:"default:50"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	ContactName     string     `json:"contact_name"`
	ContactPhone    string     `json:"contact_phone"`
	ContactEmail    string     `json:"contact_email"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	DeletedAt       *time.Time `json:"deleted_at" gorm:"index"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Demand) TableName() string {
	return "org_demand"
}

type CreateDemandRequest struct {
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category,omitempty"`
	CategoryID      uint       `json:"category_id,omitempty"`
	ItemDescription string     `json:"item_description,omitempty"`
	MaxPricePerUnit float64    `json:"max_price_per_unit,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	Quantity        float64    `json:"quantity,omitempty"`
	QuantityUnit    string     `json:"quantity_unit,omitempty"`
	SearchRadius    float64    `json:"search_radius,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	ContactName     string     `json:"contact_name,omitempty"`
	ContactPhone    string     `json:"contact_phone,omitempty"`
	ContactEmail    string     `json:"contact_email,omitempty"`
}

type DemandListItem struct {
	DemandID        uint       `json:"demand_id"`
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category"`
	ItemDescription string     `json:"item_description"`
	MaxPricePerUnit float64    `json:"max_price_per_unit"`
	Currency        string     `json:"currency"`
	Quantity        float64    `json:"quantity"`
	QuantityUnit    string     `json:"quantity_unit"`
	SearchRadius    float64    `json:"search_radius"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	ContactName     string     `json:"contact_name"`
	ContactPhone    string     `json:"contact_phone"`
	ContactEmail    string     `json:"contact_email"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
}

type DemandDetail struct {
	DemandID        uint       `json:"demand_id"`
	OrgID           uint       `json:"org_id"`
	CategoryID      uint       `json:"category_id"`
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category"`
	ItemDescription string     `json:"item_description"`
	MaxPricePerUnit float64    `json:"max_price_per_unit"`
	Currency        string     `json:"currency"`
	Quantity        float64    `json:"quantity"`
	QuantityUnit    string     `json:"quantity_unit"`
	SearchRadius    float64    `json:"search_radius"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	ContactName     string     `json:"contact_name"`
	ContactPhone    string     `json:"contact_phone"`
	ContactEmail    string     `json:"contact_email"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	OrgName         string     `json:"org_name"`
	OrgEmail        string     `json:"org_email"`
	OrgPhone        string     `json:"org_phone"`
	OrgAddress      string     `json:"org_address"`
	OrgLat          float64    `json:"org_lat"`
	OrgLng          float64    `json:"org_lng"`
}

// DemandWithOrg is a candidate demand row for a supply-side search.
type DemandWithOrg struct {
	DemandID        uint       `json:"demand_id"`
	OrgID           uint       `json:"org_id"`
	CategoryID      uint       `json:"category_id"`
	ItemName        string     `json:"item_name"`
	ItemCategory    string     `json:"item_category"`
	ItemDescription string     `json:"item_description"`
	MaxPricePerUnit float64    `json:"max_price_per_unit"`
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
