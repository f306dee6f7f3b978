package models

import (
	"encoding/json"
)

// Wire types for the external matching worker. Field names follow the
// worker's contract exactly; the worker owns the scoring algorithm, this
// side only assembles payloads and passes results through.

type WorkerOrg struct {
	OrgID       uint    `json:"org_id"`
	OrgName     string  `json:"org_name"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	Address     string  `json:"address,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type WorkerSupply struct {
	SupplyID        uint    `json:"supply_id"`
	OrgID           uint    `json:"org_id"`
	ItemName        string  `json:"item_name"`
	ItemCategory    string  `json:"item_category,omitempty"`
	CategoryID      uint    `json:"category_id,omitempty"`
	ItemDescription string  `json:"item_description,omitempty"`
	PricePerUnit    float64 `json:"price_per_unit,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	Quantity        float64 `json:"quantity,omitempty"`
	QuantityUnit    string  `json:"quantity_unit,omitempty"`
	SearchRadius    float64 `json:"search_radius,omitempty"`
}

type WorkerDemand struct {
	DemandID        uint    `json:"demand_id"`
	OrgID           uint    `json:"org_id"`
	ItemName        string  `json:"item_name"`
	ItemCategory    string  `json:"item_category,omitempty"`
	CategoryID      uint    `json:"category_id,omitempty"`
	ItemDescription string  `json:"item_description,omitempty"`
	MaxPricePerUnit float64 `json:"max_price_per_unit,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	Quantity        float64 `json:"quantity,omitempty"`
	QuantityUnit    string  `json:"quantity_unit,omitempty"`
}

type DemandCandidate struct {
	Demand WorkerDemand `json:"demand"`
	Org    WorkerOrg    `json:"org"`
}

type SupplyCandidate struct {
	Supply WorkerSupply `json:"supply"`
	Org    WorkerOrg    `json:"org"`
}

// SupplyMatchRequest is the payload for POST /match/supply-to-demands.
type SupplyMatchRequest struct {
	Supply       WorkerSupply      `json:"supply"`
	SupplyOrg    WorkerOrg         `json:"supply_org"`
	SearchRadius float64           `json:"search_radius"`
	Candidates   []DemandCandidate `json:"candidates"`
}

// DemandMatchRequest is the payload for POST /match/demand-to-supplies.
type DemandMatchRequest struct {
	Demand       WorkerDemand      `json:"demand"`
	DemandOrg    WorkerOrg         `json:"demand_org"`
	SearchRadius float64           `json:"search_radius"`
	Candidates   []SupplyCandidate `json:"candidates"`
}

// MatchResponse is the worker's scored result set. Results stays raw: the
// ranked list is returned to callers byte-for-byte, never re-sorted or
// filtered on this side.
type MatchResponse struct {
	TotalResults int             `json:"total_results"`
	Results      json.RawMessage `json:"results"`
	ComputedAt   string          `json:"computed_at,omitempty"`
}
