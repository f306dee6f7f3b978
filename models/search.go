package models

import (
	"encoding/json"
	"time"
)

// SearchResponse is the composed result of a supply-to-demands search,
// identical in shape whether freshly computed or served from cache. On the
// cached path SearchedAt keeps the original execution timestamp and
// CacheExpiresInSeconds carries the remaining cache lifetime; both
// CacheExpiresInSeconds and Cached are rewritten at read time, everything
// else round-trips through the cache untouched.
type SearchResponse struct {
	SupplyID              uint            `json:"supply_id"`
	SupplyOrgName         string          `json:"supply_org_name"`
	SupplyOrgLat          float64         `json:"supply_org_lat"`
	SupplyOrgLng          float64         `json:"supply_org_lng"`
	TotalResults          int             `json:"total_results"`
	SearchRadiusKm        float64         `json:"search_radius_km"`
	Cached                bool            `json:"cached"`
	CacheExpiresInSeconds *int64          `json:"cache_expires_in_seconds"`
	Results               json.RawMessage `json:"results"`
	SearchedAt            time.Time       `json:"searched_at"`
}

// DemandSearchResponse mirrors SearchResponse for demand-to-supplies
// searches.
type DemandSearchResponse struct {
	DemandID              uint            `json:"demand_id"`
	DemandOrgName         string          `json:"demand_org_name"`
	DemandOrgLat          float64         `json:"demand_org_lat"`
	DemandOrgLng          float64         `json:"demand_org_lng"`
	TotalResults          int             `json:"total_results"`
	SearchRadiusKm        float64         `json:"search_radius_km"`
	Cached                bool            `json:"cached"`
	CacheExpiresInSeconds *int64          `json:"cache_expires_in_seconds"`
	Results               json.RawMessage `json:"results"`
	SearchedAt            time.Time       `json:"searched_at"`
}
