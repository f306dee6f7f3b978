package testing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/orgmatch/orgmatch/models"
)

func MockSupplyDetail() *models.SupplyDetail {
	return &models.SupplyDetail{
		SupplyID:        42,
		OrgID:           7,
		CategoryID:      3,
		ItemName:        "Rice 25kg bags",
		ItemCategory:    "Grains",
		ItemDescription: "Parboiled rice, sealed bags",
		PricePerUnit:    1200,
		Currency:        "INR",
		Quantity:        500,
		QuantityUnit:    "bag",
		SearchRadius:    50,
		SupplierName:    "Asha Traders",
		SupplierPhone:   "+91-9000000001",
		SupplierEmail:   "asha@example.org",
		IsActive:        true,
		CreatedAt:       time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		OrgName:         "Asha Relief Trust",
		OrgEmail:        "contact@asha.example.org",
		OrgPhone:        "+91-9000000000",
		OrgAddress:      "12 MG Road, Pune",
		OrgLat:          18.5204,
		OrgLng:          73.8567,
	}
}

func MockDemandDetail() *models.DemandDetail {
	return &models.DemandDetail{
		DemandID:        91,
		OrgID:           12,
		CategoryID:      3,
		ItemName:        "Rice",
		ItemCategory:    "Grains",
		MaxPricePerUnit: 1500,
		Currency:        "INR",
		Quantity:        200,
		QuantityUnit:    "bag",
		SearchRadius:    75,
		ContactName:     "R. Mehta",
		ContactPhone:    "+91-9000000011",
		ContactEmail:    "mehta@example.org",
		IsActive:        true,
		CreatedAt:       time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		OrgName:         "Seva Kitchen",
		OrgEmail:        "hello@seva.example.org",
		OrgPhone:        "+91-9000000010",
		OrgAddress:      "4 FC Road, Pune",
		OrgLat:          18.5293,
		OrgLng:          73.8434,
	}
}

func MockDemandWithOrg(demandID, orgID uint) models.DemandWithOrg {
	return models.DemandWithOrg{
		DemandID:        demandID,
		OrgID:           orgID,
		CategoryID:      3,
		ItemName:        "Rice",
		ItemCategory:    "Grains",
		MaxPricePerUnit: 1500,
		Currency:        "INR",
		Quantity:        100,
		QuantityUnit:    "bag",
		IsActive:        true,
		OrgName:         "Candidate Org",
		OrgEmail:        "candidate@example.org",
		Latitude:        18.51,
		Longitude:       73.85,
	}
}

func MockSupplyWithOrg(supplyID, orgID uint) models.SupplyWithOrg {
	return models.SupplyWithOrg{
		SupplyID:     supplyID,
		OrgID:        orgID,
		CategoryID:   3,
		ItemName:     "Rice 25kg bags",
		ItemCategory: "Grains",
		PricePerUnit: 1200,
		Currency:     "INR",
		Quantity:     50,
		QuantityUnit: "bag",
		IsActive:     true,
		OrgName:      "Candidate Org",
		OrgEmail:     "candidate@example.org",
		Latitude:     18.51,
		Longitude:    73.85,
	}
}

func MockMatchResponse(total int) *models.MatchResponse {
	results, _ := json.Marshal([]map[string]interface{}{
		{"demand_id": 91, "score": 0.92, "distance_km": 3.4},
		{"demand_id": 93, "score": 0.78, "distance_km": 11.2},
	})
	return &models.MatchResponse{
		TotalResults: total,
		Results:      results,
		ComputedAt:   "2025-03-01T10:00:00Z",
	}
}

func MockContext() context.Context {
	return context.Background()
}

func MockContextWithTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
