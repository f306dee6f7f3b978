package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orgmatch/orgmatch/cache"
	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/monitoring"
	"github.com/orgmatch/orgmatch/providers"
	"github.com/orgmatch/orgmatch/utils"
)

const (
	// Cached search results live for exactly one hour.
	cacheTTL = 3600 * time.Second

	// DefaultSearchRadius applies when neither the request nor the listing
	// carries a radius.
	DefaultSearchRadius = 50.0
)

// SupplyCacheKey is keyed by the supply id alone. A radius override changes
// the computation but not the key, so an override result overwrites the
// default-radius entry and is served to subsequent default-radius reads
// until it expires or is invalidated.
func SupplyCacheKey(supplyID uint) string {
	return fmt.Sprintf("search:supply:%d", supplyID)
}

func DemandCacheKey(demandID uint) string {
	return fmt.Sprintf("search:demand:%d", demandID)
}

// ResultCache is the cache surface the search path needs.
type ResultCache interface {
	Lookup(ctx context.Context, key string) (string, cache.LookupResult, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type SearchOptions struct {
	// ForceRefresh skips the cache read. The fresh result still overwrites
	// the cached entry.
	ForceRefresh bool

	// RadiusOverride replaces the listing's stored radius when positive.
	RadiusOverride float64
}

// SearchService orchestrates a search: cache read, candidate fetch, worker
// call, response composition, cache write. Concurrent searches for the same
// listing may each call the worker; the last write wins and that is
// acceptable because every computation is equally fresh.
type SearchService struct {
	fetcher *Fetcher
	matcher providers.MatchProvider
	cache   ResultCache
}

func CreateSearchService(fetcher *Fetcher, matcher providers.MatchProvider, resultCache ResultCache) *SearchService {
	return &SearchService{
		fetcher: fetcher,
		matcher: matcher,
		cache:   resultCache,
	}
}

func (s *SearchService) SearchSupply(ctx context.Context, supplyID uint, opts SearchOptions) (*models.SearchResponse, error) {
	start := time.Now()
	key := SupplyCacheKey(supplyID)

	if !opts.ForceRefresh {
		var cached models.SearchResponse
		if s.loadCached(ctx, "supply", key, &cached) {
			cached.Cached = true
			cached.CacheExpiresInSeconds = s.remainingTTL(ctx, key)
			monitoring.RecordSearch("supply", "cache", time.Since(start))
			return &cached, nil
		}
	} else {
		monitoring.RecordCacheMiss("supply")
	}

	supply, err := s.fetcher.SupplyContext(ctx, supplyID)
	if err != nil {
		return nil, err
	}

	radius := effectiveRadius(opts.RadiusOverride, supply.SearchRadius)

	candidates, err := s.fetcher.DemandCandidates(ctx, supply.OrgID)
	if err != nil {
		return nil, err
	}

	matchReq := buildSupplyMatchRequest(supply, radius, candidates)

	workerStart := time.Now()
	matchResp, err := s.matcher.MatchSupplyToDemands(ctx, matchReq)
	monitoring.RecordWorkerRequest("supply", err, time.Since(workerStart))
	if err != nil {
		utils.LogError(ctx, err, "supply match failed", map[string]interface{}{
			"supply_id": supplyID,
		})
		return nil, err
	}

	response := &models.SearchResponse{
		SupplyID:       supply.SupplyID,
		SupplyOrgName:  supply.OrgName,
		SupplyOrgLat:   supply.OrgLat,
		SupplyOrgLng:   supply.OrgLng,
		TotalResults:   matchResp.TotalResults,
		SearchRadiusKm: radius,
		Cached:         false,
		Results:        matchResp.Results,
		SearchedAt:     time.Now().UTC(),
	}

	s.writeCache(ctx, key, response)
	monitoring.RecordSearch("supply", "fresh", time.Since(start))
	return response, nil
}

func (s *SearchService) SearchDemand(ctx context.Context, demandID uint, opts SearchOptions) (*models.DemandSearchResponse, error) {
	start := time.Now()
	key := DemandCacheKey(demandID)

	if !opts.ForceRefresh {
		var cached models.DemandSearchResponse
		if s.loadCached(ctx, "demand", key, &cached) {
			cached.Cached = true
			cached.CacheExpiresInSeconds = s.remainingTTL(ctx, key)
			monitoring.RecordSearch("demand", "cache", time.Since(start))
			return &cached, nil
		}
	} else {
		monitoring.RecordCacheMiss("demand")
	}

	demand, err := s.fetcher.DemandContext(ctx, demandID)
	if err != nil {
		return nil, err
	}

	radius := effectiveRadius(opts.RadiusOverride, demand.SearchRadius)

	candidates, err := s.fetcher.SupplyCandidates(ctx, demand.OrgID)
	if err != nil {
		return nil, err
	}

	matchReq := buildDemandMatchRequest(demand, radius, candidates)

	workerStart := time.Now()
	matchResp, err := s.matcher.MatchDemandToSupplies(ctx, matchReq)
	monitoring.RecordWorkerRequest("demand", err, time.Since(workerStart))
	if err != nil {
		utils.LogError(ctx, err, "demand match failed", map[string]interface{}{
			"demand_id": demandID,
		})
		return nil, err
	}

	response := &models.DemandSearchResponse{
		DemandID:       demand.DemandID,
		DemandOrgName:  demand.OrgName,
		DemandOrgLat:   demand.OrgLat,
		DemandOrgLng:   demand.OrgLng,
		TotalResults:   matchResp.TotalResults,
		SearchRadiusKm: radius,
		Cached:         false,
		Results:        matchResp.Results,
		SearchedAt:     time.Now().UTC(),
	}

	s.writeCache(ctx, key, response)
	monitoring.RecordSearch("demand", "fresh", time.Since(start))
	return response, nil
}

// InvalidateSupply drops the cached search for a supply. Deleting a missing
// key is a no-op, and a failed delete is logged but never surfaced: the
// entry expires on its own within the TTL.
func (s *SearchService) InvalidateSupply(ctx context.Context, supplyID uint) {
	s.invalidate(ctx, "supply", SupplyCacheKey(supplyID))
}

func (s *SearchService) InvalidateDemand(ctx context.Context, demandID uint) {
	s.invalidate(ctx, "demand", DemandCacheKey(demandID))
}

func (s *SearchService) invalidate(ctx context.Context, side, key string) {
	monitoring.RecordCacheInvalidation(side)
	if err := s.cache.Delete(ctx, key); err != nil {
		utils.LogError(ctx, err, "cache invalidation failed", map[string]interface{}{
			"key": key,
		})
	}
}

// loadCached reads and decodes a cached response into out, reporting whether
// it can be served. Unavailability, a missing entry and a corrupt entry all
// send the caller to the fresh path.
func (s *SearchService) loadCached(ctx context.Context, side, key string, out interface{}) bool {
	payload, result, err := s.cache.Lookup(ctx, key)
	switch result {
	case cache.Hit:
		if err := json.Unmarshal([]byte(payload), out); err != nil {
			utils.LogError(ctx, err, "corrupt cache entry", map[string]interface{}{
				"key": key,
			})
			monitoring.RecordCacheMiss(side)
			return false
		}
		monitoring.RecordCacheHit(side)
		return true
	case cache.Unavailable:
		utils.LogError(ctx, err, "cache unavailable", map[string]interface{}{
			"key": key,
		})
	}
	monitoring.RecordCacheMiss(side)
	return false
}

// writeCache stores a fresh response. Failures are logged and swallowed;
// the caller already has the result in hand.
func (s *SearchService) writeCache(ctx context.Context, key string, response interface{}) {
	payload, err := json.Marshal(response)
	if err != nil {
		utils.LogError(ctx, err, "failed to encode cache entry", map[string]interface{}{
			"key": key,
		})
		return
	}
	if err := s.cache.SetWithTTL(ctx, key, string(payload), cacheTTL); err != nil {
		utils.LogError(ctx, err, "cache write failed", map[string]interface{}{
			"key": key,
		})
	}
}

// remainingTTL annotates a cache hit with its remaining lifetime. A failed
// TTL read leaves the annotation null rather than failing the request.
func (s *SearchService) remainingTTL(ctx context.Context, key string) *int64 {
	ttl, err := s.cache.TTL(ctx, key)
	if err != nil || ttl <= 0 {
		return nil
	}
	seconds := int64(ttl.Seconds())
	return &seconds
}

func effectiveRadius(override, stored float64) float64 {
	if override > 0 {
		return override
	}
	if stored > 0 {
		return stored
	}
	return DefaultSearchRadius
}

func buildSupplyMatchRequest(supply *models.SupplyDetail, radius float64, candidates []models.DemandWithOrg) *models.SupplyMatchRequest {
	req := &models.SupplyMatchRequest{
		Supply: models.WorkerSupply{
			SupplyID:        supply.SupplyID,
			OrgID:           supply.OrgID,
			ItemName:        supply.ItemName,
			ItemCategory:    supply.ItemCategory,
			CategoryID:      supply.CategoryID,
			ItemDescription: supply.ItemDescription,
			PricePerUnit:    supply.PricePerUnit,
			Currency:        supply.Currency,
			Quantity:        supply.Quantity,
			QuantityUnit:    supply.QuantityUnit,
			SearchRadius:    supply.SearchRadius,
		},
		SupplyOrg: models.WorkerOrg{
			OrgID:       supply.OrgID,
			OrgName:     supply.OrgName,
			Email:       supply.OrgEmail,
			PhoneNumber: supply.OrgPhone,
			Address:     supply.OrgAddress,
			Latitude:    supply.OrgLat,
			Longitude:   supply.OrgLng,
		},
		SearchRadius: radius,
		Candidates:   make([]models.DemandCandidate, 0, len(candidates)),
	}

	for _, c := range candidates {
		req.Candidates = append(req.Candidates, models.DemandCandidate{
			Demand: models.WorkerDemand{
				DemandID:        c.DemandID,
				OrgID:           c.OrgID,
				ItemName:        c.ItemName,
				ItemCategory:    c.ItemCategory,
				CategoryID:      c.CategoryID,
				ItemDescription: c.ItemDescription,
				MaxPricePerUnit: c.MaxPricePerUnit,
				Currency:        c.Currency,
				Quantity:        c.Quantity,
				QuantityUnit:    c.QuantityUnit,
			},
			Org: models.WorkerOrg{
				OrgID:       c.OrgID,
				OrgName:     c.OrgName,
				Email:       c.OrgEmail,
				PhoneNumber: c.OrgPhone,
				Address:     c.OrgAddress,
				Latitude:    c.Latitude,
				Longitude:   c.Longitude,
			},
		})
	}
	return req
}

func buildDemandMatchRequest(demand *models.DemandDetail, radius float64, candidates []models.SupplyWithOrg) *models.DemandMatchRequest {
	req := &models.DemandMatchRequest{
		Demand: models.WorkerDemand{
			DemandID:        demand.DemandID,
			OrgID:           demand.OrgID,
			ItemName:        demand.ItemName,
			ItemCategory:    demand.ItemCategory,
			CategoryID:      demand.CategoryID,
			ItemDescription: demand.ItemDescription,
			MaxPricePerUnit: demand.MaxPricePerUnit,
			Currency:        demand.Currency,
			Quantity:        demand.Quantity,
			QuantityUnit:    demand.QuantityUnit,
		},
		DemandOrg: models.WorkerOrg{
			OrgID:       demand.OrgID,
			OrgName:     demand.OrgName,
			Email:       demand.OrgEmail,
			PhoneNumber: demand.OrgPhone,
			Address:     demand.OrgAddress,
			Latitude:    demand.OrgLat,
			Longitude:   demand.OrgLng,
		},
		SearchRadius: radius,
		Candidates:   make([]models.SupplyCandidate, 0, len(candidates)),
	}

	for _, c := range candidates {
		req.Candidates = append(req.Candidates, models.SupplyCandidate{
			Supply: models.WorkerSupply{
				SupplyID:        c.SupplyID,
				OrgID:           c.OrgID,
				ItemName:        c.ItemName,
				ItemCategory:    c.ItemCategory,
				CategoryID:      c.CategoryID,
				ItemDescription: c.ItemDescription,
				PricePerUnit:    c.PricePerUnit,
				Currency:        c.Currency,
				Quantity:        c.Quantity,
				QuantityUnit:    c.QuantityUnit,
			},
			Org: models.WorkerOrg{
				OrgID:       c.OrgID,
				OrgName:     c.OrgName,
				Email:       c.OrgEmail,
				PhoneNumber: c.OrgPhone,
				Address:     c.OrgAddress,
				Latitude:    c.Latitude,
				Longitude:   c.Longitude,
			},
		})
	}
	return req
}
