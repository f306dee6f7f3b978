package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/utils"
)

// SupplyReader is the slice of the supply store the fetcher needs.
type SupplyReader interface {
	GetActiveDetail(ctx context.Context, supplyID uint) (*models.SupplyDetail, error)
	ListActiveWithOrg(ctx context.Context, excludeOrgID uint) ([]models.SupplyWithOrg, error)
}

type DemandReader interface {
	GetActiveDetail(ctx context.Context, demandID uint) (*models.DemandDetail, error)
	ListActiveWithOrg(ctx context.Context, excludeOrgID uint) ([]models.DemandWithOrg, error)
}

// Fetcher loads the context listing and candidate set for a search. The
// candidate queries already filter in SQL; the fetcher re-checks every row
// anyway so the exclusion rules hold regardless of where the rows came from.
type Fetcher struct {
	supplies SupplyReader
	demands  DemandReader
}

func CreateFetcher(supplies SupplyReader, demands DemandReader) *Fetcher {
	return &Fetcher{
		supplies: supplies,
		demands:  demands,
	}
}

// SupplyContext loads the active supply a search runs for. A missing,
// inactive or soft-deleted supply is a not-found, never an empty result.
func (f *Fetcher) SupplyContext(ctx context.Context, supplyID uint) (*models.SupplyDetail, error) {
	detail, err := f.supplies.GetActiveDetail(ctx, supplyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrSupplyNotFound
		}
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return detail, nil
}

func (f *Fetcher) DemandContext(ctx context.Context, demandID uint) (*models.DemandDetail, error) {
	detail, err := f.demands.GetActiveDetail(ctx, demandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDemandNotFound
		}
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return detail, nil
}

// DemandCandidates returns every demand eligible to be matched against a
// supply owned by ownerOrgID. The owner's own listings never appear.
func (f *Fetcher) DemandCandidates(ctx context.Context, ownerOrgID uint) ([]models.DemandWithOrg, error) {
	rows, err := f.demands.ListActiveWithOrg(ctx, ownerOrgID)
	if err != nil {
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}

	candidates := make([]models.DemandWithOrg, 0, len(rows))
	for _, row := range rows {
		if row.OrgID == ownerOrgID || !row.IsActive || row.DeletedAt != nil {
			continue
		}
		candidates = append(candidates, row)
	}
	return candidates, nil
}

func (f *Fetcher) SupplyCandidates(ctx context.Context, ownerOrgID uint) ([]models.SupplyWithOrg, error) {
	rows, err := f.supplies.ListActiveWithOrg(ctx, ownerOrgID)
	if err != nil {
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}

	candidates := make([]models.SupplyWithOrg, 0, len(rows))
	for _, row := range rows {
		if row.OrgID == ownerOrgID || !row.IsActive || row.DeletedAt != nil {
			continue
		}
		candidates = append(candidates, row)
	}
	return candidates, nil
}
