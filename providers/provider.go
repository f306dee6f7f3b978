package providers

import (
	"context"
	"fmt"

	"github.com/orgmatch/orgmatch/models"
)

// MatchProvider is the boundary to the external scoring worker. The worker's
// algorithm is opaque here; only the request/response contract matters.
type MatchProvider interface {
	MatchSupplyToDemands(ctx context.Context, req *models.SupplyMatchRequest) (*models.MatchResponse, error)
	MatchDemandToSupplies(ctx context.Context, req *models.DemandMatchRequest) (*models.MatchResponse, error)
	IsAvailable(ctx context.Context) bool
}

// WorkerError is returned for any worker failure: a non-2xx status (Body
// carries the upstream error body) or a transport error (StatusCode 0).
// Handlers surface it as a 502. It is never retried automatically; callers
// may re-invoke with a forced refresh.
type WorkerError struct {
	StatusCode int
	Body       string
}

func (e *WorkerError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("matching worker unreachable: %s", e.Body)
	}
	return fmt.Sprintf("matching worker returned status %d: %s", e.StatusCode, e.Body)
}
