package api

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/orgmatch/orgmatch/cache"
	"github.com/orgmatch/orgmatch/providers"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks"`
}

var startTime = time.Now()

type HealthHandler struct {
	db      *gorm.DB
	cache   *cache.RedisCache
	matcher providers.MatchProvider
}

func CreateHealthHandler(db *gorm.DB, redisCache *cache.RedisCache, matcher providers.MatchProvider) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cache:   redisCache,
		matcher: matcher,
	}
}

// HandleHealth reports dependency status. The service itself stays healthy
// when Redis or the worker are down; searches degrade but listings keep
// working.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{
		"database": "ok",
		"cache":    "ok",
		"worker":   "ok",
	}
	status := "healthy"

	if sqlDB, err := h.db.DB(); err != nil {
		checks["database"] = err.Error()
		status = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		checks["database"] = err.Error()
		status = "unhealthy"
	}

	if err := h.cache.Ping(ctx); err != nil {
		checks["cache"] = "unavailable"
	}

	if !h.matcher.IsAvailable(ctx) {
		checks["worker"] = "unavailable"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Uptime:    time.Since(startTime).String(),
		Checks:    checks,
	})
}
