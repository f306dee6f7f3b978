package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/services"
	"github.com/orgmatch/orgmatch/utils"
)

type SupplyHandler struct {
	supplyService *services.SupplyService
	searchService *services.SearchService
}

func CreateSupplyHandler(supplyService *services.SupplyService, searchService *services.SearchService) *SupplyHandler {
	return &SupplyHandler{
		supplyService: supplyService,
		searchService: searchService,
	}
}

func (h *SupplyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	supply, err := h.supplyService.Create(r.Context(), utils.GetOrgID(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.CreateListingResponse{
		Message:  "Supply listing created.",
		SupplyID: supply.SupplyID,
	})
}

func (h *SupplyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.supplyService.List(r.Context(), utils.GetOrgID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *SupplyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	supplyID, ok := listingID(w, r)
	if !ok {
		return
	}

	detail, err := h.supplyService.Get(r.Context(), supplyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *SupplyHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	supplyID, ok := listingID(w, r)
	if !ok {
		return
	}

	if err := h.supplyService.Delete(r.Context(), supplyID, utils.GetOrgID(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Supply listing deleted."})
}

// HandleSearch runs the supply-to-demands search. ?force=true bypasses the
// cache; ?radius=<km> overrides the listing's stored radius for this
// computation only.
func (h *SupplyHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	supplyID, ok := listingID(w, r)
	if !ok {
		return
	}

	response, err := h.searchService.SearchSupply(r.Context(), supplyID, searchOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *SupplyHandler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	supplyID, ok := listingID(w, r)
	if !ok {
		return
	}

	h.searchService.InvalidateSupply(r.Context(), supplyID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cache invalidated."})
}

func listingID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		writeError(w, utils.ErrInvalidListingID)
		return 0, false
	}
	return uint(id), true
}

func searchOptions(r *http.Request) services.SearchOptions {
	opts := services.SearchOptions{
		ForceRefresh: r.URL.Query().Get("force") == "true",
	}
	if raw := r.URL.Query().Get("radius"); raw != "" {
		if radius, err := strconv.ParseFloat(raw, 64); err == nil && radius > 0 {
			opts.RadiusOverride = radius
		}
	}
	return opts
}
