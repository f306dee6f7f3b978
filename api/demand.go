package api

import (
	"encoding/json"
	"net/http"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/services"
	"github.com/orgmatch/orgmatch/utils"
)

type DemandHandler struct {
	demandService *services.DemandService
	searchService *services.SearchService
}

func CreateDemandHandler(demandService *services.DemandService, searchService *services.SearchService) *DemandHandler {
	return &DemandHandler{
		demandService: demandService,
		searchService: searchService,
	}
}

func (h *DemandHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDemandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	demand, err := h.demandService.Create(r.Context(), utils.GetOrgID(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.CreateListingResponse{
		Message:  "Demand listing created.",
		DemandID: demand.DemandID,
	})
}

func (h *DemandHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.demandService.List(r.Context(), utils.GetOrgID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *DemandHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	demandID, ok := listingID(w, r)
	if !ok {
		return
	}

	detail, err := h.demandService.Get(r.Context(), demandID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *DemandHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	demandID, ok := listingID(w, r)
	if !ok {
		return
	}

	if err := h.demandService.Delete(r.Context(), demandID, utils.GetOrgID(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Demand listing deleted."})
}

func (h *DemandHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	demandID, ok := listingID(w, r)
	if !ok {
		return
	}

	response, err := h.searchService.SearchDemand(r.Context(), demandID, searchOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *DemandHandler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	demandID, ok := listingID(w, r)
	if !ok {
		return
	}

	h.searchService.InvalidateDemand(r.Context(), demandID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cache invalidated."})
}
