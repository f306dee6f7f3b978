package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orgmatch/orgmatch/providers"
	"github.com/orgmatch/orgmatch/utils"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// writeError maps a service error onto the wire. Worker failures surface as
// a 502 carrying the upstream error body; APIErrors keep their status;
// anything else is an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var workerErr *providers.WorkerError
	if errors.As(err, &workerErr) {
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:  utils.ErrWorkerUnavailable.Message,
			Detail: workerErr.Body,
		})
		return
	}

	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Code, ErrorResponse{Error: apiErr.Message, Detail: apiErr.Details})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: utils.ErrInternalServer.Message})
}
