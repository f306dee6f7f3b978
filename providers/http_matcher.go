package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orgmatch/orgmatch/models"
)

const defaultWorkerTimeout = 10 * time.Second

// HTTPMatchProvider talks to the matching worker over HTTP.
type HTTPMatchProvider struct {
	baseURL    string
	httpClient *http.Client
}

func CreateHTTPMatchProvider(baseURL string, timeout time.Duration) *HTTPMatchProvider {
	if timeout == 0 {
		timeout = defaultWorkerTimeout
	}
	return &HTTPMatchProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *HTTPMatchProvider) MatchSupplyToDemands(ctx context.Context, req *models.SupplyMatchRequest) (*models.MatchResponse, error) {
	return p.post(ctx, "/match/supply-to-demands", req)
}

func (p *HTTPMatchProvider) MatchDemandToSupplies(ctx context.Context, req *models.DemandMatchRequest) (*models.MatchResponse, error) {
	return p.post(ctx, "/match/demand-to-supplies", req)
}

func (p *HTTPMatchProvider) post(ctx context.Context, path string, payload interface{}) (*models.MatchResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode worker payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build worker request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &WorkerError{Body: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(resp.Body)
		return nil, &WorkerError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var matchResp models.MatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&matchResp); err != nil {
		return nil, &WorkerError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("invalid worker response: %v", err)}
	}

	return &matchResp, nil
}

func (p *HTTPMatchProvider) IsAvailable(ctx context.Context) bool {
	healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(healthCtx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
