package commission

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

// HTTPCommissionClient resolves commission rules from the platform's pricing
// service. Unlike the notifier this is a critical collaborator: a failed
// lookup aborts the payment split instead of guessing a rate.
type HTTPCommissionClient struct {
	address string
	client  *http.Client
}

func NewHTTPCommissionClient(address string) *HTTPCommissionClient {
	return &HTTPCommissionClient{
		address: address,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type commissionResponse struct {
	Rate             float64 `json:"rate"`
	RequiresApproval bool    `json:"requires_approval"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPCommissionClient) Lookup(ctx context.Context, jobID, categoryID, region, clientID string) (*domain.CommissionRule, error) {
	query := url.Values{}
	query.Set("job_id", jobID)
	query.Set("category_id", categoryID)
	query.Set("region", region)
	query.Set("client_id", clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/commission-rules?%s", c.address, query.Encode()), nil)
	if err != nil {
		return nil, domain.NewDependencyError("failed to build commission rule request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewDependencyError("commission rule service unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewDependencyError("failed to read commission rule response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, domain.NewDependencyError(fmt.Sprintf("commission rule service returned %d", resp.StatusCode), nil)
		}
		return nil, domain.NewDependencyError(errResp.Error, nil)
	}

	var rule commissionResponse
	if err := json.Unmarshal(body, &rule); err != nil {
		return nil, domain.NewDependencyError("failed to decode commission rule response", err)
	}
	return &domain.CommissionRule{Rate: rule.Rate, RequiresApproval: rule.RequiresApproval}, nil
}

// StaticCommissionClient serves a fixed rate for local development where no
// pricing service is running.
type StaticCommissionClient struct {
	Rate float64
}

func (c *StaticCommissionClient) Lookup(ctx context.Context, jobID, categoryID, region, clientID string) (*domain.CommissionRule, error) {
	return &domain.CommissionRule{Rate: c.Rate}, nil
}
