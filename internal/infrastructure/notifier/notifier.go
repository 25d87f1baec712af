package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

// HTTPNotifier talks to the platform notification service. Delivery is
// best-effort: callers log failures and move on, the owning transaction is
// never rolled back for a missed notification.
type HTTPNotifier struct {
	address string
	client  *http.Client
}

func NewHTTPNotifier(address string) *HTTPNotifier {
	return &HTTPNotifier{
		address: address,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type notificationRequest struct {
	ActorID  string   `json:"actor_id"`
	JobID    string   `json:"job_id,omitempty"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Channels []string `json:"channels"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (n *HTTPNotifier) Send(ctx context.Context, notification domain.Notification) error {
	body, err := json.Marshal(notificationRequest{
		ActorID:  notification.ActorID,
		JobID:    notification.JobID,
		Type:     notification.Type,
		Title:    notification.Title,
		Message:  notification.Message,
		Channels: notification.Channels,
	})
	if err != nil {
		return domain.NewDependencyError("failed to encode notification", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/notifications", n.address), bytes.NewBuffer(body))
	if err != nil {
		return domain.NewDependencyError("failed to build notification request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return domain.NewDependencyError("notification service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewDependencyError("failed to read notification response", err)
	}
	var errResp errorResponse
	if err := json.Unmarshal(respBody, &errResp); err != nil {
		return domain.NewDependencyError(fmt.Sprintf("notification service returned %d", resp.StatusCode), nil)
	}
	return domain.NewDependencyError(errResp.Error, nil)
}
