package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/creatorly/upload-scheduling/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NotifyScheduled posts one committed assignment to the pipeline. Calls
// are single-attempt; the caller decides what a failed notification
// means for the batch.
func (c *Client) NotifyScheduled(ctx context.Context, task *ScheduledTask) error {
	reqBody, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal scheduled task: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/process/schedule", c.baseURL)

	ctx, span := tracing.StartExternalAPISpan(ctx, "notify_scheduled", url)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "failed to send scheduled task to pipeline",
			slog.String("item_id", task.ItemID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		slog.WarnContext(ctx, "unexpected status code from pipeline",
			slog.String("item_id", task.ItemID),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.DebugContext(ctx, "scheduled task handed to pipeline",
		slog.String("item_id", task.ItemID),
		slog.String("publish_date", task.PublishDate),
		slog.String("publish_time", task.PublishTime),
	)

	return nil
}
