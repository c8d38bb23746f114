package punchclock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shiftledger/shiftledger-backend-go/internal/config"
	"github.com/shiftledger/shiftledger-backend-go/internal/domain/attendance"
)

// Client talks to the punch-machine aggregation API. Every call is bounded by
// the configured timeout so a dead clock machine degrades into a per-employee
// sync failure instead of stalling the whole run.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.SyncConfig) *Client {
	return &Client{
		baseURL: cfg.PunchAPIBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.PunchTimeout,
		},
	}
}

type punchPayload struct {
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

// GetPunches implements attendance.PunchSource.
func (c *Client) GetPunches(ctx context.Context, employeeID string, date time.Time) ([]attendance.Punch, error) {
	endpoint := fmt.Sprintf("%s/employees/%s/punches?date=%s",
		c.baseURL, url.PathEscape(employeeID), date.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build punch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrPunchSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", attendance.ErrPunchSourceUnavailable, resp.StatusCode)
	}

	var payload []punchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", attendance.ErrPunchSourceUnavailable, err)
	}

	punches := make([]attendance.Punch, 0, len(payload))
	for _, p := range payload {
		ts, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed timestamp %q", attendance.ErrPunchSourceUnavailable, p.Timestamp)
		}
		punches = append(punches, attendance.Punch{
			Timestamp: ts,
			Direction: attendance.Direction(p.Direction),
		})
	}

	sort.Slice(punches, func(i, j int) bool {
		return punches[i].Timestamp.Before(punches[j].Timestamp)
	})

	return punches, nil
}
