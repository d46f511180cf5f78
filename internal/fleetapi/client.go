package fleetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/npcoderes/GTS-sub001/internal/domain"
	"github.com/npcoderes/GTS-sub001/internal/domain/models"
)

// TripPage is one normalized page of the upstream trips collection.
type TripPage struct {
	Items []models.Trip
	Total int
}

// Client talks to the remote fleet API. It is safe for concurrent use.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// tripEnvelope is the paginated response shape; some deployments return a
// bare array instead, handled in decodeTripPage.
type tripEnvelope struct {
	Results []models.Trip `json:"results"`
	Count   *int          `json:"count"`
}

// ListTrips fetches one page via GET /trips/?page=N&page_size=M.
func (c *Client) ListTrips(ctx context.Context, page, pageSize int) (TripPage, error) {
	endpoint := c.BaseURL + "/trips/"
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return TripPage{}, domain.UpstreamError{Op: "list trips", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return TripPage{}, domain.UpstreamError{Op: "list trips", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return TripPage{}, domain.UpstreamError{
			Op:  "list trips",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return TripPage{}, domain.UpstreamError{Op: "list trips", Err: err}
	}

	out, err := decodeTripPage(body)
	if err != nil {
		return TripPage{}, domain.UpstreamError{Op: "list trips", Err: err}
	}
	return out, nil
}

// Ping checks upstream reachability with a minimal page request.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListTrips(ctx, 1, 1)
	return err
}

// decodeTripPage accepts either {results:[...],count:n} or a bare array.
// When count is absent, total falls back to the number of items received.
func decodeTripPage(body []byte) (TripPage, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var items []models.Trip
		if err := json.Unmarshal(body, &items); err != nil {
			return TripPage{}, fmt.Errorf("decode trips array: %w", err)
		}
		return TripPage{Items: items, Total: len(items)}, nil
	}

	var env tripEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return TripPage{}, fmt.Errorf("decode trips envelope: %w", err)
	}
	total := len(env.Results)
	if env.Count != nil {
		total = *env.Count
	}
	return TripPage{Items: env.Results, Total: total}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
