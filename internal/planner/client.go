package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

// ErrPlannerUnavailable covers every transport failure and every non-2xx
// answer from the planning service. Callers do not branch on status codes.
var ErrPlannerUnavailable = errors.New("planning service request failed")

// Client talks to the remote planning service. All methods honour the passed
// context; there is no retry or backoff.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// RecommendDestinations posts the preference set verbatim and returns the
// ranked destination list.
func (c *Client) RecommendDestinations(ctx context.Context, prefs domain.PreferenceSet) ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := c.post(ctx, "/recommend-destinations", prefs, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *Client) GenerateItinerary(ctx context.Context, req ItineraryRequest) (*domain.Itinerary, error) {
	var itinerary domain.Itinerary
	if err := c.post(ctx, "/generate-itinerary", req, &itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (c *Client) NearbyExpansions(ctx context.Context, req NearbyRequest) ([]domain.NearbySuggestion, error) {
	var resp NearbyResponse
	if err := c.post(ctx, "/nearby-expansions", req, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlannerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrPlannerUnavailable, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
