package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/repository/memory"
	"github.com/tripjournal/trip-wizard-backend/internal/service"
)

func newPlannerServer(t *testing.T, destinations []domain.Destination, attractions []domain.Attraction) *httptest.Server {
	t.Helper()
	e := NewRouter([]string{"*"})
	planning := service.NewPlanningService(memory.NewCatalog(destinations, attractions), time.Minute)
	RegisterPlanner(e, planning)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func plannerFixtures() ([]domain.Destination, []domain.Attraction) {
	dests := []domain.Destination{
		{ID: 1, Name: "Jaipur", Tags: []string{"heritage & forts"}, Latitude: 26.9124, Longitude: 75.7873},
		{ID: 2, Name: "Agra", Tags: []string{"heritage & forts"}, Latitude: 27.1767, Longitude: 78.0081},
	}
	attractions := []domain.Attraction{
		{ID: 11, DestinationID: 1, Name: "Amber Fort", Category: "heritage & forts", CostINR: 500, Latitude: 26.9855, Longitude: 75.8513, VisitDurationHours: 3},
	}
	return dests, attractions
}

func TestRecommendDestinationsReturnsBareArray(t *testing.T) {
	dests, attractions := plannerFixtures()
	srv := newPlannerServer(t, dests, attractions)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/recommend-destinations", "", `{"tags":["heritage & forts"],"top_k":2}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var got []domain.Destination
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("expected a bare destination array: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(got))
	}
}

func TestRecommendDestinationsEmptyCatalog(t *testing.T) {
	srv := newPlannerServer(t, nil, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/recommend-destinations", "", `{"top_k":5}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 with no catalog data, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGenerateItineraryEndpoint(t *testing.T) {
	dests, attractions := plannerFixtures()
	srv := newPlannerServer(t, dests, attractions)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/generate-itinerary", "", `{"destination_id":1,"days":2,"budget":20000,"pace":"moderate"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var it domain.Itinerary
	if err := json.NewDecoder(resp.Body).Decode(&it); err != nil {
		t.Fatalf("decode itinerary: %v", err)
	}
	if it.DestinationName != "Jaipur" || len(it.Days) != 2 {
		t.Fatalf("unexpected itinerary: %+v", it)
	}
}

func TestGenerateItineraryStatusMapping(t *testing.T) {
	dests, attractions := plannerFixtures()
	srv := newPlannerServer(t, dests, attractions)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/generate-itinerary", "", `{"destination_id":1,"days":0}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid days, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/generate-itinerary", "", `{"destination_id":99,"days":3}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown destination, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestNearbyExpansionsEndpoint(t *testing.T) {
	dests, attractions := plannerFixtures()
	srv := newPlannerServer(t, dests, attractions)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/nearby-expansions", "", `{"destination_id":1,"extra_days":2,"extra_budget":24000,"radius_km":600}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["origin_destination_id"] != float64(1) {
		t.Fatalf("unexpected origin: %v", body["origin_destination_id"])
	}
	suggestions := body["suggestions"].([]any)
	if len(suggestions) != 1 {
		t.Fatalf("expected Agra suggested, got %d suggestions", len(suggestions))
	}
}
