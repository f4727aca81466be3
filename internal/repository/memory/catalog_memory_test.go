package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sampleSeed = `destinations:
  - id: 1
    name: Jaipur
    country: India
    state: Rajasthan
    region: North
    tags: ["heritage & forts", "culture"]
    budget_level: mid
    climate: warm
    crowd_level: high
    latitude: 26.9124
    longitude: 75.7873
attractions:
  - id: 11
    destination_id: 1
    name: Amber Fort
    category: heritage & forts
    cost: 500
    latitude: 26.9855
    longitude: 75.8513
    visit_duration: 3
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoadSeed(t *testing.T) {
	catalog, err := LoadSeed(writeSeed(t, sampleSeed))
	if err != nil {
		t.Fatalf("LoadSeed returned error: %v", err)
	}

	dests, err := catalog.ListDestinations(context.Background())
	if err != nil {
		t.Fatalf("ListDestinations returned error: %v", err)
	}
	if len(dests) != 1 {
		t.Fatalf("expected 1 destination, got %d", len(dests))
	}
	d := dests[0]
	if d.ID != 1 || d.Name != "Jaipur" || d.BudgetLevel != "mid" {
		t.Fatalf("unexpected destination: %+v", d)
	}
	if len(d.Tags) != 2 || d.Tags[0] != "heritage & forts" {
		t.Fatalf("unexpected tags: %v", d.Tags)
	}

	attractions, err := catalog.ListAttractions(context.Background())
	if err != nil {
		t.Fatalf("ListAttractions returned error: %v", err)
	}
	if len(attractions) != 1 {
		t.Fatalf("expected 1 attraction, got %d", len(attractions))
	}
	a := attractions[0]
	if a.DestinationID != 1 || a.CostINR != 500 || a.VisitDurationHours != 3 {
		t.Fatalf("unexpected attraction: %+v", a)
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	if _, err := LoadSeed(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing seed file")
	}
}

func TestLoadSeedMalformedYAML(t *testing.T) {
	if _, err := LoadSeed(writeSeed(t, "destinations: [\n")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
