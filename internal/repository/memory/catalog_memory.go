package memory

import (
	"context"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

// Catalog is an in-memory catalog used in development and tests, typically
// loaded from a seed file.
type Catalog struct {
	destinations []domain.Destination
	attractions  []domain.Attraction
}

func NewCatalog(destinations []domain.Destination, attractions []domain.Attraction) *Catalog {
	return &Catalog{destinations: destinations, attractions: attractions}
}

type seedFile struct {
	Destinations []domain.Destination `json:"destinations"`
	Attractions  []domain.Attraction  `json:"attractions"`
}

// LoadSeed reads a YAML (or JSON) seed file into an in-memory catalog.
func LoadSeed(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return NewCatalog(seed.Destinations, seed.Attractions), nil
}

func (c *Catalog) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return c.destinations, nil
}

func (c *Catalog) ListAttractions(ctx context.Context) ([]domain.Attraction, error) {
	return c.attractions, nil
}
