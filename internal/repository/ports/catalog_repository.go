package ports

import (
	"context"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

// CatalogRepository serves the destination and attraction catalog the
// planning engine ranks and schedules from. Implementations are read-only.
type CatalogRepository interface {
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	ListAttractions(ctx context.Context) ([]domain.Attraction, error)
}
