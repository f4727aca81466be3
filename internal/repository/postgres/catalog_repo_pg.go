package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
)

type CatalogRepoPG struct {
	db *sqlx.DB
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepoPG {
	return &CatalogRepoPG{db: db}
}

type destinationRow struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Country         string         `db:"country"`
	State           sql.NullString `db:"state"`
	Region          sql.NullString `db:"region"`
	Tags            pq.StringArray `db:"tags"`
	BudgetLevel     string         `db:"budget_level"`
	AvgDailyCostINR int            `db:"avg_daily_cost_inr"`
	Climate         string         `db:"climate"`
	CrowdLevel      string         `db:"crowd_level"`
	BestSeason      sql.NullString `db:"best_season"`
	TravelTypes     pq.StringArray `db:"travel_type"`
	Latitude        float64        `db:"latitude"`
	Longitude       float64        `db:"longitude"`
}

func (r *CatalogRepoPG) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	const query = `
		SELECT id, name, country, state, region, tags, budget_level,
		       avg_daily_cost_inr, climate, crowd_level, best_season,
		       travel_type, latitude, longitude
		FROM destinations
		ORDER BY id`

	var rows []destinationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	destinations := make([]domain.Destination, 0, len(rows))
	for _, row := range rows {
		destinations = append(destinations, domain.Destination{
			ID:              row.ID,
			Name:            row.Name,
			Country:         row.Country,
			State:           row.State.String,
			Region:          row.Region.String,
			Tags:            row.Tags,
			BudgetLevel:     row.BudgetLevel,
			AvgDailyCostINR: row.AvgDailyCostINR,
			Climate:         row.Climate,
			CrowdLevel:      row.CrowdLevel,
			BestSeason:      row.BestSeason.String,
			TravelTypes:     row.TravelTypes,
			Latitude:        row.Latitude,
			Longitude:       row.Longitude,
		})
	}
	return destinations, nil
}

func (r *CatalogRepoPG) ListAttractions(ctx context.Context) ([]domain.Attraction, error) {
	const query = `
		SELECT id, destination_id, name, category, cost_inr,
		       latitude, longitude, visit_duration_hours
		FROM attractions
		ORDER BY destination_id, id`

	var attractions []domain.Attraction
	if err := r.db.SelectContext(ctx, &attractions, query); err != nil {
		return nil, err
	}
	return attractions, nil
}
