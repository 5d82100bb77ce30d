package trips

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateTripRequest inserts a trip-request analytics row.
func (r *PGRepo) CreateTripRequest(ctx context.Context, tr TripRequest) error {
	const query = `
INSERT INTO trip_requests (
    id,
    name,
    budget,
    currency,
    travel_type,
    group_size,
    travel_scope,
    num_days,
    food_accommodation,
    from_location,
    travel_medium,
    destination_styles,
    ip_address,
    ip_location,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	styles, err := json.Marshal(tr.Prefs.DestinationStyles)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		tr.ID,
		tr.Prefs.Name,
		tr.Prefs.Budget,
		tr.Prefs.Currency,
		tr.Prefs.TravelType,
		tr.Prefs.GroupSize,
		tr.Prefs.TravelScope,
		tr.Prefs.NumDays,
		tr.Prefs.FoodAccommodation,
		tr.Prefs.FromLocation,
		tr.Prefs.TravelMedium,
		styles,
		tr.IPAddress,
		tr.IPLocation,
		tr.CreatedAt,
	)
	return err
}

var _ Repo = (*PGRepo)(nil)
