package trips

import "context"

// Repo persists trip requests for analytics. Create-only.
type Repo interface {
	CreateTripRequest(ctx context.Context, tr TripRequest) error
}
