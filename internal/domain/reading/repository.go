package reading

import "context"

type Repository interface {
	// Create appends a reading and returns its id; RecordedAt is
	// assigned by the store when the caller leaves it zero.
	Create(ctx context.Context, r Reading) (int64, error)
	Latest(ctx context.Context, userID int64) (Reading, error)
}
