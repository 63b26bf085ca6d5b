package profile

import "context"

type Repository interface {
	FindByUser(ctx context.Context, userID int64) (Profile, error)
	// Update applies only the fields present in upd and returns the
	// resulting profile.
	Update(ctx context.Context, userID int64, upd Update) (Profile, error)
}
