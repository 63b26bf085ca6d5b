package alert

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Alert, error)
	Create(ctx context.Context, a Alert) (Alert, error)
	// MarkRead flips is_read for an alert owned by userID. An absent or
	// foreign alert reports ErrNotFound.
	MarkRead(ctx context.Context, userID, alertID int64) error
}
