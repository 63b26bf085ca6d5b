package user

import "context"

type Repository interface {
	// Create inserts the account together with its default profile in a
	// single transaction. A duplicate email reports ErrEmailTaken; the
	// database unique constraint is the authority, not a prior lookup.
	Create(ctx context.Context, email, passwordHash, fullName string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
}
