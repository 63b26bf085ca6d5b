package postgres

import (
	"context"
	"errors"
	"fmt"

	"carelink/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With(slog.String("component", "user_repository")),
	}
}

// Create inserts the account and its default profile in one transaction.
// Email uniqueness rests on the users_email_key constraint, so two
// concurrent signups for the same address resolve to exactly one winner.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash, fullName string) (user.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var u user.User
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, full_name)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id, email, COALESCE(full_name, ''), created_at`,
		email, passwordHash, fullName,
	).Scan(&u.ID, &u.Email, &u.FullName, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrEmailTaken
		}
		r.log.Error("failed to insert user", "error", err)
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO profiles (user_id) VALUES ($1)`, u.ID,
	); err != nil {
		r.log.Error("failed to insert default profile", "user_id", u.ID, "error", err)
		return user.User{}, fmt.Errorf("insert default profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return user.User{}, fmt.Errorf("commit tx: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, COALESCE(full_name, ''), created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by email: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, COALESCE(full_name, ''), created_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by id: %w", err)
	}

	return u, nil
}
