package postgres

import (
	"context"
	"errors"
	"fmt"

	"carelink/internal/domain/profile"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

const profileColumns = `name, age, COALESCE(date_of_birth, ''), relationship,
	COALESCE(emergency_contact_name, ''), COALESCE(emergency_contact_phone, '')`

type ProfileRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewProfileRepository(pool *pgxpool.Pool, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		pool: pool,
		log:  log.With(slog.String("component", "profile_repository")),
	}
}

func (r *ProfileRepository) FindByUser(ctx context.Context, userID int64) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, fmt.Errorf("find profile: %w", err)
	}

	return p, nil
}

// Update builds the SET list from the fields present in upd only, so an
// omitted field can never overwrite stored data.
func (r *ProfileRepository) Update(ctx context.Context, userID int64, upd profile.Update) (profile.Profile, error) {
	query := `UPDATE profiles SET `
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		if argIndex > 1 {
			query += ", "
		}
		query += fmt.Sprintf("%s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if upd.Name != nil {
		appendSet("name", *upd.Name)
	}
	if upd.Age != nil {
		appendSet("age", *upd.Age)
	}
	if upd.DateOfBirth != nil {
		appendSet("date_of_birth", *upd.DateOfBirth)
	}
	if upd.Relationship != nil {
		appendSet("relationship", *upd.Relationship)
	}
	if upd.EmergencyContactName != nil {
		appendSet("emergency_contact_name", *upd.EmergencyContactName)
	}
	if upd.EmergencyContactPhone != nil {
		appendSet("emergency_contact_phone", *upd.EmergencyContactPhone)
	}

	if len(args) == 0 {
		return profile.Profile{}, profile.ErrNoFields
	}

	query += fmt.Sprintf(" WHERE user_id = $%d RETURNING ", argIndex) + profileColumns
	args = append(args, userID)

	row := r.pool.QueryRow(ctx, query, args...)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		r.log.Error("failed to update profile", "user_id", userID, "error", err)
		return profile.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	return p, nil
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.Name, &p.Age, &p.DateOfBirth, &p.Relationship,
		&p.EmergencyContactName, &p.EmergencyContactPhone,
	)
	return p, err
}
