package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carelink/internal/domain/reading"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type ReadingRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewReadingRepository(pool *pgxpool.Pool, log *slog.Logger) *ReadingRepository {
	return &ReadingRepository{
		pool: pool,
		log:  log.With(slog.String("component", "reading_repository")),
	}
}

func (r *ReadingRepository) Create(ctx context.Context, rd reading.Reading) (int64, error) {
	var recordedAt *time.Time
	if !rd.RecordedAt.IsZero() {
		recordedAt = &rd.RecordedAt
	}

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO wristband_readings
		     (user_id, heart_rate, motion, noise_level, stress_level, battery, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7::timestamptz, NOW()))
		 RETURNING id`,
		rd.UserID, rd.HeartRate, rd.Motion, rd.NoiseLevel, rd.StressLevel, rd.Battery, recordedAt,
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to insert reading", "user_id", rd.UserID, "error", err)
		return 0, fmt.Errorf("insert reading: %w", err)
	}

	return id, nil
}

func (r *ReadingRepository) Latest(ctx context.Context, userID int64) (reading.Reading, error) {
	var rd reading.Reading
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, heart_rate, motion, noise_level, stress_level, battery, recorded_at
		 FROM wristband_readings
		 WHERE user_id = $1
		 ORDER BY recorded_at DESC
		 LIMIT 1`, userID,
	).Scan(&rd.ID, &rd.UserID, &rd.HeartRate, &rd.Motion, &rd.NoiseLevel,
		&rd.StressLevel, &rd.Battery, &rd.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reading.Reading{}, reading.ErrNotFound
		}
		return reading.Reading{}, fmt.Errorf("latest reading: %w", err)
	}

	return rd, nil
}
