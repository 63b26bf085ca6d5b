package postgres

import (
	"context"
	"fmt"

	"carelink/internal/domain/alert"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type AlertRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAlertRepository(pool *pgxpool.Pool, log *slog.Logger) *AlertRepository {
	return &AlertRepository{
		pool: pool,
		log:  log.With(slog.String("component", "alert_repository")),
	}
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID int64) ([]alert.Alert, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, type, title, message, is_read, created_at
		 FROM alerts
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		r.log.Error("failed to list alerts", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []alert.Alert
	for rows.Next() {
		var a alert.Alert
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Title, &a.Message, &a.IsRead, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

func (r *AlertRepository) Create(ctx context.Context, a alert.Alert) (alert.Alert, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO alerts (user_id, type, title, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_read, created_at`,
		a.UserID, a.Type, a.Title, a.Message,
	).Scan(&a.ID, &a.IsRead, &a.CreatedAt)
	if err != nil {
		r.log.Error("failed to insert alert", "user_id", a.UserID, "error", err)
		return alert.Alert{}, fmt.Errorf("insert alert: %w", err)
	}

	return a, nil
}

func (r *AlertRepository) MarkRead(ctx context.Context, userID, alertID int64) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE alerts SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		alertID, userID)
	if err != nil {
		r.log.Error("failed to mark alert read", "alert_id", alertID, "user_id", userID, "error", err)
		return fmt.Errorf("mark alert read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return alert.ErrNotFound
	}

	return nil
}
