package reading

import (
	"context"
	"errors"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Save(ctx context.Context, r Reading) (int64, error)
	LatestMetrics(ctx context.Context, userID int64) (Metrics, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "reading_service")),
	}
}

func (s *Service) Save(ctx context.Context, r Reading) (int64, error) {
	if r.HeartRate == nil && r.Motion == nil && r.NoiseLevel == nil &&
		r.StressLevel == nil && r.Battery == nil {
		return 0, ErrNoData
	}

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return 0, err
	}

	s.log.Debug("reading saved", "user_id", r.UserID, "reading_id", id)
	return id, nil
}

// LatestMetrics builds the dashboard payload from the newest reading.
// Until the first reading arrives the app still needs a renderable
// dashboard, so an absent history yields placeholder values.
func (s *Service) LatestMetrics(ctx context.Context, userID int64) (Metrics, error) {
	r, err := s.repo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return placeholderMetrics(), nil
		}
		return Metrics{}, err
	}

	var stress float64
	if r.StressLevel != nil {
		stress = *r.StressLevel
	}

	return Metrics{
		StressLevel:  stress,
		StressStatus: StressStatus(stress),
		HeartRate:    r.HeartRate,
		Motion:       r.Motion,
		NoiseLevel:   r.NoiseLevel,
		Battery:      r.Battery,
		IsConnected:  false, // true once BLE ingestion reports liveness
		LastUpdated:  r.RecordedAt,
	}, nil
}

func placeholderMetrics() Metrics {
	heartRate := 78
	motion := "Moderate"
	noise := 65
	battery := 68

	return Metrics{
		StressLevel:  6.2,
		StressStatus: "Moderate",
		HeartRate:    &heartRate,
		Motion:       &motion,
		NoiseLevel:   &noise,
		Battery:      &battery,
		IsConnected:  false,
		LastUpdated:  time.Now().UTC(),
	}
}
