package alert

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID int64) ([]Alert, error)
	Create(ctx context.Context, userID int64, alertType, title, message string) (Alert, error)
	MarkRead(ctx context.Context, userID, alertID int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "alert_service")),
	}
}

func (s *Service) List(ctx context.Context, userID int64) ([]Alert, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID int64, alertType, title, message string) (Alert, error) {
	alertType = strings.TrimSpace(alertType)
	title = strings.TrimSpace(title)

	if alertType == "" || title == "" {
		return Alert{}, fmt.Errorf("%w: type and title are required", ErrInvalidInput)
	}

	a, err := s.repo.Create(ctx, Alert{
		UserID:  userID,
		Type:    alertType,
		Title:   title,
		Message: message,
	})
	if err != nil {
		return Alert{}, err
	}

	s.log.Info("alert created", "user_id", userID, "alert_id", a.ID, "type", a.Type)
	return a, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, alertID int64) error {
	return s.repo.MarkRead(ctx, userID, alertID)
}
