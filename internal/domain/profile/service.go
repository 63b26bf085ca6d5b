package profile

import (
	"context"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context, userID int64) (Profile, error)
	Update(ctx context.Context, userID int64, upd Update) (Profile, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "profile_service")),
	}
}

func (s *Service) Get(ctx context.Context, userID int64) (Profile, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID int64, upd Update) (Profile, error) {
	if upd.IsEmpty() {
		return Profile{}, ErrNoFields
	}

	p, err := s.repo.Update(ctx, userID, upd)
	if err != nil {
		return Profile{}, err
	}

	s.log.Info("profile updated", "user_id", userID)
	return p, nil
}
