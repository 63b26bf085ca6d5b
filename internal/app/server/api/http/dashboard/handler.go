package dashboard

import (
	"context"
	"errors"

	"carelink/internal/app/server/api/http/middleware/auth"
	"carelink/internal/domain/reading"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    reading.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service reading.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.metricsOp(), h.metrics)
	huma.Register(api, h.ingestOp(), h.ingest)
}

func (h *Handler) metrics(ctx context.Context, _ *struct{}) (*metricsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	m, err := h.service.LatestMetrics(ctx, userID)
	if err != nil {
		h.log.Error("failed to load metrics", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to load metrics")
	}

	return &metricsOutput{
		Body: metricsResponse{
			StressLevel:  m.StressLevel,
			StressStatus: m.StressStatus,
			HeartRate:    m.HeartRate,
			Motion:       m.Motion,
			NoiseLevel:   m.NoiseLevel,
			Battery:      m.Battery,
			IsConnected:  m.IsConnected,
			LastUpdated:  m.LastUpdated,
		},
	}, nil
}

func (h *Handler) ingest(ctx context.Context, input *ingestInput) (*ingestOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	rd := reading.Reading{
		UserID:      userID,
		HeartRate:   input.Body.HeartRate,
		Motion:      input.Body.Motion,
		NoiseLevel:  input.Body.NoiseLevel,
		StressLevel: input.Body.StressLevel,
		Battery:     input.Body.Battery,
	}
	if input.Body.RecordedAt != nil {
		rd.RecordedAt = *input.Body.RecordedAt
	}

	id, err := h.service.Save(ctx, rd)
	if err != nil {
		if errors.Is(err, reading.ErrNoData) {
			return nil, huma.Error400BadRequest("Reading carries no sensor values")
		}
		h.log.Error("failed to store reading", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to store reading")
	}

	return &ingestOutput{
		Body: ingestResponse{
			Message: "Reading recorded",
			ID:      id,
		},
	}, nil
}
