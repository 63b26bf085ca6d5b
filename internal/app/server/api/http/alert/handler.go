package alert

import (
	"context"
	"errors"

	"carelink/internal/app/server/api/http/middleware/auth"
	"carelink/internal/domain/alert"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    alert.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service alert.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.markReadOp(), h.markRead)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	alerts, err := h.service.List(ctx, userID)
	if err != nil {
		h.log.Error("failed to list alerts", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to load alerts")
	}

	views := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, alertView(a))
	}

	return &listOutput{Body: views}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a, err := h.service.Create(ctx, userID, input.Body.Type, input.Body.Title, input.Body.Message)
	if err != nil {
		if errors.Is(err, alert.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("failed to create alert", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to create alert")
	}

	return &createOutput{
		Body: createResponse{
			Message: "Alert created",
			Alert:   alertView(a),
		},
	}, nil
}

func (h *Handler) markRead(ctx context.Context, input *markReadInput) (*markReadOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.MarkRead(ctx, userID, input.ID); err != nil {
		if errors.Is(err, alert.ErrNotFound) {
			return nil, huma.Error404NotFound("Alert not found")
		}
		h.log.Error("failed to mark alert read", "alert_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to update alert")
	}

	return &markReadOutput{
		Body: messageResponse{Message: "Alert marked as read"},
	}, nil
}

func alertView(a alert.Alert) alertResponse {
	return alertResponse{
		ID:        a.ID,
		Type:      a.Type,
		Title:     a.Title,
		Message:   a.Message,
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt,
	}
}
