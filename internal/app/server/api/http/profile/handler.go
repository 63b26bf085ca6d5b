package profile

import (
	"context"
	"errors"

	"carelink/internal/app/server/api/http/middleware/auth"
	"carelink/internal/domain/profile"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    profile.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service profile.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, huma.Error404NotFound("Profile not found")
		}
		h.log.Error("failed to load profile", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to load profile")
	}

	return &getOutput{Body: profileView(p)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	upd := profile.Update{
		Name:                  input.Body.Name,
		Age:                   input.Body.Age,
		DateOfBirth:           input.Body.DateOfBirth,
		Relationship:          input.Body.Relationship,
		EmergencyContactName:  input.Body.EmergencyContactName,
		EmergencyContactPhone: input.Body.EmergencyContactPhone,
	}

	p, err := h.service.Update(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrNoFields):
			return nil, huma.Error400BadRequest("No fields to update")
		case errors.Is(err, profile.ErrNotFound):
			return nil, huma.Error404NotFound("Profile not found")
		}
		h.log.Error("failed to update profile", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to update profile")
	}

	return &updateOutput{
		Body: updateResponse{
			Message: "Profile updated successfully",
			Profile: profileView(p),
		},
	}, nil
}

func profileView(p profile.Profile) profileResponse {
	return profileResponse{
		Name:                  p.Name,
		Age:                   p.Age,
		DateOfBirth:           p.DateOfBirth,
		Relationship:          p.Relationship,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
	}
}
