package auth

import (
	"context"
	"errors"

	mwauth "carelink/internal/app/server/api/http/middleware/auth"
	"carelink/internal/domain/session"
	"carelink/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service   user.Servicer
	session   session.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		session:   session,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) signup(ctx context.Context, input *signupInput) (*tokenOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Email, input.Body.Password, input.Body.FullName)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error409Conflict("Email already registered")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("signup failed", "error", err)
		return nil, huma.Error500InternalServerError("Registration failed")
	}

	token, err := h.session.Issue(u.ID)
	if err != nil {
		h.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Registration failed")
	}

	return &tokenOutput{
		Body: tokenResponse{
			Message:     "Account created successfully",
			AccessToken: token,
			User:        userView(u),
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*tokenOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Invalid email or password")
		}
		h.log.Error("login failed", "error", err)
		return nil, huma.Error500InternalServerError("Login failed")
	}

	token, err := h.session.Issue(u.ID)
	if err != nil {
		h.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Login failed")
	}

	return &tokenOutput{
		Body: tokenResponse{
			Message:     "Login successful",
			AccessToken: token,
			User:        userView(u),
		},
	}, nil
}

// logout acknowledges the request. Tokens are stateless and expire on
// their own; the client drops its copy.
func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	if _, ok := mwauth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	return &logoutOutput{
		Body: messageResponse{Message: "Logged out successfully"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	userID, ok := mwauth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		h.log.Error("failed to load user", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to load user")
	}

	return &meOutput{
		Body: meResponse{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName,
			CreatedAt: u.CreatedAt,
		},
	}, nil
}

func userView(u user.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
