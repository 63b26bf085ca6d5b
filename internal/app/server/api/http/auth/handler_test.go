package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	mwauth "carelink/internal/app/server/api/http/middleware/auth"
	"carelink/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password, fullName string) (user.User, error) {
	args := m.Called(ctx, email, password, fullName)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Issue(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockSession) Verify(token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Signup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockUserService)
		sess := new(MockSession)
		h := NewHandler(svc, sess, nil, nil, nil)

		created := user.User{ID: 7, Email: "carer@example.com", FullName: "Dana Reyes"}
		svc.On("Register", mock.Anything, "carer@example.com", "secret1", "Dana Reyes").
			Return(created, nil)
		sess.On("Issue", int64(7)).Return("token-7", nil)

		input := &signupInput{}
		input.Body.Email = "carer@example.com"
		input.Body.Password = "secret1"
		input.Body.FullName = "Dana Reyes"

		out, err := h.signup(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "Account created successfully", out.Body.Message)
		assert.Equal(t, "token-7", out.Body.AccessToken)
		assert.Equal(t, int64(7), out.Body.User.ID)
		assert.Equal(t, "carer@example.com", out.Body.User.Email)
		svc.AssertExpectations(t)
		sess.AssertExpectations(t)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		svc := new(MockUserService)
		sess := new(MockSession)
		h := NewHandler(svc, sess, nil, nil, nil)

		svc.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(user.User{}, user.ErrEmailTaken)

		input := &signupInput{}
		input.Body.Email = "carer@example.com"
		input.Body.Password = "secret1"

		_, err := h.signup(context.Background(), input)
		assert.Equal(t, 409, statusOf(t, err))
		sess.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		svc := new(MockUserService)
		sess := new(MockSession)
		h := NewHandler(svc, sess, nil, nil, nil)

		// The service wraps its sentinel; the handler must unwrap it.
		svc.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(user.User{}, fmt.Errorf("password too short: %w", user.ErrInvalidInput))

		input := &signupInput{}
		input.Body.Email = "carer@example.com"
		input.Body.Password = "x"

		_, err := h.signup(context.Background(), input)
		assert.Equal(t, 400, statusOf(t, err))
	})
}

// Missing credentials must reach the domain validator and answer 400,
// not be rejected as a schema violation with 422.
func TestHandler_Signup_MissingFieldsAnswer400(t *testing.T) {
	svc := new(MockUserService)
	sess := new(MockSession)
	h := NewHandler(svc, sess, nil, nil, nil)

	svc.On("Register", mock.Anything, "", "", "").
		Return(user.User{}, fmt.Errorf("email and password are required: %w", user.ErrInvalidInput))

	_, api := humatest.New(t)
	h.SetupRoutes(api)

	resp := api.Post("/api/auth/signup", map[string]any{})
	assert.Equal(t, 400, resp.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Login_MissingFieldsAnswer401(t *testing.T) {
	svc := new(MockUserService)
	sess := new(MockSession)
	h := NewHandler(svc, sess, nil, nil, nil)

	svc.On("Authenticate", mock.Anything, "", "").
		Return(user.User{}, user.ErrInvalidCredentials)

	_, api := humatest.New(t)
	h.SetupRoutes(api)

	resp := api.Post("/api/auth/login", map[string]any{})
	assert.Equal(t, 401, resp.Code)
}

func TestHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockUserService)
		sess := new(MockSession)
		h := NewHandler(svc, sess, nil, nil, nil)

		u := user.User{ID: 3, Email: "carer@example.com"}
		svc.On("Authenticate", mock.Anything, "carer@example.com", "secret1").Return(u, nil)
		sess.On("Issue", int64(3)).Return("token-3", nil)

		input := &loginInput{}
		input.Body.Email = "carer@example.com"
		input.Body.Password = "secret1"

		out, err := h.login(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "Login successful", out.Body.Message)
		assert.Equal(t, "token-3", out.Body.AccessToken)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		svc := new(MockUserService)
		sess := new(MockSession)
		h := NewHandler(svc, sess, nil, nil, nil)

		svc.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
			Return(user.User{}, user.ErrInvalidCredentials)

		input := &loginInput{}
		input.Body.Email = "carer@example.com"
		input.Body.Password = "wrong"

		_, err := h.login(context.Background(), input)
		assert.Equal(t, 401, statusOf(t, err))
		sess.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestHandler_Logout(t *testing.T) {
	h := NewHandler(new(MockUserService), new(MockSession), nil, nil, nil)

	t.Run("Authenticated", func(t *testing.T) {
		ctx := mwauth.WithUserID(context.Background(), 5)

		out, err := h.logout(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "Logged out successfully", out.Body.Message)
	})

	t.Run("NoIdentity", func(t *testing.T) {
		_, err := h.logout(context.Background(), nil)
		assert.Equal(t, 401, statusOf(t, err))
	})
}

func TestHandler_Me(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewHandler(svc, new(MockSession), nil, nil, nil)

		created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
		svc.On("Get", mock.Anything, int64(5)).Return(user.User{
			ID:        5,
			Email:     "carer@example.com",
			FullName:  "Dana Reyes",
			CreatedAt: created,
		}, nil)

		ctx := mwauth.WithUserID(context.Background(), 5)

		out, err := h.me(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5), out.Body.ID)
		assert.Equal(t, "Dana Reyes", out.Body.FullName)
		assert.Equal(t, created, out.Body.CreatedAt)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewHandler(svc, new(MockSession), nil, nil, nil)

		svc.On("Get", mock.Anything, int64(5)).Return(user.User{}, user.ErrNotFound)

		ctx := mwauth.WithUserID(context.Background(), 5)

		_, err := h.me(ctx, nil)
		assert.Equal(t, 404, statusOf(t, err))
	})

	t.Run("NoIdentity", func(t *testing.T) {
		h := NewHandler(new(MockUserService), new(MockSession), nil, nil, nil)

		_, err := h.me(context.Background(), nil)
		assert.Equal(t, 401, statusOf(t, err))
	})
}
