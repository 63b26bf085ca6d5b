package alert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int64) ([]Alert, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Alert), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, a Alert) (Alert, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(Alert), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, userID, alertID int64) error {
	args := m.Called(ctx, userID, alertID)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	expected := Alert{ID: 7, UserID: 1, Type: "stress", Title: "High stress detected"}
	mockRepo.On("Create", mock.Anything, Alert{
		UserID: 1,
		Type:   "stress",
		Title:  "High stress detected",
	}).Return(expected, nil)

	a, err := service.Create(context.Background(), 1, " stress ", " High stress detected ", "")
	require.NoError(t, err)
	assert.Equal(t, expected, a)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		alertType string
		title     string
	}{
		{name: "missing type", alertType: "", title: "Title"},
		{name: "missing title", alertType: "stress", title: ""},
		{name: "whitespace only", alertType: "  ", title: "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			_, err := service.Create(context.Background(), 1, tt.alertType, tt.title, "msg")
			assert.ErrorIs(t, err, ErrInvalidInput)

			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	alerts := []Alert{{ID: 2, Title: "newer"}, {ID: 1, Title: "older"}}
	mockRepo.On("ListByUser", mock.Anything, int64(1)).Return(alerts, nil)

	got, err := service.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, alerts, got)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("MarkRead", mock.Anything, int64(1), int64(99)).Return(ErrNotFound)

	err := service.MarkRead(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
