package dashboard

import (
	"context"
	"testing"
	"time"

	"carelink/internal/app/server/api/http/middleware/auth"
	"carelink/internal/domain/reading"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Save(ctx context.Context, r reading.Reading) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) LatestMetrics(ctx context.Context, userID int64) (reading.Metrics, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(reading.Metrics), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestHandler_Metrics(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		updated := time.Date(2026, time.April, 2, 8, 30, 0, 0, time.UTC)
		svc.On("LatestMetrics", mock.Anything, int64(5)).Return(reading.Metrics{
			StressLevel:  3.1,
			StressStatus: "Low",
			HeartRate:    intPtr(72),
			Battery:      intPtr(90),
			IsConnected:  true,
			LastUpdated:  updated,
		}, nil)

		ctx := auth.WithUserID(context.Background(), 5)

		out, err := h.metrics(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 3.1, out.Body.StressLevel)
		assert.Equal(t, "Low", out.Body.StressStatus)
		assert.Equal(t, 72, *out.Body.HeartRate)
		assert.True(t, out.Body.IsConnected)
		assert.Equal(t, updated, out.Body.LastUpdated)
	})

	t.Run("NoIdentity", func(t *testing.T) {
		h := NewHandler(new(MockService), nil, nil)

		_, err := h.metrics(context.Background(), nil)
		assert.Equal(t, 401, statusOf(t, err))
	})
}

func TestHandler_Ingest(t *testing.T) {
	ctx := auth.WithUserID(context.Background(), 5)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Save", mock.Anything, mock.MatchedBy(func(r reading.Reading) bool {
			return r.UserID == 5 && r.HeartRate != nil && *r.HeartRate == 80 && r.RecordedAt.IsZero()
		})).Return(int64(11), nil)

		input := &ingestInput{}
		input.Body.HeartRate = intPtr(80)
		input.Body.StressLevel = floatPtr(4.5)

		out, err := h.ingest(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(11), out.Body.ID)
		svc.AssertExpectations(t)
	})

	t.Run("ExplicitTimestamp", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		at := time.Date(2026, time.April, 2, 7, 0, 0, 0, time.UTC)
		svc.On("Save", mock.Anything, mock.MatchedBy(func(r reading.Reading) bool {
			return r.RecordedAt.Equal(at)
		})).Return(int64(12), nil)

		input := &ingestInput{}
		input.Body.Battery = intPtr(55)
		input.Body.RecordedAt = &at

		_, err := h.ingest(ctx, input)
		require.NoError(t, err)
	})

	t.Run("EmptyReading", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Save", mock.Anything, mock.Anything).Return(int64(0), reading.ErrNoData)

		_, err := h.ingest(ctx, &ingestInput{})
		assert.Equal(t, 400, statusOf(t, err))
	})

	t.Run("NoIdentity", func(t *testing.T) {
		h := NewHandler(new(MockService), nil, nil)

		_, err := h.ingest(context.Background(), &ingestInput{})
		assert.Equal(t, 401, statusOf(t, err))
	})
}
