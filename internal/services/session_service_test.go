package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuqiannemo/WanderMind/internal/models/request_models"
	mem "github.com/yuqiannemo/WanderMind/pkg/memcache"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

// stubGeocoder returns fixed coordinates for every query.
type stubGeocoder struct {
	lat float64
	lng float64
}

func (s *stubGeocoder) Resolve(ctx context.Context, city, attraction string) (float64, float64) {
	return s.lat, s.lng
}

func TestTripDays(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		want      int
		wantErr   bool
	}{
		{"three day trip", "2024-06-01", "2024-06-03", 3, false},
		{"single day trip", "2024-06-01", "2024-06-01", 1, false},
		{"end before start", "2024-06-03", "2024-06-01", 0, true},
		{"bad start date", "June 1st", "2024-06-03", 0, true},
		{"bad end date", "2024-06-01", "soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := TripDays(tt.startDate, tt.endDate)
			if tt.wantErr {
				assert.ErrorIs(t, err, utils.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
			assert.Greater(t, days, 0)
		})
	}
}

func TestCreateSession(t *testing.T) {
	svc := NewSessionService(
		mem.NewInMemorySessionStore(0),
		&stubGeocoder{lat: 48.8566, lng: 2.3522},
	)

	session, err := svc.CreateSession(context.Background(), request_models.InitRequest{
		City:      "Paris",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
		Interests: []string{"Museum"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "Paris", session.City)
	assert.Equal(t, []float64{48.8566, 2.3522}, session.CityCoordinates)

	got, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestCreateSessionInvalidDates(t *testing.T) {
	svc := NewSessionService(
		mem.NewInMemorySessionStore(0),
		&stubGeocoder{},
	)

	_, err := svc.CreateSession(context.Background(), request_models.InitRequest{
		City:      "Paris",
		StartDate: "2024-06-05",
		EndDate:   "2024-06-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetSessionNotFound(t *testing.T) {
	svc := NewSessionService(
		mem.NewInMemorySessionStore(0),
		&stubGeocoder{},
	)

	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
