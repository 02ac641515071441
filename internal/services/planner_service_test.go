package services

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuqiannemo/WanderMind/internal/models/request_models"
	"github.com/yuqiannemo/WanderMind/internal/models/response_models"
	mem "github.com/yuqiannemo/WanderMind/pkg/memcache"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

// fakeAIClient returns a canned response, or an error.
type fakeAIClient struct {
	response string
	err      error

	lastSystemPrompt string
	lastUserPrompt   string
}

func (f *fakeAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastUserPrompt = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const (
	parisLat = 48.8566
	parisLng = 2.3522
)

func newTestPlanner(t *testing.T, ai *fakeAIClient) (PlannerServiceInterface, string) {
	t.Helper()

	gc := &stubGeocoder{lat: parisLat, lng: parisLng}
	sessions := NewSessionService(mem.NewInMemorySessionStore(0), gc)

	session, err := sessions.CreateSession(context.Background(), request_models.InitRequest{
		City:      "Paris",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
		Interests: []string{"Museum"},
	})
	require.NoError(t, err)

	planner := NewPlannerService(sessions, ai, gc, rand.New(rand.NewSource(42)))
	return planner, session.SessionID
}

func TestRecommendAttractions(t *testing.T) {
	ai := &fakeAIClient{response: "```json\n" + `[
  {"name": "Louvre Museum", "description": "World's largest art museum.", "duration_hr": 3, "category": "Museum"},
  {"name": "Eiffel Tower", "description": "Iconic iron tower.", "duration_hr": 2, "category": "Architecture"},
  {"name": "Musee d'Orsay", "description": "Impressionist masterpieces.", "duration_hr": 2.5, "category": "Museum"}
]` + "\n```"}

	planner, sessionID := newTestPlanner(t, ai)

	attractions, err := planner.RecommendAttractions(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, attractions, 3)

	assert.Contains(t, ai.lastUserPrompt, "Location: Paris")
	assert.Contains(t, ai.lastUserPrompt, "Duration: 3 days")

	for _, a := range attractions {
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, []float64{a.Latitude, a.Longitude}, a.Coordinates)
	}

	// Every id is unique.
	seen := map[string]bool{}
	for _, a := range attractions {
		assert.False(t, seen[a.ID])
		seen[a.ID] = true
	}
}

func TestRecommendAttractionsJitter(t *testing.T) {
	// The stub geocoder puts every attraction at the city center, so all
	// items after the first must be nudged off it.
	ai := &fakeAIClient{response: `[
  {"name": "A", "description": "a", "duration_hr": 1, "category": "Museum"},
  {"name": "B", "description": "b", "duration_hr": 1, "category": "Museum"},
  {"name": "C", "description": "c", "duration_hr": 1, "category": "Museum"}
]`}

	planner, sessionID := newTestPlanner(t, ai)

	attractions, err := planner.RecommendAttractions(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, attractions, 3)

	// First item sits exactly at the city center.
	assert.Equal(t, parisLat, attractions[0].Latitude)
	assert.Equal(t, parisLng, attractions[0].Longitude)

	for _, a := range attractions[1:] {
		assert.NotEqual(t, parisLat, a.Latitude)
		assert.NotEqual(t, parisLng, a.Longitude)
		assert.LessOrEqual(t, math.Abs(a.Latitude-parisLat), 0.02)
		assert.LessOrEqual(t, math.Abs(a.Longitude-parisLng), 0.02)
	}
}

func TestRecommendAttractionsMissingFieldFailsBatch(t *testing.T) {
	ai := &fakeAIClient{response: `[
  {"name": "Louvre Museum", "description": "Art.", "duration_hr": 3, "category": "Museum"},
  {"name": "Eiffel Tower", "description": "Tower."}
]`}

	planner, sessionID := newTestPlanner(t, ai)

	_, err := planner.RecommendAttractions(context.Background(), sessionID)
	assert.ErrorIs(t, err, utils.ErrMalformedAIResponse)
}

func TestRecommendAttractionsAIFailure(t *testing.T) {
	ai := &fakeAIClient{err: errors.New("rate limited")}
	planner, sessionID := newTestPlanner(t, ai)

	_, err := planner.RecommendAttractions(context.Background(), sessionID)
	assert.ErrorIs(t, err, utils.ErrAIService)
}

func TestRecommendAttractionsUnknownSession(t *testing.T) {
	planner, _ := newTestPlanner(t, &fakeAIClient{response: "[]"})

	_, err := planner.RecommendAttractions(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestGenerateRoute(t *testing.T) {
	ai := &fakeAIClient{response: "```json\n" + `{
  "stops": [
    {"attraction_name": "Louvre Museum", "order": 1, "day": 1, "startTime": "09:00", "endTime": "12:00", "travelTimeToNext": 20},
    {"attraction_name": "Made Up Castle", "order": 2, "day": 1, "startTime": "12:30", "endTime": "14:00", "travelTimeToNext": 10},
    {"attraction_name": "Eiffel Tower", "order": 3, "day": 2, "startTime": "09:00", "endTime": "11:00", "travelTimeToNext": null}
  ],
  "summary": "Two days of Paris highlights."
}` + "\n```"}

	planner, sessionID := newTestPlanner(t, ai)

	route, err := planner.GenerateRoute(context.Background(), sessionID, candidateAttractions())
	require.NoError(t, err)

	require.Len(t, route.Stops, 2)
	assert.Equal(t, "Louvre Museum", route.Stops[0].Attraction.Name)
	assert.Equal(t, "Eiffel Tower", route.Stops[1].Attraction.Name)
	assert.Equal(t, 5.0, route.TotalDuration)
	assert.Equal(t, "Two days of Paris highlights.", route.Summary)
	assert.Nil(t, route.Stops[1].TravelTimeToNext)

	assert.Less(t, route.Stops[0].Order, route.Stops[1].Order)
}

func TestGenerateRouteTooFewAttractions(t *testing.T) {
	planner, sessionID := newTestPlanner(t, &fakeAIClient{response: "{}"})

	_, err := planner.GenerateRoute(context.Background(), sessionID, candidateAttractions()[:1])
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateRouteMalformedResponse(t *testing.T) {
	planner, sessionID := newTestPlanner(t, &fakeAIClient{response: "Sorry, I can't plan that."})

	_, err := planner.GenerateRoute(context.Background(), sessionID, candidateAttractions())
	assert.ErrorIs(t, err, utils.ErrMalformedAIResponse)
}

func TestRefineRoute(t *testing.T) {
	ai := &fakeAIClient{response: `{
  "stops": [
    {"attraction_name": "Eiffel Tower", "order": 1, "day": 1, "startTime": "10:00", "endTime": "12:00", "travelTimeToNext": null},
    {"attraction_name": "Notre-Dame", "order": 2, "day": 1, "startTime": "13:00", "endTime": "14:00", "travelTimeToNext": null}
  ]
}`}

	planner, sessionID := newTestPlanner(t, ai)

	current := response_models.TravelRoute{
		Stops: []response_models.RouteStop{
			{Attraction: response_models.Attraction{ID: "a2", Name: "Eiffel Tower", DurationHr: 2}, Order: 1, Day: 1, StartTime: "09:00", EndTime: "11:00"},
			{Attraction: response_models.Attraction{ID: "a1", Name: "Louvre Museum", DurationHr: 3}, Order: 2, Day: 1, StartTime: "11:30", EndTime: "14:30"},
		},
		TotalDuration: 5,
		Summary:       "Original plan",
	}

	route, err := planner.RefineRoute(context.Background(), sessionID, "drop the Louvre", current)
	require.NoError(t, err)

	assert.Contains(t, ai.lastUserPrompt, "Day 1, Stop 1: Eiffel Tower (09:00-11:00)")
	assert.Contains(t, ai.lastUserPrompt, "User Request: drop the Louvre")

	// Notre-Dame was not part of the current route, so it cannot appear.
	require.Len(t, route.Stops, 1)
	assert.Equal(t, "Eiffel Tower", route.Stops[0].Attraction.Name)
	assert.Equal(t, 2.0, route.TotalDuration)
	assert.Equal(t, refineSummaryFallback, route.Summary)
}

func TestRefineRouteUnknownSession(t *testing.T) {
	planner, _ := newTestPlanner(t, &fakeAIClient{response: "{}"})

	_, err := planner.RefineRoute(context.Background(), "missing", "anything", response_models.TravelRoute{})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
