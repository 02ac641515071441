package services

import (
	"fmt"

	"github.com/yuqiannemo/WanderMind/internal/models/response_models"
)

// aiAttraction is the recommendation shape the model is asked to emit.
type aiAttraction struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationHr  float64 `json:"duration_hr"`
	Category    string  `json:"category"`
}

// validate checks the fields the enricher requires. A failure rejects the
// whole batch: the model response is treated as one atomic unit of work.
func (a aiAttraction) validate() error {
	if a.Name == "" {
		return fmt.Errorf("attraction missing name")
	}
	if a.Description == "" {
		return fmt.Errorf("attraction %q missing description", a.Name)
	}
	if a.DurationHr <= 0 {
		return fmt.Errorf("attraction %q missing duration_hr", a.Name)
	}
	if a.Category == "" {
		return fmt.Errorf("attraction %q missing category", a.Name)
	}
	return nil
}

// aiRoute is the itinerary shape the model is asked to emit.
type aiRoute struct {
	Stops   []aiRouteStop `json:"stops"`
	Summary string        `json:"summary"`
}

type aiRouteStop struct {
	AttractionName   string `json:"attraction_name"`
	Order            int    `json:"order"`
	Day              int    `json:"day"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	TravelTimeToNext *int   `json:"travelTimeToNext"`
}

// attractionLookup builds the name index used to match model stops back to
// caller-known attractions.
func attractionLookup(attractions []response_models.Attraction) map[string]response_models.Attraction {
	lookup := make(map[string]response_models.Attraction, len(attractions))
	for _, a := range attractions {
		lookup[a.Name] = a
	}
	return lookup
}

// buildRouteFromPlan assembles a TravelRoute from the model's proposed stops.
//
// Matching policy is DropUnmatchedStops: a stop whose attraction_name is not
// in the catalog is silently discarded, so every surviving stop is traceable
// to a real attraction while the pipeline stays forgiving of hallucinated or
// renamed stops. Order and day values are trusted as emitted; stops are not
// renumbered or re-sorted. A route where every stop was dropped is a valid
// empty result, not an error.
//
// TotalDuration is recomputed from the surviving stops; a model-reported
// total is never used.
func buildRouteFromPlan(plan aiRoute, catalog map[string]response_models.Attraction, defaultSummary string) response_models.TravelRoute {
	stops := make([]response_models.RouteStop, 0, len(plan.Stops))
	totalDuration := 0.0

	for _, stop := range plan.Stops {
		attraction, ok := catalog[stop.AttractionName]
		if !ok {
			continue
		}
		stops = append(stops, response_models.RouteStop{
			Attraction:       attraction,
			Order:            stop.Order,
			Day:              stop.Day,
			StartTime:        stop.StartTime,
			EndTime:          stop.EndTime,
			TravelTimeToNext: stop.TravelTimeToNext,
		})
		totalDuration += attraction.DurationHr
	}

	summary := plan.Summary
	if summary == "" {
		summary = defaultSummary
	}

	return response_models.TravelRoute{
		Stops:         stops,
		TotalDuration: totalDuration,
		Summary:       summary,
	}
}
