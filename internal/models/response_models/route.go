package response_models

// RouteStop is one visit in an itinerary. TravelTimeToNext is nil for the
// last stop of each day; the absence is preserved as emitted by the model,
// never coerced to zero.
type RouteStop struct {
	Attraction       Attraction `json:"attraction"`
	Order            int        `json:"order"`
	Day              int        `json:"day"`
	StartTime        string     `json:"startTime"`
	EndTime          string     `json:"endTime"`
	TravelTimeToNext *int       `json:"travelTimeToNext"`
}

// TravelRoute is an ordered, day-grouped sequence of attraction visits.
// TotalDuration is always recomputed from the retained stops.
type TravelRoute struct {
	Stops         []RouteStop `json:"stops"`
	TotalDuration float64     `json:"totalDuration"`
	Summary       string      `json:"summary"`
}
