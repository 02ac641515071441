package response_models

// Attraction is a point of interest proposed by the model and enriched with a
// stable id and coordinates. Once enriched, ID and Coordinates do not change
// for the lifetime of the instance. Coordinates mirrors Latitude/Longitude
// for clients that consume the pair view.
type Attraction struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DurationHr  float64   `json:"duration_hr"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Coordinates []float64 `json:"coordinates"`
}

type RecommendResponse struct {
	Attractions []Attraction `json:"attractions"`
}
