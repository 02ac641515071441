package response_models

type SavedPlanResponse struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	City      string      `json:"city"`
	CreatedAt int64       `json:"created_at"`
	Route     TravelRoute `json:"route"`
}
