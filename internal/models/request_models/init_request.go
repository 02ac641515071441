package request_models

type InitRequest struct {
	City      string   `json:"city" binding:"required"`
	StartDate string   `json:"startDate" binding:"required"`
	EndDate   string   `json:"endDate" binding:"required"`
	Interests []string `json:"interests"`
}
