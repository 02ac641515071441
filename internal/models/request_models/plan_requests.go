package request_models

import (
	"github.com/yuqiannemo/WanderMind/internal/models/response_models"
)

type RecommendRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type RouteRequest struct {
	SessionID   string                       `json:"session_id" binding:"required"`
	Attractions []response_models.Attraction `json:"attractions" binding:"required"`
}

type RefineRequest struct {
	SessionID    string                      `json:"session_id" binding:"required"`
	Message      string                      `json:"message" binding:"required"`
	CurrentRoute response_models.TravelRoute `json:"current_route" binding:"required"`
}

type SavePlanRequest struct {
	Title string                      `json:"title" binding:"required"`
	City  string                      `json:"city" binding:"required"`
	Route response_models.TravelRoute `json:"route" binding:"required"`
}
