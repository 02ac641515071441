package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuqiannemo/WanderMind/internal/models/request_models"
	"github.com/yuqiannemo/WanderMind/internal/models/response_models"
	"github.com/yuqiannemo/WanderMind/internal/services"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// RecommendHandler returns AI-proposed attractions for a session.
func (p *PlannerController) RecommendHandler(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	attractions, err := p.plannerService.RecommendAttractions(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.RecommendResponse{Attractions: attractions},
		"Recommendations generated successfully")
}

// RouteHandler sequences the selected attractions into an itinerary.
func (p *PlannerController) RouteHandler(c *gin.Context) {
	var req request_models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id and attractions are required")
		return
	}

	if len(req.Attractions) < 2 {
		utils.RespondError(c, http.StatusBadRequest, "At least 2 attractions required")
		return
	}

	route, err := p.plannerService.GenerateRoute(c.Request.Context(), req.SessionID, req.Attractions)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route generated successfully")
}

// RefineHandler adjusts an existing route from user feedback.
func (p *PlannerController) RefineHandler(c *gin.Context) {
	var req request_models.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id, message and current_route are required")
		return
	}

	route, err := p.plannerService.RefineRoute(c.Request.Context(), req.SessionID, req.Message, req.CurrentRoute)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route refined successfully")
}
