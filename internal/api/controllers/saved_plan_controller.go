package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuqiannemo/WanderMind/internal/models/request_models"
	"github.com/yuqiannemo/WanderMind/internal/services"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

type SavedPlanController struct {
	planService services.SavedPlanServiceInterface
}

func NewSavedPlanController(planService services.SavedPlanServiceInterface) *SavedPlanController {
	return &SavedPlanController{
		planService: planService,
	}
}

func (s *SavedPlanController) SavePlan(c *gin.Context) {
	var req request_models.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title, city and route are required")
		return
	}

	accountID := c.GetString("user_id")
	plan, err := s.planService.SavePlan(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan saved successfully")
}

func (s *SavedPlanController) ListPlans(c *gin.Context) {
	accountID := c.GetString("user_id")

	plans, err := s.planService.ListPlans(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (s *SavedPlanController) GetPlanById(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	accountID := c.GetString("user_id")
	plan, err := s.planService.GetPlanById(c.Request.Context(), accountID, planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}
