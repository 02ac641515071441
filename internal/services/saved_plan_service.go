package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/yuqiannemo/WanderMind/internal/models/db_models"
	"github.com/yuqiannemo/WanderMind/internal/models/request_models"
	"github.com/yuqiannemo/WanderMind/internal/models/response_models"
	"github.com/yuqiannemo/WanderMind/internal/repositories"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

type SavedPlanServiceInterface interface {
	SavePlan(ctx context.Context, accountID string, request request_models.SavePlanRequest) (*response_models.SavedPlanResponse, error)
	ListPlans(ctx context.Context, accountID string) ([]response_models.SavedPlanResponse, error)
	GetPlanById(ctx context.Context, accountID string, planID string) (*response_models.SavedPlanResponse, error)
}

type SavedPlanService struct {
	planRepo repositories.ISavedPlanRepository
}

func NewSavedPlanService(planRepo repositories.ISavedPlanRepository) SavedPlanServiceInterface {
	return &SavedPlanService{planRepo: planRepo}
}

func (s *SavedPlanService) SavePlan(ctx context.Context, accountID string, request request_models.SavePlanRequest) (*response_models.SavedPlanResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	routeJSON, err := json.Marshal(request.Route)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	plan := &db_models.SavedPlan{
		AccountID: ownerID,
		Title:     request.Title,
		City:      request.City,
		Route:     routeJSON,
	}

	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildSavedPlanResponse(plan)
}

func (s *SavedPlanService) ListPlans(ctx context.Context, accountID string) ([]response_models.SavedPlanResponse, error) {
	plans, err := s.planRepo.ListByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedPlanResponse, 0, len(plans))
	for _, plan := range plans {
		resp, err := buildSavedPlanResponse(&plan)
		if err != nil {
			log.Printf("Skipping plan %s with unreadable route: %v", plan.ID, err)
			continue
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *SavedPlanService) GetPlanById(ctx context.Context, accountID string, planID string) (*response_models.SavedPlanResponse, error) {
	plan, err := s.planRepo.FindByIdForAccount(ctx, planID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	return buildSavedPlanResponse(plan)
}

func buildSavedPlanResponse(plan *db_models.SavedPlan) (*response_models.SavedPlanResponse, error) {
	var route response_models.TravelRoute
	if err := json.Unmarshal(plan.Route, &route); err != nil {
		return nil, err
	}

	return &response_models.SavedPlanResponse{
		ID:        plan.ID.String(),
		Title:     plan.Title,
		City:      plan.City,
		CreatedAt: plan.CreatedAt,
		Route:     route,
	}, nil
}
