package plans_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/yuqiannemo/WanderMind/internal/api/controllers"
	"github.com/yuqiannemo/WanderMind/internal/repositories"
	"github.com/yuqiannemo/WanderMind/internal/services"
)

var Module = fx.Provide(
	provideSavedPlanRepo,
	provideSavedPlanService,
	provideSavedPlanController)

func provideSavedPlanRepo(db *gorm.DB) repositories.ISavedPlanRepository {
	return repositories.NewSavedPlanRepository(db)
}

func provideSavedPlanService(planRepo repositories.ISavedPlanRepository) services.SavedPlanServiceInterface {
	return services.NewSavedPlanService(planRepo)
}

func provideSavedPlanController(planService services.SavedPlanServiceInterface) *controllers.SavedPlanController {
	return controllers.NewSavedPlanController(planService)
}
