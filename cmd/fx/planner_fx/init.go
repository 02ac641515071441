package planner_fx

import (
	"go.uber.org/fx"

	"github.com/yuqiannemo/WanderMind/internal/api/controllers"
	"github.com/yuqiannemo/WanderMind/internal/services"
	"github.com/yuqiannemo/WanderMind/pkg/geocoder"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

var Module = fx.Provide(
	providePlannerService,
	providePlannerController)

func providePlannerService(
	sessionService services.SessionServiceInterface,
	aiClient utils.AIClientInterface,
	geocoder geocoder.GeocoderInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(sessionService, aiClient, geocoder, nil)
}

func providePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}
