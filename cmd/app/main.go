package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/yuqiannemo/WanderMind/cmd/fx/account_fx"
	"github.com/yuqiannemo/WanderMind/cmd/fx/ai_fx"
	"github.com/yuqiannemo/WanderMind/cmd/fx/db_fx"
	"github.com/yuqiannemo/WanderMind/cmd/fx/geocoder_fx"
	"github.com/yuqiannemo/WanderMind/cmd/fx/planner_fx"
	"github.com/yuqiannemo/WanderMind/cmd/fx/plans_fx"
	"github.com/yuqiannemo/WanderMind/cmd/fx/session_fx"
	"github.com/yuqiannemo/WanderMind/internal/api/controllers"
	"github.com/yuqiannemo/WanderMind/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		geocoder_fx.Module,
		session_fx.Module,
		planner_fx.Module,
		account_fx.Module,
		plans_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	sessionController *controllers.SessionController,
	plannerController *controllers.PlannerController,
	accountController *controllers.AccountController,
	savedPlanController *controllers.SavedPlanController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{ai_fx.GetEnvWithDefault("CORS_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Trace-ID"},
		AllowCredentials: true,
	}))

	RegisterRoutes(r, sessionController, plannerController, accountController, savedPlanController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	plannerController *controllers.PlannerController,
	accountController *controllers.AccountController,
	savedPlanController *controllers.SavedPlanController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "WanderMind API is running"})
	})

	api := r.Group("/api")
	api.POST("/init", sessionController.InitHandler)
	api.POST("/recommend", plannerController.RecommendHandler)
	api.POST("/route", plannerController.RouteHandler)
	api.POST("/refine", plannerController.RefineHandler)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	plansGroup := api.Group("/plans")
	plansGroup.Use(middleware.JWTAuthMiddleware())
	plansGroup.POST("", savedPlanController.SavePlan)
	plansGroup.GET("", savedPlanController.ListPlans)
	plansGroup.GET("/:planId", savedPlanController.GetPlanById)
}
