package main

import (
	"github.com/armetcal/Meal-Tracker/cache"
	"github.com/armetcal/Meal-Tracker/config"
	"github.com/armetcal/Meal-Tracker/routes"
	"github.com/armetcal/Meal-Tracker/services"
	"github.com/armetcal/Meal-Tracker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	defer utils.Logger.Sync()
	utils.InitMetrics()

	utils.Logger.Info("starting_application")

	db, err := config.InitDB()
	if err != nil {
		utils.Logger.Fatal("database_init_failed", zap.Error(err))
	}

	// view cache is optional; keep running without it
	if err := cache.InitRedis(utils.Logger); err != nil {
		utils.Logger.Warn("view_cache_disabled", zap.Error(err))
	}
	defer cache.Close()

	hub := services.NewRealtimeHub()
	bus := services.NewChangeBus(hub, utils.Logger)

	recipeSvc := services.NewRecipeService(db, bus)
	logSvc := services.NewMealLogService(db, bus)
	goalSvc := services.NewDailyGoalService(db, bus, utils.Logger)
	progressSvc := services.NewProgressService(db)

	if err := goalSvc.SeedDefaults(); err != nil {
		utils.Logger.Fatal("goal_seeding_failed", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	r := routes.SetupRouter(routes.Deps{
		DB:       db,
		Hub:      hub,
		Recipes:  recipeSvc,
		Logs:     logSvc,
		Goals:    goalSvc,
		Progress: progressSvc,
	})

	addr := config.ListenAddr()
	utils.Logger.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		utils.Logger.Fatal("server_stopped", zap.Error(err))
	}
}
