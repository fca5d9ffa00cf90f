package routes

import (
	"net/http"
	"time"

	"github.com/armetcal/Meal-Tracker/controllers"
	"github.com/armetcal/Meal-Tracker/middlewares"
	"github.com/armetcal/Meal-Tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Hub      *services.RealtimeHub
	Recipes  *services.RecipeService
	Logs     *services.MealLogService
	Goals    *services.DailyGoalService
	Progress *services.ProgressService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rc := controllers.NewRecipeController(d.Recipes)
	mc := controllers.NewMealLogController(d.Logs)
	gc := controllers.NewDailyGoalController(d.Goals)
	pc := controllers.NewProgressController(d.Progress)
	ws := controllers.NewRealtimeController(d.Hub)

	api := r.Group("/api")
	{
		api.POST("/recipes", rc.Create)
		api.GET("/recipes", rc.List)
		api.GET("/recipes/:id", rc.Get)
		api.PUT("/recipes/:id", rc.Update)
		api.DELETE("/recipes/:id", rc.Delete)

		api.POST("/logs", mc.Log)
		api.GET("/logs", mc.List)
		api.GET("/logs/recent", mc.Recent)
		api.DELETE("/logs/:id", mc.Delete)

		api.GET("/goals", gc.List)
		api.GET("/goals/:day", gc.Get)
		api.PUT("/goals/:day", gc.Upsert)

		// computed views, cached until the next write
		views := api.Group("")
		views.Use(middlewares.ViewCache(5 * time.Minute))
		{
			views.GET("/progress", pc.ForDate)
			views.GET("/calendar", pc.Calendar)
		}
	}

	r.GET("/ws", ws.ChangesWS)

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if sqlDB, err := d.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "unreachable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now(),
			"database":    dbStatus,
			"subscribers": d.Hub.ClientCount(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
