package controllers

import (
	"net/http"

	"github.com/armetcal/Meal-Tracker/services"

	"github.com/gin-gonic/gin"
)

type DailyGoalController struct {
	Goals *services.DailyGoalService
}

func NewDailyGoalController(gs *services.DailyGoalService) *DailyGoalController {
	return &DailyGoalController{Goals: gs}
}

// Upsert sets the goal for the weekday in the path, e.g. PUT /api/goals/Monday.
func (gc *DailyGoalController) Upsert(c *gin.Context) {
	var req services.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal, err := gc.Goals.Upsert(c.Param("day"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *DailyGoalController) List(c *gin.Context) {
	goals, err := gc.Goals.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Get returns the effective goal for a weekday, falling back to the default
// when none is stored.
func (gc *DailyGoalController) Get(c *gin.Context) {
	goal, err := gc.Goals.GetForDay(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"day_of_week":  goal.DayOfWeek,
		"protein":      goal.Protein,
		"carbs":        goal.Carbs,
		"fat":          goal.Fat,
		"calorie_goal": goal.CalorieGoal(),
	})
}
