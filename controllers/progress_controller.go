package controllers

import (
	"net/http"
	"time"

	"github.com/armetcal/Meal-Tracker/middlewares"
	"github.com/armetcal/Meal-Tracker/nutrition"
	"github.com/armetcal/Meal-Tracker/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(ps *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: ps}
}

// ForDate serves GET /api/progress?date=YYYY-MM-DD, defaulting to today.
func (pc *ProgressController) ForDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = nutrition.FormatDate(time.Now())
	}
	if _, err := nutrition.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	progress, err := pc.Progress.ForDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

type calendarQuery struct {
	Year  int `form:"year" validate:"required,gte=1970,lte=2200"`
	Month int `form:"month" validate:"required,gte=1,lte=12"`
}

// Calendar serves GET /api/calendar?year=2024&month=3.
func (pc *ProgressController) Calendar(c *gin.Context) {
	var q calendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := middlewares.ValidateStruct(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	overview, err := pc.Progress.Month(q.Year, time.Month(q.Month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}
