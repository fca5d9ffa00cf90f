package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/armetcal/Meal-Tracker/nutrition"
	"github.com/armetcal/Meal-Tracker/services"

	"github.com/gin-gonic/gin"
)

type MealLogController struct {
	Logs *services.MealLogService
}

func NewMealLogController(ls *services.MealLogService) *MealLogController {
	return &MealLogController{Logs: ls}
}

func (mc *MealLogController) Log(c *gin.Context) {
	var req services.MealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log, err := mc.Logs.Log(req)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// List returns all logs, or one day's logs when ?date=YYYY-MM-DD is given.
func (mc *MealLogController) List(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		if _, err := nutrition.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		logs, err := mc.Logs.ListByDate(date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	logs, err := mc.Logs.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (mc *MealLogController) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	logs, err := mc.Logs.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (mc *MealLogController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := mc.Logs.Delete(id); err != nil {
		if errors.Is(err, services.ErrMealLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
