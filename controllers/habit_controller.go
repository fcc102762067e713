package controllers

import (
	"net/http"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/utils"

	"github.com/gin-gonic/gin"
)

type HabitController struct{}

// CreateHabit 创建习惯
func (hc *HabitController) CreateHabit(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit := models.Habit{
		ID:        utils.GenerateID(),
		UserID:    uid,
		Name:      req.Name,
		Frequency: req.Frequency,
		CreatedAt: time.Now().UTC(),
	}

	if err := config.DB.Create(&habit).Error; err != nil {
		config.Logger.Errorw("创建习惯失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建习惯失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// ListHabits 返回习惯列表，附带每个习惯的当前连续天数
func (hc *HabitController) ListHabits(c *gin.Context) {
	uid := c.GetString("uid")

	var habits []models.Habit
	if err := config.DB.Where("user_id = ? AND archived = false", uid).
		Order("created_at asc").Find(&habits).Error; err != nil {
		config.Logger.Errorw("查询习惯失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询习惯失败"})
		return
	}

	today := time.Now().UTC()
	responses := make([]models.HabitResponse, 0, len(habits))
	for _, habit := range habits {
		var completions []models.HabitCompletion
		if err := config.DB.Where("habit_id = ? AND user_id = ?", habit.ID, uid).
			Find(&completions).Error; err != nil {
			config.Logger.Errorw("查询打卡记录失败", "error", err, "habitID", habit.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "查询打卡记录失败"})
			return
		}

		dates := make([]time.Time, len(completions))
		completedToday := false
		todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		for i, completion := range completions {
			dates[i] = completion.Date
			if completion.Date.Equal(todayStart) {
				completedToday = true
			}
		}

		responses = append(responses, models.HabitResponse{
			ID:             habit.ID,
			Name:           habit.Name,
			Frequency:      habit.Frequency,
			CurrentStreak:  utils.CurrentStreak(dates, today),
			CompletedToday: completedToday,
			CreatedAt:      habit.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"habits": responses})
}

// ToggleCompletion 切换某天的打卡状态：有则删，无则增
func (hc *HabitController) ToggleCompletion(c *gin.Context) {
	uid := c.GetString("uid")
	habitID := c.Param("id")

	var req models.ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 校验习惯归属
	var habit models.Habit
	if err := config.DB.Where("id = ? AND user_id = ?", habitID, uid).First(&habit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "习惯不存在"})
		return
	}

	date := req.Date.UTC()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var existing models.HabitCompletion
	err := config.DB.Where("habit_id = ? AND date = ?", habitID, day).First(&existing).Error
	if err == nil {
		// 已打卡则取消
		if err := config.DB.Delete(&existing).Error; err != nil {
			config.Logger.Errorw("取消打卡失败", "error", err, "habitID", habitID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取消打卡失败"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"completed": false})
		return
	}

	completion := models.HabitCompletion{
		ID:      utils.GenerateID(),
		HabitID: habitID,
		UserID:  uid,
		Date:    day,
	}
	if err := config.DB.Create(&completion).Error; err != nil {
		config.Logger.Errorw("打卡失败", "error", err, "habitID", habitID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "打卡失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": true})
}

// DeleteHabit 归档习惯（软删除，保留历史打卡）
func (hc *HabitController) DeleteHabit(c *gin.Context) {
	uid := c.GetString("uid")
	habitID := c.Param("id")

	result := config.DB.Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", habitID, uid).
		Update("archived", true)
	if result.Error != nil {
		config.Logger.Errorw("归档习惯失败", "error", result.Error, "habitID", habitID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "归档习惯失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "习惯不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "习惯已归档"})
}
