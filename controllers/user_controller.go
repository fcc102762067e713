package controllers

import (
	"net/http"
	"strings"

	"AuraGo/config"
	"AuraGo/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

// GetUser 返回当前用户资料
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(&user)})
}

// UpdateUser 更新用户名、目标和引导完成标记
func (uc *UserController) UpdateUser(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.SelectedGoals != nil {
		updates["selected_goals"] = strings.Join(req.SelectedGoals, ",")
	}
	if req.Onboarded != nil {
		updates["onboarded"] = *req.Onboarded
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "没有需要更新的字段"})
		return
	}

	// 所有权由 where 条件保证，uid 来自认证上下文
	if err := config.DB.Model(&models.User{}).Where("id = ?", uid).Updates(updates).Error; err != nil {
		config.Logger.Errorw("更新用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新用户信息失败"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(&user)})
}

func toUserResponse(user *models.User) models.UserResponse {
	goals := []string{}
	if user.SelectedGoals != "" {
		goals = strings.Split(user.SelectedGoals, ",")
	}
	return models.UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		SelectedGoals: goals,
		Onboarded:     user.Onboarded,
	}
}
