package controllers

import (
	"net/http"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 认证控制器
type AuthController struct{}

// Login 按用户名查找或创建用户并签发JWT
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	result := config.DB.Where("username = ?", req.Username).First(&user)
	if result.Error != nil {
		// 创建新用户
		user = models.User{
			ID:        utils.GenerateID(),
			Username:  req.Username,
			Email:     req.Email,
			CreatedAt: time.Now().UTC(),
		}
		if err := config.DB.Create(&user).Error; err != nil {
			config.Logger.Errorw("用户创建失败", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
			return
		}
	}

	now := time.Now().UTC()
	if err := config.DB.Model(&user).Update("last_login", &now).Error; err != nil {
		config.Logger.Warnw("更新登录时间失败", "error", err, "uid", user.ID)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("生成令牌失败", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成令牌失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"onboarded": user.Onboarded,
		},
	})
}
