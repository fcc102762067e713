package controllers

import (
	"net/http"
	"strconv"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/services"
	"AuraGo/utils"

	"github.com/gin-gonic/gin"
)

type ReflectionController struct{}

// CreateReflection 创建反思记录，入库前先跑本地情感分类
func (rc *ReflectionController) CreateReflection(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sentiment := services.ClassifySentiment(req.Content)

	// 归属用户取自认证上下文，不信任请求体
	reflection := models.Reflection{
		ID:                  utils.GenerateID(),
		UserID:              uid,
		Content:             req.Content,
		MoodScore:           req.MoodScore,
		Sentiment:           sentiment.Sentiment,
		SentimentConfidence: sentiment.Confidence,
		VoiceURL:            req.VoiceURL,
		CreatedAt:           time.Now().UTC(),
	}

	if err := config.DB.Create(&reflection).Error; err != nil {
		config.Logger.Errorw("保存反思记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存反思记录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflection": reflection})
}

// ListReflections 查询当前用户的反思记录，支持时间过滤和分页
func (rc *ReflectionController) ListReflections(c *gin.Context) {
	uid := c.GetString("uid")

	query := config.DB.Where("user_id = ?", uid)

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的时间格式"})
			return
		}
		query = query.Where("created_at >= ?", from)
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的时间格式"})
			return
		}
		query = query.Where("created_at <= ?", to)
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	var reflections []models.Reflection
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&reflections).Error; err != nil {
		config.Logger.Errorw("查询反思记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询反思记录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflections": reflections})
}

// DeleteReflection 删除自己的反思记录
func (rc *ReflectionController) DeleteReflection(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	result := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Reflection{})
	if result.Error != nil {
		config.Logger.Errorw("删除反思记录失败", "error", result.Error, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除反思记录失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
