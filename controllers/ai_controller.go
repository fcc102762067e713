package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/services"
	"AuraGo/utils"

	"github.com/gin-gonic/gin"
)

// AIController AI代理控制器：情感分析、语音转写/合成、图像点评
type AIController struct {
	speech   *services.SpeechService
	critique *services.CritiqueService
	storage  *services.StorageClient
}

func NewAIController(speech *services.SpeechService, critique *services.CritiqueService, storage *services.StorageClient) *AIController {
	return &AIController{
		speech:   speech,
		critique: critique,
		storage:  storage,
	}
}

// AnalyzeSentiment 本地情感分类，不经过任何厂商
func (ac *AIController) AnalyzeSentiment(c *gin.Context) {
	var req models.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := services.ClassifySentiment(req.Text)
	c.JSON(http.StatusOK, models.SentimentResponse{
		Sentiment:  result.Sentiment,
		Confidence: result.Confidence,
	})
}

// Transcribe 语音转写：multipart音频透传给语音厂商
func (ac *AIController) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少音频文件"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取音频失败"})
		return
	}

	text, err := ac.speech.Transcribe(c.Request.Context(), header.Filename, audio)
	if err != nil {
		config.Logger.Errorw("语音转写失败", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "语音转写失败", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Synthesize 语音合成：合成后上传存储并返回公开地址
func (ac *AIController) Synthesize(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := ac.speech.Synthesize(c.Request.Context(), uid, req.Text)
	if err != nil {
		config.Logger.Errorw("语音合成失败", "error", err, "uid", uid)
		c.JSON(http.StatusBadGateway, gin.H{"error": "语音合成失败", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"voiceUrl": url})
}

// UploadImage 上传图片到对象存储，返回公开地址
func (ac *AIController) UploadImage(c *gin.Context) {
	uid := c.GetString("uid")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少图片文件"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取图片失败"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	path := uid + "/" + utils.GenerateID()
	url, err := ac.storage.Upload(c.Request.Context(), services.BucketImages, path, contentType, data)
	if err != nil {
		config.Logger.Errorw("图片上传失败", "error", err, "uid", uid)
		c.JSON(http.StatusBadGateway, gin.H{"error": "图片上传失败", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// CritiqueOutfit 穿搭点评并落库
func (ac *AIController) CritiqueOutfit(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.OutfitCritiqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	critique := ac.critique.CritiqueOutfit(c.Request.Context(), req.ImageURL)

	comments, _ := json.Marshal(critique.Comments)
	suggestions, _ := json.Marshal(critique.Suggestions)
	feedback := models.StyleFeedback{
		ID:          utils.GenerateID(),
		UserID:      uid,
		ImageURL:    req.ImageURL,
		Comments:    string(comments),
		Suggestions: string(suggestions),
		Rating:      critique.Rating,
		CreatedAt:   time.Now().UTC(),
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		config.Logger.Errorw("保存穿搭点评失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存穿搭点评失败"})
		return
	}

	c.JSON(http.StatusOK, models.StyleFeedbackResponse{
		ID:          feedback.ID,
		ImageURL:    feedback.ImageURL,
		Comments:    critique.Comments,
		Suggestions: critique.Suggestions,
		Rating:      critique.Rating,
		Fallback:    critique.Fallback,
	})
}

// CritiqueBody 形体指导并落库
func (ac *AIController) CritiqueBody(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.BodyCritiqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	critique := ac.critique.CritiqueBody(c.Request.Context(), req.FrontImageURL, req.SideImageURL, req.Preferences)

	feedback := models.BodyFeedback{
		ID:            utils.GenerateID(),
		UserID:        uid,
		FrontImageURL: req.FrontImageURL,
		SideImageURL:  req.SideImageURL,
		Preferences:   req.Preferences,
		Strengths:     critique.Strengths,
		Weaknesses:    critique.Weaknesses,
		WorkoutPlan:   critique.WorkoutPlan,
		NutritionPlan: critique.NutritionPlan,
		Motivation:    critique.Motivation,
		CreatedAt:     time.Now().UTC(),
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		config.Logger.Errorw("保存形体指导失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存形体指导失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback": feedback,
		"fallback": critique.Fallback,
	})
}

// GetBodyPlan 展示层解析：把存储的计划文本拆成按天/按餐的结构。
// 结果是尽力而为的展示数据，不回写数据库。
func (ac *AIController) GetBodyPlan(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var feedback models.BodyFeedback
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&feedback).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workout":   services.ParseWorkoutPlan(feedback.WorkoutPlan),
		"nutrition": services.ParseMealPlan(feedback.NutritionPlan),
	})
}
