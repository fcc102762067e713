package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	insight *services.InsightService
}

func NewInsightController(insight *services.InsightService) *InsightController {
	return &InsightController{insight: insight}
}

// GenerateReport 生成洞察报告
func (ic *InsightController) GenerateReport(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := ic.insight.GenerateReport(c.Request.Context(), uid, req.Period, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrNoReflections) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "该时间段内没有反思记录"})
			return
		}
		config.Logger.Errorw("生成洞察报告失败", "error", err, "uid", uid)
		c.JSON(http.StatusBadGateway, gin.H{"error": "生成洞察报告失败", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": toInsightResponse(report)})
}

// ListReports 查询当前用户的报告列表
func (ic *InsightController) ListReports(c *gin.Context) {
	uid := c.GetString("uid")

	var reports []models.InsightReport
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at desc").Limit(50).Find(&reports).Error; err != nil {
		config.Logger.Errorw("查询洞察报告失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询洞察报告失败"})
		return
	}

	responses := make([]models.InsightReportResponse, len(reports))
	for i := range reports {
		responses[i] = toInsightResponse(&reports[i])
	}

	c.JSON(http.StatusOK, gin.H{"reports": responses})
}

func toInsightResponse(report *models.InsightReport) models.InsightReportResponse {
	var recommendations []string
	if err := json.Unmarshal([]byte(report.Recommendations), &recommendations); err != nil {
		recommendations = []string{}
	}
	return models.InsightReportResponse{
		ID:              report.ID,
		Period:          report.Period,
		WindowStart:     report.WindowStart,
		WindowEnd:       report.WindowEnd,
		Summary:         report.Summary,
		Motivation:      report.Motivation,
		Recommendations: recommendations,
		ReflectionCount: report.ReflectionCount,
		AverageMood:     report.AverageMood,
		CreatedAt:       report.CreatedAt,
	}
}
