package controllers

import (
	"errors"
	"net/http"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/services"

	"github.com/gin-gonic/gin"
)

// RecapController 周报视频控制器
type RecapController struct {
	recap  *services.RecapService
	poller *services.RecapPoller
	video  *services.VideoService
}

func NewRecapController(recap *services.RecapService, poller *services.RecapPoller, video *services.VideoService) *RecapController {
	return &RecapController{
		recap:  recap,
		poller: poller,
		video:  video,
	}
}

// StartRecap 生成周报脚本并提交视频任务，随后启动后台轮询。
// 同一用户同时只允许一个在途任务。
func (rc *RecapController) StartRecap(c *gin.Context) {
	uid := c.GetString("uid")

	acquired, err := rc.poller.AcquireLease(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取轮询租约失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务暂时不可用"})
		return
	}
	if !acquired {
		c.JSON(http.StatusConflict, gin.H{"error": "已有视频任务在生成中"})
		return
	}

	recap, err := rc.recap.StartRecap(c.Request.Context(), uid, time.Now().UTC())
	if err != nil {
		rc.poller.ReleaseLease(uid)
		if errors.Is(err, services.ErrNotEnoughReflections) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "本周反思记录不足，至少需要3条",
			})
			return
		}
		if errors.Is(err, services.ErrRecapAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{"error": "本周周报已生成"})
			return
		}
		config.Logger.Errorw("创建周报任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusBadGateway, gin.H{"error": "创建周报任务失败", "details": err.Error()})
		return
	}

	// 轮询上下文由轮询器自身管理，不随本次请求结束
	rc.poller.Start(uid, recap.ID, recap.VideoJobID)

	c.JSON(http.StatusOK, gin.H{"recap": recap})
}

// CancelRecap 取消在途的视频轮询，记录标记为失败后本周可重新发起
func (rc *RecapController) CancelRecap(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var recap models.WeeklyRecap
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&recap).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "周报不存在"})
		return
	}

	if !rc.poller.Cancel(uid) {
		c.JSON(http.StatusConflict, gin.H{"error": "没有进行中的视频任务"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "视频任务已取消"})
}

// GetStatus 代理查询视频任务状态
func (rc *RecapController) GetStatus(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var recap models.WeeklyRecap
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&recap).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "周报不存在"})
		return
	}

	status, err := rc.video.GetStatus(c.Request.Context(), recap.VideoJobID)
	if err != nil {
		config.Logger.Errorw("查询视频状态失败", "error", err, "recapID", id)
		c.JSON(http.StatusBadGateway, gin.H{"error": "查询视频状态失败", "details": err.Error()})
		return
	}

	response := models.RecapStatusResponse{
		JobID:  recap.VideoJobID,
		Status: status.Status,
	}
	if status.VideoURL != "" {
		response.VideoURL = &status.VideoURL
	}

	c.JSON(http.StatusOK, response)
}

// PersistVideo 回写视频地址（与轮询器的回写互为兜底）
func (rc *RecapController) PersistVideo(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var req models.PersistVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.WeeklyRecap{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]interface{}{
			"video_url": req.VideoURL,
			"status":    models.RecapStatusCompleted,
		})
	if result.Error != nil {
		config.Logger.Errorw("回写视频地址失败", "error", result.Error, "recapID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "回写视频地址失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "周报不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "视频地址已保存"})
}

// ListRecaps 查询当前用户的周报列表
func (rc *RecapController) ListRecaps(c *gin.Context) {
	uid := c.GetString("uid")

	var recaps []models.WeeklyRecap
	if err := config.DB.Where("user_id = ?", uid).
		Order("week_start desc").Limit(50).Find(&recaps).Error; err != nil {
		config.Logger.Errorw("查询周报失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询周报失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recaps": recaps})
}
