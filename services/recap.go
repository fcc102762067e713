package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AuraGo/config"
	"AuraGo/models"
	"AuraGo/utils"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"gorm.io/gorm"
)

// 生成周报视频的前置条件：本周至少3条反思记录
const MinReflectionsForRecap = 3

// videoJobCreator 周报服务对视频厂商的最小依赖
type videoJobCreator interface {
	CreateJob(ctx context.Context, script string) (*VideoJob, error)
}

// RecapService 周报视频服务：生成脚本并提交视频任务
type RecapService struct {
	client *LLMClient
	video  videoJobCreator

	// 数据访问可注入，便于测试
	loadReflections func(uid string, window utils.TimeWindow) ([]models.Reflection, error)
	findForWeek     func(uid string, weekStart time.Time) (*models.WeeklyRecap, error)
	save            func(recap *models.WeeklyRecap, replace bool) error
}

func NewRecapService(client *LLMClient, video *VideoService) *RecapService {
	s := &RecapService{client: client, video: video}
	s.loadReflections = s.loadWeekReflections
	s.findForWeek = s.findRecapForWeek
	s.save = s.saveRecap
	return s
}

// ErrNotEnoughReflections 本周反思记录不足，不满足生成条件
var ErrNotEnoughReflections = fmt.Errorf("not enough reflections this week")

// ErrRecapAlreadyCompleted 本周已有生成完毕的周报，不再重复提交
var ErrRecapAlreadyCompleted = fmt.Errorf("recap already completed this week")

const recapScriptPrompt = `你是一位温暖的生活记录者。请根据用户本周的反思记录，写一段口播脚本，要求：
1.以"这一周"开头，用第二人称
2.回顾情绪起伏和值得纪念的瞬间
3.结尾给一句期待下周的话
4.口语化，适合朗读，60-90秒的长度（约200字）
5.禁用markdown格式，直接输出脚本正文，不要任何额外说明`

// StartRecap 校验前置条件，生成脚本，提交视频任务并落库。
// 每用户每周至多一条周报记录：上一次任务失败（或被定时任务标记失败）后重试，
// 复用同一条记录重新提交，而不是再插入一行；已完成的周不再重复生成。
// 任务提交后立即返回，不等待视频生成（轮询见 RecapPoller）。
func (s *RecapService) StartRecap(ctx context.Context, uid string, now time.Time) (*models.WeeklyRecap, error) {
	window := utils.WeeklyWindow(now)

	existing, err := s.findForWeek(uid, window.Start)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.RecapStatusCompleted {
		return nil, ErrRecapAlreadyCompleted
	}

	reflections, err := s.loadReflections(uid, window)
	if err != nil {
		return nil, err
	}
	if len(reflections) < MinReflectionsForRecap {
		return nil, ErrNotEnoughReflections
	}

	script, err := s.generateScript(ctx, reflections)
	if err != nil {
		return nil, err
	}

	job, err := s.video.CreateJob(ctx, script)
	if err != nil {
		return nil, err
	}

	recap := models.WeeklyRecap{
		ID:         utils.GenerateID(),
		UserID:     uid,
		WeekStart:  window.Start,
		WeekEnd:    window.End,
		Script:     script,
		VideoJobID: job.JobID,
		VideoURL:   nil, // 视频完成后由轮询器回写
		Status:     models.RecapStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	replace := existing != nil
	if replace {
		recap.ID = existing.ID
	}

	if err := s.save(&recap, replace); err != nil {
		return nil, fmt.Errorf("保存周报记录失败: %v", err)
	}

	return &recap, nil
}

func (s *RecapService) loadWeekReflections(uid string, window utils.TimeWindow) ([]models.Reflection, error) {
	var reflections []models.Reflection
	if err := config.DB.Where("user_id = ? AND created_at BETWEEN ? AND ?",
		uid, window.Start, window.End).
		Order("created_at asc").
		Find(&reflections).Error; err != nil {
		return nil, fmt.Errorf("查询反思记录失败: %v", err)
	}
	return reflections, nil
}

func (s *RecapService) findRecapForWeek(uid string, weekStart time.Time) (*models.WeeklyRecap, error) {
	var recap models.WeeklyRecap
	err := config.DB.Where("user_id = ? AND week_start = ?", uid, weekStart).First(&recap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询周报记录失败: %v", err)
	}
	return &recap, nil
}

// saveRecap 落库：重试时更新本周已有记录（user_id+week_start唯一索引），否则新建
func (s *RecapService) saveRecap(recap *models.WeeklyRecap, replace bool) error {
	if replace {
		return config.DB.Model(&models.WeeklyRecap{}).
			Where("id = ?", recap.ID).
			Updates(map[string]interface{}{
				"script":       recap.Script,
				"video_job_id": recap.VideoJobID,
				"video_url":    nil,
				"status":       models.RecapStatusPending,
				"created_at":   recap.CreatedAt,
			}).Error
	}
	return config.DB.Create(recap).Error
}

func (s *RecapService) generateScript(ctx context.Context, reflections []models.Reflection) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(recapScriptPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(formatReflections(reflections))},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.8))
	if err != nil {
		return "", fmt.Errorf("生成周报脚本失败: %v", err)
	}

	script := firstChoice(response)
	if script == "" {
		return "", fmt.Errorf("周报脚本内容为空")
	}
	return script, nil
}
