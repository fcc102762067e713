package models

import (
	"fmt"
	"time"
)

// CreateReflectionRequest 创建反思记录请求结构体
type CreateReflectionRequest struct {
	Content   string  `json:"content" binding:"required"`
	MoodScore int     `json:"moodScore" binding:"required"`
	VoiceURL  *string `json:"voiceUrl"`
}

func (r *CreateReflectionRequest) Validate() error {
	if r.MoodScore < 1 || r.MoodScore > 10 {
		return fmt.Errorf("moodScore must be between 1 and 10")
	}
	return nil
}

// UpdateUserRequest 更新用户资料请求结构体
type UpdateUserRequest struct {
	Username      *string  `json:"username"`
	SelectedGoals []string `json:"selectedGoals"`
	Onboarded     *bool    `json:"onboarded"`
}

// CreateHabitRequest 创建习惯请求结构体
type CreateHabitRequest struct {
	Name      string `json:"name" binding:"required"`
	Frequency string `json:"frequency"`
}

func (r *CreateHabitRequest) Validate() error {
	if r.Frequency == "" {
		r.Frequency = "daily"
	}
	if r.Frequency != "daily" && r.Frequency != "weekly" {
		return fmt.Errorf("frequency must be daily or weekly")
	}
	return nil
}

// ToggleCompletionRequest 习惯打卡请求结构体
type ToggleCompletionRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// SentimentRequest 情感分析请求结构体
type SentimentRequest struct {
	Text string `json:"text" binding:"required"`
}

// SpeechRequest 语音合成请求结构体
type SpeechRequest struct {
	Text string `json:"text" binding:"required"`
}

// InsightRequest 洞察报告请求结构体
type InsightRequest struct {
	Period string `json:"period" binding:"required"` // daily, weekly, monthly
}

func (r *InsightRequest) Validate() error {
	validPeriods := map[string]bool{"daily": true, "weekly": true, "monthly": true}
	if !validPeriods[r.Period] {
		return fmt.Errorf("invalid period, must be one of: daily, weekly, monthly")
	}
	return nil
}

// OutfitCritiqueRequest 穿搭点评请求结构体
type OutfitCritiqueRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// BodyCritiqueRequest 形体指导请求结构体
type BodyCritiqueRequest struct {
	FrontImageURL string `json:"frontImageUrl" binding:"required"`
	SideImageURL  string `json:"sideImageUrl" binding:"required"`
	Preferences   string `json:"preferences"`
}

// PersistVideoRequest 视频地址回写请求结构体
type PersistVideoRequest struct {
	VideoURL string `json:"videoUrl" binding:"required"`
}

// LoginRequest 测试登录请求结构体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
}
