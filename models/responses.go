package models

import "time"

// SentimentResponse 情感分析响应结构体
type SentimentResponse struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// HabitResponse 习惯响应结构体，附带当前连续天数
type HabitResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Frequency      string    `json:"frequency"`
	CurrentStreak  int       `json:"currentStreak"`
	CompletedToday bool      `json:"completedToday"`
	CreatedAt      time.Time `json:"createdAt"`
}

// InsightReportResponse 洞察报告响应结构体
type InsightReportResponse struct {
	ID              string    `json:"id"`
	Period          string    `json:"period"`
	WindowStart     time.Time `json:"windowStart"`
	WindowEnd       time.Time `json:"windowEnd"`
	Summary         string    `json:"summary"`
	Motivation      string    `json:"motivation"`
	Recommendations []string  `json:"recommendations"`
	ReflectionCount int       `json:"reflectionCount"`
	AverageMood     float64   `json:"averageMood"`
	CreatedAt       time.Time `json:"createdAt"`
}

// StyleFeedbackResponse 穿搭点评响应结构体
type StyleFeedbackResponse struct {
	ID          string   `json:"id"`
	ImageURL    string   `json:"imageUrl"`
	Comments    []string `json:"comments"`
	Suggestions []string `json:"suggestions"`
	Rating      int      `json:"rating"`
	Fallback    bool     `json:"fallback"` // 是否为兜底结果
}

// RecapStatusResponse 视频任务状态响应结构体
type RecapStatusResponse struct {
	JobID    string  `json:"jobId"`
	Status   string  `json:"status"`
	VideoURL *string `json:"videoUrl,omitempty"`
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	SelectedGoals []string `json:"selectedGoals"`
	Onboarded     bool     `json:"onboarded"`
}
