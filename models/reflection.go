package models

import "time"

// 情感标签取值
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Reflection 反思记录模型
type Reflection struct {
	ID                  string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID              string    `gorm:"type:varchar(50);index" json:"user_id"`
	Content             string    `gorm:"type:text" json:"content"`
	MoodScore           int       `json:"moodScore"` // 1-10
	Sentiment           string    `gorm:"type:varchar(20)" json:"sentiment"`
	SentimentConfidence float64   `json:"sentimentConfidence"`
	VoiceURL            *string   `gorm:"type:varchar(500)" json:"voiceUrl,omitempty"`
	CreatedAt           time.Time `gorm:"index" json:"createdAt"`
}
