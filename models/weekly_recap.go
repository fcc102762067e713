package models

import "time"

// 周报视频状态
const (
	RecapStatusPending    = "pending"
	RecapStatusProcessing = "processing"
	RecapStatusCompleted  = "completed"
	RecapStatusFailed     = "failed"
)

// WeeklyRecap 周报回顾模型，视频生成完成前 VideoURL 为空
type WeeklyRecap struct {
	ID         string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID     string    `gorm:"index:idx_recap_user_week,unique" json:"user_id"`
	WeekStart  time.Time `gorm:"index:idx_recap_user_week,unique" json:"weekStart"`
	WeekEnd    time.Time `json:"weekEnd"`
	Script     string    `gorm:"type:text" json:"script"`
	VideoJobID string    `gorm:"type:varchar(100)" json:"videoJobId"`
	VideoURL   *string   `gorm:"type:varchar(500)" json:"videoUrl,omitempty"`
	Status     string    `gorm:"type:varchar(20);default:pending" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (WeeklyRecap) TableName() string {
	return "weekly_recaps"
}
