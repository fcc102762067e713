package models

import "time"

// InsightReport 洞察报告模型
type InsightReport struct {
	ID              string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID          string    `gorm:"index:idx_insight_user_window" json:"user_id"`
	Period          string    `gorm:"type:varchar(20);index:idx_insight_user_window" json:"period"` // daily, weekly, monthly
	WindowStart     time.Time `gorm:"index:idx_insight_user_window" json:"windowStart"`
	WindowEnd       time.Time `json:"windowEnd"`
	Summary         string    `gorm:"type:text" json:"summary"`
	Motivation      string    `gorm:"type:text" json:"motivation"`
	Recommendations string    `gorm:"type:text" json:"-"` // JSON数组
	ReflectionCount int       `json:"reflectionCount"`
	AverageMood     float64   `json:"averageMood"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (InsightReport) TableName() string {
	return "insight_reports"
}
