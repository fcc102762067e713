package models

import "time"

// Habit 习惯模型
type Habit struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Frequency string    `gorm:"type:varchar(20);default:daily" json:"frequency"` // daily, weekly
	Archived  bool      `gorm:"default:false" json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}

// HabitCompletion 习惯打卡记录，每个习惯每天最多一条
type HabitCompletion struct {
	ID      string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	HabitID string    `gorm:"type:varchar(50);index:idx_habit_date,unique" json:"habit_id"`
	UserID  string    `gorm:"type:varchar(50);index" json:"user_id"`
	Date    time.Time `gorm:"index:idx_habit_date,unique" json:"date"` // UTC零点
}
