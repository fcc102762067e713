package models

import "time"

// BodyFeedback 形体指导模型
type BodyFeedback struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(50);index" json:"user_id"`
	FrontImageURL string    `gorm:"type:varchar(500)" json:"frontImageUrl"`
	SideImageURL  string    `gorm:"type:varchar(500)" json:"sideImageUrl"`
	Preferences   string    `gorm:"type:text" json:"preferences"`
	Strengths     string    `gorm:"type:text" json:"strengths"`
	Weaknesses    string    `gorm:"type:text" json:"weaknesses"`
	WorkoutPlan   string    `gorm:"type:text" json:"workoutPlan"`
	NutritionPlan string    `gorm:"type:text" json:"nutritionPlan"`
	Motivation    string    `gorm:"type:text" json:"motivation"`
	CreatedAt     time.Time `json:"createdAt"`
}
