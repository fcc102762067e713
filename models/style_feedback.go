package models

import "time"

// StyleFeedback 穿搭点评模型
type StyleFeedback struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index" json:"user_id"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"imageUrl"`
	Comments    string    `gorm:"type:text" json:"-"` // JSON数组
	Suggestions string    `gorm:"type:text" json:"-"` // JSON数组
	Rating      int       `json:"rating"`             // 1-10
	CreatedAt   time.Time `json:"createdAt"`
}
