package model

import "time"

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	Message   string `gorm:"type:text;not null"`
	IsRead    bool   `gorm:"default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
