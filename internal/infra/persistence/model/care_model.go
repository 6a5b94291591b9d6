package model

import "time"

// CareServiceModel mirrors the 'services' table.
type CareServiceModel struct {
	ID              int64   `gorm:"primaryKey"`
	Name            string  `gorm:"type:varchar(100);not null"`
	Description     string  `gorm:"type:text"`
	Price           float64 `gorm:"not null"`
	DurationMinutes int
	Category        string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CareServiceModel) TableName() string {
	return "services"
}

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"not null;index"`
	ServiceID   int64     `gorm:"not null;index"`
	BookingDate time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(50);not null;default:pending"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
