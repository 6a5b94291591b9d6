package model

import "time"

// ListingModel mirrors the 'listings' table.
type ListingModel struct {
	ID          int64  `gorm:"primaryKey"`
	SellerID    int64  `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(150);not null"`
	Species     string `gorm:"type:varchar(50);not null"`
	Breed       string `gorm:"type:varchar(50)"`
	Price       float64
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
