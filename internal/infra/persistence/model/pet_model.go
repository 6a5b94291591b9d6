package model

import "time"

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID                   int64  `gorm:"primaryKey"`
	Name                 string `gorm:"type:varchar(100);not null"`
	Species              string `gorm:"type:varchar(50);not null"`
	Breed                string `gorm:"type:varchar(50)"`
	Age                  int
	Size                 string `gorm:"type:varchar(20)"`
	Description          string `gorm:"type:text"`
	ImageURL             string `gorm:"type:text"`
	OwnerID              int64  `gorm:"index"`
	AvailableForAdoption bool   `gorm:"default:true"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}

// AdoptionModel mirrors the 'adoptions' table.
type AdoptionModel struct {
	ID        int64  `gorm:"primaryKey"`
	PetID     int64  `gorm:"not null;index"`
	AdopterID int64  `gorm:"not null;index"`
	Status    string `gorm:"type:varchar(50);not null;default:pending"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdoptionModel) TableName() string {
	return "adoptions"
}
