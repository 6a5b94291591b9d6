// Package model holds the GORM persistence models mirroring the database
// tables. Domain entities are mapped to and from these at the repository
// boundary so the domain stays free of GORM concerns.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(150);unique;not null"`
	PasswordHash string `gorm:"type:text;not null"`
	Role         string `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
