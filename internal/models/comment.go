package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	UserID uint   `gorm:"not null;index"`
	PostID uint   `gorm:"not null;index"`
	Text   string `gorm:"type:text;not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
