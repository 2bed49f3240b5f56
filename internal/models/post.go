package models

import "gorm.io/gorm"

type Post struct {
	gorm.Model

	UserID   uint   `gorm:"not null;index"`
	Title    string `gorm:"uniqueIndex;not null"`
	Subtitle string `gorm:"not null"`
	Date     string `gorm:"not null"` // display date, stamped once at creation
	Body     string `gorm:"type:text;not null"`
	ImgURL   string `gorm:"not null"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
