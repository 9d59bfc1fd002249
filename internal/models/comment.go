package models

import "time"

type Comment struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID int64  `json:"movie_id" gorm:"not null;index"`
	Author  string `json:"author" gorm:"not null"` // display name, not a foreign key
	Content string `json:"content" gorm:"not null;type:text"`

	// Rating is clamped to [1,5] at the service layer, never rejected.
	Rating int `json:"rating" gorm:"not null;default:3;check:rating >= 1 AND rating <= 5"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Movie Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
