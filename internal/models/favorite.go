package models

import "time"

type Favorite struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;index:idx_favorites_user_movie" json:"user_id"`
	MovieID int64     `gorm:"not null;index:idx_favorites_user_movie" json:"movie_id"`
	AddedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"added_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
