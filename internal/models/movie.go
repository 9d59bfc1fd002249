package models

import "time"

type Movie struct {
	ID     int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title  string  `json:"title" gorm:"not null"`
	Genre  *string `json:"genre,omitempty"`
	Author *string `json:"author,omitempty"`

	// Rating is derived: the mean of all comment ratings rounded to two
	// decimal places, or 0 when the movie has no comments. It is recomputed
	// after every comment insertion or deletion.
	Rating float64 `json:"rating" gorm:"type:decimal(4,2);default:0"`

	VideoURL string `json:"video_url" gorm:"not null;index"`
	ImageURL string `json:"image_url" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
