package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ImageURL  string    `json:"image_url"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	Comments  []Comment `json:"comments" gorm:"foreignKey:PostID"`
	Likes     []Like    `json:"likes" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
