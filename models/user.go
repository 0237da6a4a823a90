package models

import (
	"time"
)

type User struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"` // Don't expose password in JSON
	Name        string     `gorm:"not null" json:"name"`
	AvatarURL   string     `json:"avatar_url"`
	Bio         string     `json:"bio"`
	Location    string     `json:"location"`
	DateOfBirth *time.Time `json:"date_of_birth"`

	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:UserID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:UserID"`

	// Follow edges where this user is the target / the source.
	Followers []Follow `json:"followers,omitempty" gorm:"foreignKey:FollowingID"`
	Following []Follow `json:"following,omitempty" gorm:"foreignKey:FollowerID"`
}
