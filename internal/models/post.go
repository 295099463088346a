package models

import "time"

// Post is a photo with a caption owned by a single user.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Photo     string    `gorm:"size:255;not null" json:"photo"`
	Caption   string    `gorm:"type:text" json:"caption"`
	CreatedAt time.Time `json:"created_at"`

	// LikesCount is filled by a subquery on read and is never stored.
	LikesCount int64 `gorm:"->;-:migration" json:"likes"`
}
