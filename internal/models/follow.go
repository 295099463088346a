package models

import "time"

// Follow is a directed edge: UserID follows FollowerID.
// The column names mirror the legacy schema, where "follower" is the followed user.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID" json:"-"`
	FollowerID uint      `gorm:"not null;index" json:"follower_id"`
	Follower   *User     `gorm:"foreignKey:FollowerID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowCounts summarises both directions of the follow graph for one user.
type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
