// Package models contains the persistent domain types and the API error model.
package models

import "time"

// User is a registered account. Username is unique; JoinedOn is set on insert and never updated.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:80" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:80" json:"firstname"`
	LastName  string    `gorm:"size:80" json:"lastname"`
	Email     string    `gorm:"size:120" json:"email"`
	Location  string    `gorm:"size:120" json:"location"`
	Biography string    `gorm:"type:text" json:"biography"`
	Profile   string    `gorm:"size:255" json:"profile_photo"`
	JoinedOn  time.Time `gorm:"autoCreateTime;<-:create" json:"joined_on"`
}
