package auth

import "time"

// User is a registered account. Rows are created at registration and never
// updated or deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "app_auth.users" }
