package notes

import "time"

// Note belongs to exactly one user. There is no update operation; notes are
// appended and deleted.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Note) TableName() string { return "notes.notes" }
