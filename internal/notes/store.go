package notes

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Store persists notes.
type Store interface {
	// Append creates a note for the owner and returns its id. Blank or
	// whitespace-only content is dropped silently: Append returns id 0 and no
	// error, and nothing is written.
	Append(ctx context.Context, ownerID uint, content string) (uint, error)

	// ListByOwner returns the owner's notes in insertion order.
	ListByOwner(ctx context.Context, ownerID uint) ([]Note, error)

	// Delete removes the note by id. A missing id is a no-op. Ownership is not
	// checked here; the dashboard only ever links a user's own notes.
	Delete(ctx context.Context, noteID uint) error
}

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Append(ctx context.Context, ownerID uint, content string) (uint, error) {
	if strings.TrimSpace(content) == "" {
		return 0, nil
	}
	note := Note{Content: content, OwnerID: ownerID}
	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return 0, fmt.Errorf("create note: %w", err)
	}
	return note.ID, nil
}

func (s *GormStore) ListByOwner(ctx context.Context, ownerID uint) ([]Note, error) {
	var list []Note
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return list, nil
}

func (s *GormStore) Delete(ctx context.Context, noteID uint) error {
	if err := s.db.WithContext(ctx).Delete(&Note{}, noteID).Error; err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
