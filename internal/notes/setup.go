package notes

import (
	"fmt"

	"github.com/shadowwalkertech/noteboard/internal/db"
	"gorm.io/gorm"
)

func Init(gdb *gorm.DB) error {
	if err := db.EnsureSchema(gdb, "notes"); err != nil {
		return fmt.Errorf("ensure schema notes: %w", err)
	}
	if err := gdb.AutoMigrate(&Note{}); err != nil {
		return fmt.Errorf("auto-migrate notes tables: %w", err)
	}
	return nil
}
