package auth

import (
	"fmt"

	"github.com/shadowwalkertech/noteboard/internal/db"
	"gorm.io/gorm"
)

func Init(gdb *gorm.DB) error {
	if err := db.EnsureSchema(gdb, "app_auth"); err != nil {
		return fmt.Errorf("ensure schema app_auth: %w", err)
	}
	if err := gdb.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("auto-migrate auth tables: %w", err)
	}
	return nil
}
