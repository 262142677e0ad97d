package db

import (
	"fmt"                            // Error wrapping
	"payment_portal/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates or updates the users, user_accounts, user_qr_codes and transactions tables
func Migrate(gdb *gorm.DB) error {
	// Users first so the child tables can reference them
	if err := gdb.AutoMigrate(&domain.User{}, &domain.UserAccount{}, &domain.QRCode{}, &domain.Transaction{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
