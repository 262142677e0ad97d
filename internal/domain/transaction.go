package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction Model, read-only in this service
type Transaction struct {
	TransactionID uint            `gorm:"primaryKey"`                  // Primary key
	UserID        uint            `gorm:"not null;index"`              // Foreign key to User
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"` // Amount spent
	Type          string          `gorm:"size:32"`                     // Transaction type
	CreatedAt     time.Time       `gorm:"autoCreateTime"`              // Timestamp of creation
}

// TableName pins the table name
func (Transaction) TableName() string {
	return "transactions"
}
