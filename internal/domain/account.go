package domain

import "github.com/shopspring/decimal"

// UserAccount Model, one per user
type UserAccount struct {
	UserID         uint            `gorm:"primaryKey;autoIncrement:false"`        // Primary key and foreign key to User
	MainBalance    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"` // Main balance
	SavingsBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"` // Savings balance
	CreditBalance  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"` // Credit balance
	RewardPoints   int64           `gorm:"not null;default:0"`                    // Reward points
}

// TableName pins the table name
func (UserAccount) TableName() string {
	return "user_accounts"
}
