package domain

import "time"

// User Model
type User struct {
	UserID       uint          `gorm:"primaryKey"`                                                               // Primary key
	Username     string        `gorm:"size:100;not null"`                                                        // Display name
	Email        string        `gorm:"size:255;uniqueIndex;not null"`                                            // Unique login email
	PasswordHash string        `gorm:"column:password;size:255;not null" json:"-"`                               // bcrypt digest, never the plaintext
	CreatedAt    time.Time     `gorm:"autoCreateTime"`                                                           // Signup time
	Account      *UserAccount  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-one account
	QRCodes      []QRCode      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Uploaded QR codes
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Transaction history
}

// TableName pins the table name
func (User) TableName() string {
	return "users"
}
