package domain

import "time"

// QRCode Model, a user may upload many; the newest one is served
type QRCode struct {
	ID         uint      `gorm:"primaryKey"`                                                       // Primary key
	UserID     uint      `gorm:"not null;index:idx_qr_user_uploaded,priority:1"`                   // Foreign key to User
	ImageData  []byte    `gorm:"not null"`                                                         // Raw image bytes
	Filename   string    `gorm:"size:255;not null"`                                                // Sanitised upload filename
	MimeType   string    `gorm:"size:100;not null"`                                                // Content type served back
	UploadedAt time.Time `gorm:"autoCreateTime;precision:6;index:idx_qr_user_uploaded,priority:2"` // Upload time, microsecond precision
}

// TableName pins the table name
func (QRCode) TableName() string {
	return "user_qr_codes"
}
