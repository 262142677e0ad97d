package service

import (
	"context"                        // Request scoped store access
	"errors"                         // Error inspection
	"payment_portal/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// DefaultMimeType is stored when the uploader gives none
const DefaultMimeType = "application/octet-stream"

// StoreQRCode saves a new QR image for userID; earlier uploads are kept
func (s *AccountService) StoreQRCode(ctx context.Context, userID uint, data []byte, filename, mimeType string) error {
	switch {
	case userID == 0:
		return newError(ErrValidation, "user_id is required")
	case len(data) == 0:
		return newError(ErrValidation, "Empty file")
	case filename == "":
		return newError(ErrValidation, "Empty filename")
	}
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	qr := domain.QRCode{UserID: userID, ImageData: data, Filename: filename, MimeType: mimeType}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Owner must exist; a foreign key violation is mapped the same way
		if err := tx.Select("user_id").Where("user_id = ?", userID).Take(&domain.User{}).Error; err != nil {
			return err
		}
		return tx.Create(&qr).Error
	})
	if err != nil {
		return storeError("store qr code", err)
	}
	return nil
}

// GetLatestQRCode returns the bytes and MIME type of the user's newest upload
func (s *AccountService) GetLatestQRCode(ctx context.Context, userID uint) ([]byte, string, error) {
	var qr domain.QRCode
	err := s.db.WithContext(ctx).
		Select("id", "image_data", "mime_type").
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Order("id DESC"). // Same timestamp: latest insert wins
		Limit(1).
		Take(&qr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", &Error{Kind: ErrNotFound, Message: "QR code not found", Err: err}
	} else if err != nil {
		return nil, "", storeError("find qr code", err)
	}
	return qr.ImageData, qr.MimeType, nil
}
