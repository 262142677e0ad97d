package service

import (
	"context"                        // Request scoped store access
	"errors"                         // Error inspection
	"payment_portal/internal/cache"  // Optional listing cache
	"payment_portal/internal/domain" // Importing domain models
	"payment_portal/internal/utils"  // Password hashing
	"strings"                        // Presence checks

	"github.com/shopspring/decimal" // Money amounts
	"gorm.io/gorm"                  // GORM ORM library
)

// AccountService owns the business rules for users, balances and QR codes
type AccountService struct {
	db    *gorm.DB     // Pooled store handle
	cache *cache.Cache // Transaction aggregate cache, nil when disabled
}

// NewAccountService builds the service; c may be nil
func NewAccountService(db *gorm.DB, c *cache.Cache) *AccountService {
	return &AccountService{db: db, cache: c}
}

// Identity is what a successful login reveals about the user
type Identity struct {
	UserID   uint
	Username string
}

// AccountSummary holds the balances of a user account
type AccountSummary struct {
	MainBalance    decimal.Decimal
	SavingsBalance decimal.Decimal
	CreditBalance  decimal.Decimal
	RewardPoints   int64
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// CreateUser registers a user and its zero-balance account in one transaction and returns the new id
func (s *AccountService) CreateUser(ctx context.Context, username, email, password string) (uint, error) {
	if blank(username, email, password) {
		return 0, newError(ErrValidation, "All fields are required")
	}
	// Hash before opening the transaction so bcrypt does not hold a connection
	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return 0, newError(ErrValidation, "Password must be at most 72 bytes")
	} else if err != nil {
		return 0, &Error{Kind: ErrStore, Message: "hash password", Err: err}
	}
	user := domain.User{Username: username, Email: email, PasswordHash: hash}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		// Check for a taken email; the unique index still guards concurrent signups
		if err := tx.Model(&domain.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return newError(ErrConflict, "Email already exists")
		}
		if err := tx.Create(&user).Error; err != nil {
			return err // Return error to rollback
		}
		// Every user gets exactly one account, balances default to zero
		account := domain.UserAccount{UserID: user.UserID}
		if err := tx.Create(&account).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	if err != nil {
		return 0, storeError("create user", err)
	}
	return user.UserID, nil
}

// Authenticate checks the credentials and returns the user's identity; no session is created
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	if blank(email, password) {
		return Identity{}, newError(ErrValidation, "Email and password required")
	}
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return Identity{}, storeError("find user", err)
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return Identity{}, newError(ErrAuth, "Invalid credentials")
	}
	return Identity{UserID: user.UserID, Username: user.Username}, nil
}

// GetAccountSummary returns the balances of the user's account
func (s *AccountService) GetAccountSummary(ctx context.Context, userID uint) (AccountSummary, error) {
	var account domain.UserAccount
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&account).Error; err != nil {
		return AccountSummary{}, storeError("find account", err)
	}
	return AccountSummary{
		MainBalance:    account.MainBalance,
		SavingsBalance: account.SavingsBalance,
		CreditBalance:  account.CreditBalance,
		RewardPoints:   account.RewardPoints,
	}, nil
}

// GetUsername returns the username of userID
func (s *AccountService) GetUsername(ctx context.Context, userID uint) (string, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Select("user_id", "username").Where("user_id = ?", userID).Take(&user).Error; err != nil {
		return "", storeError("find user", err)
	}
	return user.Username, nil
}
