package service

import (
	"context"                        // Request scoped store access
	"payment_portal/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Money amounts
	"github.com/sirupsen/logrus"    // Logrus for structured logging
)

const spendStatsKey = "users:spend" // Cache key of the per-user transaction aggregates

// UserStats is one row of the users listing
type UserStats struct {
	UserID           uint                `json:"user_id"`
	Username         string              `json:"username"`
	Email            string              `json:"email"`
	TransactionCount int64               `json:"transaction_count"`
	TotalSpent       decimal.NullDecimal `json:"total_spent"` // Invalid when the user has no transactions
}

// spendStats is the transaction aggregate of one user, the only part of the listing that is cached
type spendStats struct {
	UserID           uint                `json:"user_id"`
	TransactionCount int64               `json:"transaction_count"`
	TotalSpent       decimal.NullDecimal `json:"total_spent"`
}

// ListUsersWithStats returns every user with their transaction count and total spent
func (s *AccountService) ListUsersWithStats(ctx context.Context) ([]UserStats, error) {
	var stats []UserStats
	// User rows are always read from the store
	err := s.db.WithContext(ctx).
		Model(&domain.User{}).
		Select("user_id", "username", "email").
		Order("user_id").
		Scan(&stats).Error
	if err != nil {
		return nil, &Error{Kind: ErrStore, Message: "list users", Err: err}
	}
	spend, err := s.spendByUser(ctx)
	if err != nil {
		return nil, err
	}
	// Left outer join: users without transactions keep a zero count and no total
	for i := range stats {
		if agg, ok := spend[stats[i].UserID]; ok {
			stats[i].TransactionCount = agg.TransactionCount
			stats[i].TotalSpent = agg.TotalSpent
		}
	}
	return stats, nil
}

// spendByUser aggregates transactions per user, served from the cache when enabled
func (s *AccountService) spendByUser(ctx context.Context) (map[uint]spendStats, error) {
	var rows []spendStats
	found, err := s.cache.Get(ctx, spendStatsKey, &rows)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("Users cache read failed")
	}
	if !found || err != nil {
		rows = nil
		err = s.db.WithContext(ctx).
			Model(&domain.Transaction{}).
			Select("user_id, COUNT(transaction_id) AS transaction_count, SUM(amount) AS total_spent").
			Group("user_id").
			Scan(&rows).Error
		if err != nil {
			return nil, &Error{Kind: ErrStore, Message: "list users", Err: err}
		}
		if err := s.cache.Set(ctx, spendStatsKey, rows); err != nil {
			logrus.WithField("error", err.Error()).Warn("Users cache write failed")
		}
	}
	byUser := make(map[uint]spendStats, len(rows))
	for _, r := range rows {
		byUser[r.UserID] = r
	}
	return byUser, nil
}
