package database

import (
	"context"
	"time"

	. "github.com/flightline-dev/flightline/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewTokenOperation(db *gorm.DB, queryTimeout time.Duration) *TokenOperation {
	return &TokenOperation{db: db, queryTimeout: queryTimeout}
}

func (tokenOperation *TokenOperation) RevokeToken(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), tokenOperation.queryTimeout)
	defer cancel()
	// Re-revoking the same token is a no-op.
	return tokenOperation.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&RevokedToken{Token: token}).Error
}

func (tokenOperation *TokenOperation) IsTokenRevoked(token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), tokenOperation.queryTimeout)
	defer cancel()
	var count int64
	err := tokenOperation.db.WithContext(ctx).
		Model(&RevokedToken{}).
		Where("token = ?", token).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
