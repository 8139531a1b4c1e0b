package database

import (
	"context"
	"errors"
	"time"

	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	. "github.com/flightline-dev/flightline/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserOperation struct {
	config       *c.DatabaseConfig
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewUserOperation(db *gorm.DB, queryTimeout time.Duration, config *c.DatabaseConfig) *UserOperation {
	return &UserOperation{config: config, db: db, queryTimeout: queryTimeout}
}

func (userOperation *UserOperation) GetUserByUid(uid uint) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("id = ?", uid).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUserByUsername(username string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("username = ?", username).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUsers() (users []*User, err error) {
	users = make([]*User, 0)
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Order("id").Find(&users).Error
	return
}

func (userOperation *UserOperation) NewUser(username, password string, level AuthLevel) (user *User, err error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), userOperation.config.BcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	user = &User{
		Username: username,
		Password: string(encodePassword),
		Level:    int(level),
	}
	return
}

func (userOperation *UserOperation) AddUser(user *User) error {
	return userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		taken, err := userOperation.IsUsernameTaken(tx, user.Username)
		if err != nil {
			return ErrUsernameCheck
		}

		if taken {
			return ErrUsernameTaken
		}

		ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Create(user).Error
	})
}

func (userOperation *UserOperation) UpdateUserInfo(user *User, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Model(user).Updates(info).Error
}

func (userOperation *UserOperation) UpdateUserPassword(user *User, newPassword string) error {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), userOperation.config.BcryptCost)
	if err != nil {
		return ErrPasswordEncode
	}
	user.Password = string(encodePassword)
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Model(user).Update("password", user.Password).Error
}

func (userOperation *UserOperation) DeleteUser(user *User) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Delete(user).Error
}

func (userOperation *UserOperation) VerifyUserPassword(user *User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

func (userOperation *UserOperation) IsUsernameTaken(tx *gorm.DB, username string) (bool, error) {
	if tx == nil {
		tx = userOperation.db
	}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()

	var count int64
	err := tx.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", username).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (userOperation *UserOperation) HasAdminUser() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()

	var count int64
	err := userOperation.db.WithContext(ctx).
		Model(&User{}).
		Where("level >= ?", int(LevelAdmin)).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
