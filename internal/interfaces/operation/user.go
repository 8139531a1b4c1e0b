// Package operation
package operation

import (
	"errors"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound no user matches the lookup
	ErrUserNotFound = errors.New("user does not exist")
	// ErrUsernameTaken username uniqueness pre-check failed
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUsernameCheck username uniqueness pre-check could not run
	ErrUsernameCheck = errors.New("username check error")
	// ErrPasswordEncode password hashing failed
	ErrPasswordEncode = errors.New("password encode error")
	// ErrOldPassword submitted original password does not match
	ErrOldPassword = errors.New("old password error")
)

// UserOperationInterface is the user collection access contract.
type UserOperationInterface interface {
	// GetUserByUid fetches a user by primary key, user is valid when err is nil
	GetUserByUid(uid uint) (user *User, err error)
	// GetUserByUsername fetches a user by exact (case-sensitive) username
	GetUserByUsername(username string) (user *User, err error)
	// GetUsers returns all users
	GetUsers() (users []*User, err error)
	// NewUser builds a user with a hashed password, nothing is persisted yet
	NewUser(username, password string, level AuthLevel) (user *User, err error)
	// AddUser persists a user after the uniqueness pre-check, in one transaction
	AddUser(user *User) (err error)
	// UpdateUserInfo applies a partial column update to the user row
	UpdateUserInfo(user *User, info map[string]interface{}) (err error)
	// UpdateUserPassword hashes and stores a replacement password
	UpdateUserPassword(user *User, newPassword string) (err error)
	// DeleteUser removes the user row; the caller decides about cascades
	DeleteUser(user *User) (err error)
	// VerifyUserPassword compares a candidate password against the stored hash
	VerifyUserPassword(user *User, password string) (pass bool)
	// IsUsernameTaken runs the uniqueness pre-check, optionally inside tx
	IsUsernameTaken(tx *gorm.DB, username string) (taken bool, err error)
	// HasAdminUser reports whether any admin-level account exists
	HasAdminUser() (exists bool, err error)
}
