// Package service
package service

import (
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
)

type UserServiceInterface interface {
	CreateUser(req *RequestUserCreate) *ApiResponse[ResponseUserCreate]
	GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile]
	GetUserProfile(req *RequestUserProfile) *ApiResponse[ResponseUserProfile]
	GetUserList(req *RequestUserList) *ApiResponse[ResponseUserList]
	EditUserProfile(req *RequestUserEditProfile) *ApiResponse[ResponseUserEditProfile]
	EditCurrentProfile(req *RequestUserEditCurrent) *ApiResponse[ResponseUserEditCurrent]
	EditUserPassword(req *RequestUserEditPassword) *ApiResponse[ResponseUserEditPassword]
	DeleteUser(req *RequestUserDelete) *ApiResponse[ResponseUserDelete]
}

type RequestUserCreate struct {
	JwtHeader
	Username string `json:"username"`
	Password string `json:"password"`
	Level    int    `json:"level"`
}

type ResponseUserCreate operation.User

type RequestUserCurrentProfile struct {
	JwtHeader
}

type ResponseUserCurrentProfile operation.User

type RequestUserProfile struct {
	JwtHeader
	TargetUid uint `param:"uid"`
}

type ResponseUserProfile operation.User

type RequestUserList struct {
	JwtHeader
}

type ResponseUserList struct {
	Items []*operation.User `json:"items"`
	Total int               `json:"total"`
}

type RequestUserEditProfile struct {
	JwtHeader
	TargetUid uint    `param:"uid"`
	Username  *string `json:"username"`
	Level     *int    `json:"level"`
}

type ResponseUserEditProfile operation.User

// RequestUserEditCurrent is the self-service profile update. Level changes
// stay admin-only through RequestUserEditProfile.
type RequestUserEditCurrent struct {
	JwtHeader
	Username *string `json:"username"`
}

type ResponseUserEditCurrent operation.User

type RequestUserEditPassword struct {
	JwtHeader
	TargetUid   uint   `param:"uid"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ResponseUserEditPassword bool

type RequestUserDelete struct {
	JwtHeader
	TargetUid uint `param:"uid"`
}

type ResponseUserDelete bool
