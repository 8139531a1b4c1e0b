// Package service
package service

import (
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
)

type AuthServiceInterface interface {
	UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin]
	UserLogout(req *RequestUserLogout) *ApiResponse[ResponseUserLogout]
	TokenRefresh(req *RequestTokenRefresh) *ApiResponse[ResponseTokenRefresh]
}

type RequestUserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResponseUserLogin struct {
	User         *operation.User `json:"user"`
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
}

// RequestUserLogout carries the raw token strings so they can be
// blacklisted verbatim. The access token comes from the Authorization
// header, the refresh token from the body when the client still has one.
type RequestUserLogout struct {
	JwtHeader
	AccessToken  string
	RefreshToken string `json:"refresh_token"`
}

type ResponseUserLogout bool

type RequestTokenRefresh struct {
	RefreshToken string `json:"refresh_token"`
}

type ResponseTokenRefresh struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
