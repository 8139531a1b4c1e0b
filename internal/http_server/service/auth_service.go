// Package service
package service

import (
	"fmt"

	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
)

type AuthService struct {
	logger         log.LoggerInterface
	config         *c.HttpServerConfig
	userOperation  operation.UserOperationInterface
	tokenOperation operation.TokenOperationInterface
}

func NewAuthService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	userOperation operation.UserOperationInterface,
	tokenOperation operation.TokenOperationInterface,
) *AuthService {
	return &AuthService{
		logger:         logger,
		config:         config,
		userOperation:  userOperation,
		tokenOperation: tokenOperation,
	}
}

var (
	SuccessLogin   = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "login succeeded", HttpCode: Ok}
	SuccessLogout  = ApiStatus{StatusName: "LOGOUT_SUCCESS", Description: "logout succeeded", HttpCode: Ok}
	SuccessRefresh = ApiStatus{StatusName: "REFRESH_SUCCESS", Description: "token refreshed", HttpCode: Ok}
)

func (authService *AuthService) UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin] {
	if req.Username == "" || req.Password == "" {
		return NewApiResponse[ResponseUserLogin](&ErrIllegalParam, Unsatisfied, nil)
	}

	user, err := authService.userOperation.GetUserByUsername(req.Username)
	if err != nil {
		// Same answer as a wrong password, so usernames cannot be probed.
		return NewApiResponse[ResponseUserLogin](&ErrInvalidCredentials, Unsatisfied, nil)
	}

	if pass := authService.userOperation.VerifyUserPassword(user, req.Password); !pass {
		return NewApiResponse[ResponseUserLogin](&ErrInvalidCredentials, Unsatisfied, nil)
	}

	token := NewClaims(authService.config.JWT, user, false)
	refreshToken := NewClaims(authService.config.JWT, user, true)
	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseUserLogin{
		User:         user,
		Token:        token.GenerateKey(),
		RefreshToken: refreshToken.GenerateKey(),
	})
}

func (authService *AuthService) UserLogout(req *RequestUserLogout) *ApiResponse[ResponseUserLogout] {
	if req.AccessToken != "" {
		if err := authService.tokenOperation.RevokeToken(req.AccessToken); err != nil {
			authService.logger.ErrorF("AuthService.UserLogout revoke access token error: %v", err)
			return NewApiResponse[ResponseUserLogout](&ErrDatabaseFail, Unsatisfied, nil)
		}
	}
	if req.RefreshToken != "" {
		if err := authService.tokenOperation.RevokeToken(req.RefreshToken); err != nil {
			authService.logger.ErrorF("AuthService.UserLogout revoke refresh token error: %v", err)
			return NewApiResponse[ResponseUserLogout](&ErrDatabaseFail, Unsatisfied, nil)
		}
	}
	data := ResponseUserLogout(true)
	return NewApiResponse(&SuccessLogout, Unsatisfied, &data)
}

// ParseRefreshToken validates a raw refresh token against the refresh
// secret and returns its claims. Access tokens fail here because they are
// signed with a different secret.
func (authService *AuthService) ParseRefreshToken(rawToken string) (*Claims, *ApiStatus) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(authService.config.JWT.RefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, &ErrInvalidToken
	}
	if !claims.Refresh {
		return nil, &ErrInvalidToken
	}
	return claims, nil
}

func (authService *AuthService) TokenRefresh(req *RequestTokenRefresh) *ApiResponse[ResponseTokenRefresh] {
	if req.RefreshToken == "" {
		return NewApiResponse[ResponseTokenRefresh](&ErrLackParam, Unsatisfied, nil)
	}

	claims, status := authService.ParseRefreshToken(req.RefreshToken)
	if status != nil {
		return NewApiResponse[ResponseTokenRefresh](status, Unsatisfied, nil)
	}

	revoked, err := authService.tokenOperation.IsTokenRevoked(req.RefreshToken)
	if err != nil {
		authService.logger.ErrorF("AuthService.TokenRefresh revocation lookup error: %v", err)
		return NewApiResponse[ResponseTokenRefresh](&ErrDatabaseFail, Unsatisfied, nil)
	}
	if revoked {
		return NewApiResponse[ResponseTokenRefresh](&ErrTokenRevoked, Unsatisfied, nil)
	}

	// The user row is re-read so a level change or deletion takes effect
	// on the next refresh.
	user, res := CallDBFuncAndCheckError[operation.User, ResponseTokenRefresh](func() (*operation.User, error) {
		return authService.userOperation.GetUserByUid(claims.Uid)
	})
	if res != nil {
		return res
	}

	// Refresh tokens are single use, the old one dies with the rotation.
	if err := authService.tokenOperation.RevokeToken(req.RefreshToken); err != nil {
		authService.logger.ErrorF("AuthService.TokenRefresh revoke old token error: %v", err)
		return NewApiResponse[ResponseTokenRefresh](&ErrDatabaseFail, Unsatisfied, nil)
	}

	token := NewClaims(authService.config.JWT, user, false)
	refreshToken := NewClaims(authService.config.JWT, user, true)
	return NewApiResponse(&SuccessRefresh, Unsatisfied, &ResponseTokenRefresh{
		Token:        token.GenerateKey(),
		RefreshToken: refreshToken.GenerateKey(),
	})
}
