// Package controller
package controller

import (
	"strings"

	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// jwtHeader pulls the caller identity out of the verified token.
func jwtHeader(ctx echo.Context) JwtHeader {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	return JwtHeader{Uid: claim.Uid, Level: claim.Level}
}

// rawToken returns the bearer token exactly as the client sent it.
func rawToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimPrefix(header, "Bearer ")
}

type AuthControllerInterface interface {
	UserLogin(ctx echo.Context) error
	UserLogout(ctx echo.Context) error
	TokenRefresh(ctx echo.Context) error
}

type AuthController struct {
	logger  log.LoggerInterface
	service AuthServiceInterface
}

func NewAuthController(logger log.LoggerInterface, service AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		service: service,
	}
}

func (controller *AuthController) UserLogin(ctx echo.Context) error {
	data := &RequestUserLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuthController.UserLogin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.UserLogin(data).Response(ctx)
}

func (controller *AuthController) UserLogout(ctx echo.Context) error {
	data := &RequestUserLogout{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuthController.UserLogout bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	data.AccessToken = rawToken(ctx)
	return controller.service.UserLogout(data).Response(ctx)
}

func (controller *AuthController) TokenRefresh(ctx echo.Context) error {
	data := &RequestTokenRefresh{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuthController.TokenRefresh bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.TokenRefresh(data).Response(ctx)
}
