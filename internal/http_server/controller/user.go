// Package controller
package controller

import (
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type UserControllerInterface interface {
	CreateUser(ctx echo.Context) error
	GetCurrentUserProfile(ctx echo.Context) error
	GetUserProfile(ctx echo.Context) error
	GetUsers(ctx echo.Context) error
	EditProfile(ctx echo.Context) error
	EditCurrentProfile(ctx echo.Context) error
	EditPassword(ctx echo.Context) error
	DeleteUser(ctx echo.Context) error
}

type UserController struct {
	logger  log.LoggerInterface
	service UserServiceInterface
}

func NewUserController(logger log.LoggerInterface, service UserServiceInterface) *UserController {
	return &UserController{
		logger:  logger,
		service: service,
	}
}

func (controller *UserController) CreateUser(ctx echo.Context) error {
	data := &RequestUserCreate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.CreateUser bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.CreateUser(data).Response(ctx)
}

func (controller *UserController) GetCurrentUserProfile(ctx echo.Context) error {
	data := &RequestUserCurrentProfile{JwtHeader: jwtHeader(ctx)}
	return controller.service.GetCurrentProfile(data).Response(ctx)
}

func (controller *UserController) GetUserProfile(ctx echo.Context) error {
	data := &RequestUserProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.GetUserProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.GetUserProfile(data).Response(ctx)
}

func (controller *UserController) GetUsers(ctx echo.Context) error {
	data := &RequestUserList{JwtHeader: jwtHeader(ctx)}
	return controller.service.GetUserList(data).Response(ctx)
}

func (controller *UserController) EditProfile(ctx echo.Context) error {
	data := &RequestUserEditProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.EditUserProfile(data).Response(ctx)
}

func (controller *UserController) EditCurrentProfile(ctx echo.Context) error {
	data := &RequestUserEditCurrent{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditCurrentProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.EditCurrentProfile(data).Response(ctx)
}

func (controller *UserController) EditPassword(ctx echo.Context) error {
	data := &RequestUserEditPassword{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditPassword bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.EditUserPassword(data).Response(ctx)
}

func (controller *UserController) DeleteUser(ctx echo.Context) error {
	data := &RequestUserDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.DeleteUser bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.DeleteUser(data).Response(ctx)
}
