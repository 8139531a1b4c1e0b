// Package controller
package controller

import (
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AircraftControllerInterface interface {
	CreateAircraft(ctx echo.Context) error
	GetAircraft(ctx echo.Context) error
	GetAircraftList(ctx echo.Context) error
	GetAllAircraft(ctx echo.Context) error
	EditAircraft(ctx echo.Context) error
	DeleteAircraft(ctx echo.Context) error
}

type AircraftController struct {
	logger  log.LoggerInterface
	service AircraftServiceInterface
}

func NewAircraftController(logger log.LoggerInterface, service AircraftServiceInterface) *AircraftController {
	return &AircraftController{
		logger:  logger,
		service: service,
	}
}

func (controller *AircraftController) CreateAircraft(ctx echo.Context) error {
	data := &RequestAircraftCreate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.CreateAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.CreateAircraft(data).Response(ctx)
}

func (controller *AircraftController) GetAircraft(ctx echo.Context) error {
	data := &RequestAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.GetAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.GetAircraft(data).Response(ctx)
}

func (controller *AircraftController) GetAircraftList(ctx echo.Context) error {
	data := &RequestAircraftList{JwtHeader: jwtHeader(ctx)}
	return controller.service.GetAircraftList(data).Response(ctx)
}

func (controller *AircraftController) GetAllAircraft(ctx echo.Context) error {
	data := &RequestAircraftListAll{JwtHeader: jwtHeader(ctx)}
	return controller.service.GetAllAircraft(data).Response(ctx)
}

func (controller *AircraftController) EditAircraft(ctx echo.Context) error {
	data := &RequestAircraftEdit{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.EditAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.EditAircraft(data).Response(ctx)
}

func (controller *AircraftController) DeleteAircraft(ctx echo.Context) error {
	data := &RequestAircraftDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.DeleteAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.DeleteAircraft(data).Response(ctx)
}
