// Package controller
package controller

import (
	"encoding/json"

	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/flightline-dev/flightline/internal/utils"
	"github.com/labstack/echo/v4"
)

type FlightControllerInterface interface {
	CreateFlight(ctx echo.Context) error
	GetFlight(ctx echo.Context) error
	GetFlights(ctx echo.Context) error
	GetAllFlights(ctx echo.Context) error
	EditFlight(ctx echo.Context) error
	ReplaceFlight(ctx echo.Context) error
	DeleteFlight(ctx echo.Context) error
	GetTotals(ctx echo.Context) error
	GetFlightsByDate(ctx echo.Context) error
}

type FlightController struct {
	logger  log.LoggerInterface
	service FlightServiceInterface
}

func NewFlightController(logger log.LoggerInterface, service FlightServiceInterface) *FlightController {
	return &FlightController{
		logger:  logger,
		service: service,
	}
}

func (controller *FlightController) CreateFlight(ctx echo.Context) error {
	data := &RequestFlightCreate{}
	if err := ctx.Bind(&data.Flight); err != nil {
		controller.logger.ErrorF("FlightController.CreateFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.CreateFlight(data).Response(ctx)
}

func (controller *FlightController) GetFlight(ctx echo.Context) error {
	data := &RequestFlight{
		JwtHeader: jwtHeader(ctx),
		FlightID:  utils.StrToUint(ctx.Param("id"), 0),
	}
	return controller.service.GetFlight(data).Response(ctx)
}

func (controller *FlightController) GetFlights(ctx echo.Context) error {
	data := &RequestFlightList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.GetFlightList(data).Response(ctx)
}

func (controller *FlightController) GetAllFlights(ctx echo.Context) error {
	data := &RequestFlightListAll{}
	if err := ctx.Bind(&data.RequestFlightList); err != nil {
		controller.logger.ErrorF("FlightController.GetAllFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.GetAllFlights(data).Response(ctx)
}

func (controller *FlightController) EditFlight(ctx echo.Context) error {
	patch := make(map[string]interface{})
	if err := json.NewDecoder(ctx.Request().Body).Decode(&patch); err != nil {
		controller.logger.ErrorF("FlightController.EditFlight decode error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data := &RequestFlightEdit{
		JwtHeader: jwtHeader(ctx),
		FlightID:  utils.StrToUint(ctx.Param("id"), 0),
		Patch:     patch,
	}
	return controller.service.EditFlight(data).Response(ctx)
}

func (controller *FlightController) ReplaceFlight(ctx echo.Context) error {
	data := &RequestFlightReplace{}
	if err := ctx.Bind(&data.Flight); err != nil {
		controller.logger.ErrorF("FlightController.ReplaceFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	data.FlightID = utils.StrToUint(ctx.Param("id"), 0)
	return controller.service.ReplaceFlight(data).Response(ctx)
}

func (controller *FlightController) DeleteFlight(ctx echo.Context) error {
	data := &RequestFlightDelete{
		JwtHeader: jwtHeader(ctx),
		FlightID:  utils.StrToUint(ctx.Param("id"), 0),
	}
	return controller.service.DeleteFlight(data).Response(ctx)
}

func (controller *FlightController) GetTotals(ctx echo.Context) error {
	data := &RequestFlightTotals{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetTotals bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.GetTotals(data).Response(ctx)
}

func (controller *FlightController) GetFlightsByDate(ctx echo.Context) error {
	data := &RequestFlightsByDate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetFlightsByDate bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.GetFlightsByDate(data).Response(ctx)
}
