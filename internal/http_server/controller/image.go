// Package controller
package controller

import (
	"net/http"

	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/flightline-dev/flightline/internal/utils"
	"github.com/labstack/echo/v4"
)

type ImageControllerInterface interface {
	UploadImage(ctx echo.Context) error
	GetImage(ctx echo.Context) error
	DeleteImage(ctx echo.Context) error
}

type ImageController struct {
	logger  log.LoggerInterface
	service ImageServiceInterface
}

func NewImageController(logger log.LoggerInterface, service ImageServiceInterface) *ImageController {
	return &ImageController{
		logger:  logger,
		service: service,
	}
}

func (controller *ImageController) UploadImage(ctx echo.Context) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		controller.logger.ErrorF("ImageController.UploadImage form file error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data := &RequestUploadImage{
		JwtHeader: jwtHeader(ctx),
		File:      file,
	}
	if raw := ctx.FormValue("flight"); raw != "" {
		flightID := utils.StrToUint(raw, 0)
		if flightID == 0 {
			return NewErrorResponse(ctx, &ErrIllegalParam)
		}
		data.FlightID = &flightID
	}
	return controller.service.UploadImage(data).Response(ctx)
}

func (controller *ImageController) GetImage(ctx echo.Context) error {
	data := &RequestImage{
		JwtHeader: jwtHeader(ctx),
		ImageID:   utils.StrToUint(ctx.Param("id"), 0),
	}
	image, accessPath, res := controller.service.GetImage(data)
	if res != nil {
		return res.Response(ctx)
	}
	// Locally stored images stream from disk, remote ones redirect to the
	// bucket or CDN.
	if image.RemotePath == "" || accessPath == "/"+image.RemotePath {
		return ctx.File(image.StorePath)
	}
	return ctx.Redirect(http.StatusFound, accessPath)
}

func (controller *ImageController) DeleteImage(ctx echo.Context) error {
	data := &RequestImageDelete{
		JwtHeader: jwtHeader(ctx),
		ImageID:   utils.StrToUint(ctx.Param("id"), 0),
	}
	return controller.service.DeleteImage(data).Response(ctx)
}
