// Package service
package service

import (
	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

type ImageService struct {
	logger          log.LoggerInterface
	config          *c.HttpServerConfig
	imageOperation  operation.ImageOperationInterface
	flightOperation operation.FlightOperationInterface
	storeService    StoreServiceInterface
}

func NewImageService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	imageOperation operation.ImageOperationInterface,
	flightOperation operation.FlightOperationInterface,
	storeService StoreServiceInterface,
) *ImageService {
	return &ImageService{
		logger:          logger,
		config:          config,
		imageOperation:  imageOperation,
		flightOperation: flightOperation,
		storeService:    storeService,
	}
}

var (
	SuccessGetImage    = ApiStatus{StatusName: "GET_IMAGE_SUCCESS", Description: "image fetched", HttpCode: Ok}
	SuccessDeleteImage = ApiStatus{StatusName: "DELETE_IMAGE_SUCCESS", Description: "image deleted", HttpCode: Ok}
)

func (imageService *ImageService) UploadImage(req *RequestUploadImage) *ApiResponse[ResponseUploadImage] {
	if req.File == nil {
		return NewApiResponse[ResponseUploadImage](&ErrLackParam, Unsatisfied, nil)
	}

	// An image attached to a flight must belong to a flight the caller owns.
	if req.FlightID != nil {
		flight, err := imageService.flightOperation.GetFlightById(*req.FlightID)
		if err != nil {
			return NewApiResponse[ResponseUploadImage](&ErrFlightNotFound, Unsatisfied, nil)
		}
		if flight.UserID != req.Uid {
			return NewApiResponse[ResponseUploadImage](&ErrFlightNotFound, Unsatisfied, nil)
		}
	}

	storeInfo, status := imageService.storeService.SaveImageFile(req.File)
	if status != nil {
		return NewApiResponse[ResponseUploadImage](status, Unsatisfied, nil)
	}

	image := &operation.Image{
		UserID:      req.Uid,
		FlightID:    req.FlightID,
		FileName:    req.File.Filename,
		StorePath:   storeInfo.FilePath,
		RemotePath:  storeInfo.RemotePath,
		Size:        req.File.Size,
		ContentType: req.File.Header.Get("Content-Type"),
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseUploadImage](func() (*interface{}, error) {
		return nil, imageService.imageOperation.AddImage(image)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessUploadFile, Unsatisfied, &ResponseUploadImage{
		ID:         image.ID,
		FileSize:   image.Size,
		AccessPath: imageService.storeService.AccessPath(storeInfo.RemotePath),
	})
}

func (imageService *ImageService) getOwnedImage(id uint, header *JwtHeader) (*operation.Image, *ApiStatus) {
	image, err := imageService.imageOperation.GetImageById(id)
	if err != nil {
		return nil, &ErrImageNotFound
	}
	if image.UserID != header.Uid && !header.AuthLevel().AtLeast(operation.LevelAdmin) {
		return nil, &ErrImageNotFound
	}
	return image, nil
}

func (imageService *ImageService) GetImage(req *RequestImage) (*operation.Image, string, *ApiResponse[ResponseImage]) {
	image, status := imageService.getOwnedImage(req.ImageID, &req.JwtHeader)
	if status != nil {
		return nil, "", NewApiResponse[ResponseImage](status, Unsatisfied, nil)
	}
	return image, imageService.storeService.AccessPath(image.RemotePath), nil
}

func (imageService *ImageService) DeleteImage(req *RequestImageDelete) *ApiResponse[ResponseImageDelete] {
	image, status := imageService.getOwnedImage(req.ImageID, &req.JwtHeader)
	if status != nil {
		return NewApiResponse[ResponseImageDelete](status, Unsatisfied, nil)
	}
	if status := imageService.storeService.DeleteImageFile(image.StorePath, image.RemotePath); status != nil {
		return NewApiResponse[ResponseImageDelete](status, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseImageDelete](func() (*interface{}, error) {
		return nil, imageService.imageOperation.DeleteImage(image)
	}); res != nil {
		return res
	}
	data := ResponseImageDelete(true)
	return NewApiResponse(&SuccessDeleteImage, Unsatisfied, &data)
}
