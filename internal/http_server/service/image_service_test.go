package service

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newImageServiceForTest() (*ImageService, *MockImageOperation, *MockFlightOperation, *MockStoreService) {
	mockImages := new(MockImageOperation)
	mockFlights := new(MockFlightOperation)
	mockStore := new(MockStoreService)
	return NewImageService(&testLogger{}, testHttpConfig(), mockImages, mockFlights, mockStore), mockImages, mockFlights, mockStore
}

func uploadHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
}

func TestImageService_UploadImage(t *testing.T) {
	imageService, mockImages, _, mockStore := newImageServiceForTest()
	file := uploadHeader("panel.jpg", 2048)
	mockStore.On("SaveImageFile", file).Return(&StoreInfo{
		FilePath:   "store/images/abc.jpg",
		RemotePath: "images/abc.jpg",
	}, nil).Once()
	mockImages.On("AddImage", mock.MatchedBy(func(image *operation.Image) bool {
		return image.UserID == 2 && image.FileName == "panel.jpg" &&
			image.StorePath == "store/images/abc.jpg" && image.ContentType == "image/jpeg"
	})).Return(nil).Once()
	mockStore.On("AccessPath", "images/abc.jpg").Return("/images/abc.jpg").Once()

	res := imageService.UploadImage(&RequestUploadImage{
		JwtHeader: userHeader(2),
		File:      file,
	})

	assert.Equal(t, SuccessUploadFile.StatusName, res.Code)
	assert.Equal(t, int64(2048), res.Data.FileSize)
	assert.Equal(t, "/images/abc.jpg", res.Data.AccessPath)
	mockImages.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestImageService_UploadImage_MissingFile(t *testing.T) {
	imageService, _, _, mockStore := newImageServiceForTest()

	res := imageService.UploadImage(&RequestUploadImage{JwtHeader: userHeader(2)})

	assert.Equal(t, ErrLackParam.StatusName, res.Code)
	mockStore.AssertNotCalled(t, "SaveImageFile", mock.Anything)
}

// Attaching to someone else's flight reads the same as a missing flight.
func TestImageService_UploadImage_ForeignFlightHidden(t *testing.T) {
	imageService, _, mockFlights, mockStore := newImageServiceForTest()
	flightID := uint(7)
	mockFlights.On("GetFlightById", flightID).Return(&operation.Flight{ID: 7, UserID: 9}, nil).Once()

	res := imageService.UploadImage(&RequestUploadImage{
		JwtHeader: userHeader(2),
		FlightID:  &flightID,
		File:      uploadHeader("panel.jpg", 1024),
	})

	assert.Equal(t, ErrFlightNotFound.StatusName, res.Code)
	mockStore.AssertNotCalled(t, "SaveImageFile", mock.Anything)
}

func TestImageService_UploadImage_StoreRejection(t *testing.T) {
	imageService, mockImages, _, mockStore := newImageServiceForTest()
	file := uploadHeader("huge.jpg", 1<<30)
	mockStore.On("SaveImageFile", file).Return(nil, &ErrFileOverSize).Once()

	res := imageService.UploadImage(&RequestUploadImage{
		JwtHeader: userHeader(2),
		File:      file,
	})

	assert.Equal(t, ErrFileOverSize.StatusName, res.Code)
	mockImages.AssertNotCalled(t, "AddImage", mock.Anything)
}

func TestImageService_GetImage_OtherOwnerHidden(t *testing.T) {
	imageService, mockImages, _, _ := newImageServiceForTest()
	mockImages.On("GetImageById", uint(5)).Return(&operation.Image{ID: 5, UserID: 9}, nil).Once()

	image, accessPath, res := imageService.GetImage(&RequestImage{
		JwtHeader: userHeader(2),
		ImageID:   5,
	})

	assert.Nil(t, image)
	assert.Empty(t, accessPath)
	assert.Equal(t, ErrImageNotFound.StatusName, res.Code)
}

func TestImageService_GetImage_Owner(t *testing.T) {
	imageService, mockImages, _, mockStore := newImageServiceForTest()
	stored := &operation.Image{ID: 5, UserID: 2, RemotePath: "images/abc.jpg"}
	mockImages.On("GetImageById", uint(5)).Return(stored, nil).Once()
	mockStore.On("AccessPath", "images/abc.jpg").Return("/images/abc.jpg").Once()

	image, accessPath, res := imageService.GetImage(&RequestImage{
		JwtHeader: userHeader(2),
		ImageID:   5,
	})

	assert.Nil(t, res)
	assert.Equal(t, stored, image)
	assert.Equal(t, "/images/abc.jpg", accessPath)
}

func TestImageService_DeleteImage_RemovesFileThenRow(t *testing.T) {
	imageService, mockImages, _, mockStore := newImageServiceForTest()
	stored := &operation.Image{ID: 5, UserID: 2, StorePath: "store/images/abc.jpg", RemotePath: "images/abc.jpg"}
	mockImages.On("GetImageById", uint(5)).Return(stored, nil).Once()
	mockStore.On("DeleteImageFile", "store/images/abc.jpg", "images/abc.jpg").Return(nil).Once()
	mockImages.On("DeleteImage", stored).Return(nil).Once()

	res := imageService.DeleteImage(&RequestImageDelete{
		JwtHeader: userHeader(2),
		ImageID:   5,
	})

	assert.Equal(t, SuccessDeleteImage.StatusName, res.Code)
	mockImages.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestImageService_DeleteImage_StoreFailureKeepsRow(t *testing.T) {
	imageService, mockImages, _, mockStore := newImageServiceForTest()
	stored := &operation.Image{ID: 5, UserID: 2, StorePath: "store/images/abc.jpg"}
	mockImages.On("GetImageById", uint(5)).Return(stored, nil).Once()
	mockStore.On("DeleteImageFile", "store/images/abc.jpg", "").Return(&ErrFileDeleteFail).Once()

	res := imageService.DeleteImage(&RequestImageDelete{
		JwtHeader: userHeader(2),
		ImageID:   5,
	})

	assert.Equal(t, ErrFileDeleteFail.StatusName, res.Code)
	mockImages.AssertNotCalled(t, "DeleteImage", mock.Anything)
}
