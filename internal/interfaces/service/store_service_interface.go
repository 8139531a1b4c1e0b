// Package service
package service

import (
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	"github.com/google/uuid"
)

var (
	ErrFilePathFail       = ApiStatus{"FILE_PATH_FAIL", "file upload failed", ServerInternalError}
	ErrFileSaveFail       = ApiStatus{"FILE_SAVE_FAIL", "file save failed", ServerInternalError}
	ErrFileUploadFail     = ApiStatus{"FILE_UPLOAD_FAIL", "file upload failed", ServerInternalError}
	ErrFileDeleteFail     = ApiStatus{"FILE_DELETE_FAIL", "file delete failed", ServerInternalError}
	ErrFileOverSize       = ApiStatus{"FILE_OVER_SIZE", "file too large", BadRequest}
	ErrFileExtUnsupported = ApiStatus{"FILE_EXT_UNSUPPORTED", "unsupported file type", BadRequest}
	ErrFileNameIllegal    = ApiStatus{"FILE_NAME_ILLEGAL", "illegal file name", BadRequest}
	SuccessUploadFile     = ApiStatus{"UPLOAD_FILE", "file uploaded", Ok}
)

type FileType int

const (
	IMAGES FileType = iota
	UNKNOWN
)

// StoreInfo describes one file on its way into the store backend.
type StoreInfo struct {
	FileType      FileType
	FileLimit     *c.HttpServerStoreFileLimit
	RootPath      string
	FilePath      string
	RemotePath    string
	FileName      string
	FileExt       string
	FileContent   *multipart.FileHeader
	StoreInServer bool
}

func NewStoreInfo(fileType FileType, fileLimit *c.HttpServerStoreFileLimit, file *multipart.FileHeader) *StoreInfo {
	return &StoreInfo{
		FileType:      fileType,
		FileLimit:     fileLimit,
		RootPath:      fileLimit.RootPath,
		FilePath:      "",
		FileName:      "",
		RemotePath:    "",
		FileExt:       filepath.Ext(file.Filename),
		FileContent:   file,
		StoreInServer: fileLimit.StoreInServer,
	}
}

func (fileType FileType) GenerateStoreInfo(fileLimit *c.HttpServerStoreFileLimit, file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	if strings.Contains(file.Filename, string(filepath.Separator)) {
		return nil, &ErrFileNameIllegal
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))

	if !slices.Contains(fileLimit.AllowedFileExt, ext) {
		return nil, &ErrFileExtUnsupported
	}

	if file.Size > fileLimit.MaxFileSize {
		return nil, &ErrFileOverSize
	}

	storeInfo := NewStoreInfo(fileType, fileLimit, file)

	// Random names keep uploads from colliding or being guessed.
	storeInfo.FileName = filepath.Join(fileLimit.StorePrefix, uuid.NewString()+ext)
	storeInfo.FilePath = filepath.Join(fileLimit.RootPath, storeInfo.FileName)
	storeInfo.RemotePath = strings.Replace(storeInfo.FileName, "\\", "/", -1)

	return storeInfo, nil
}

// StoreServiceInterface moves image bytes to and from the configured
// backend (local disk, OSS or COS). Metadata rows live in ImageServiceInterface.
type StoreServiceInterface interface {
	SaveImageFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus)
	DeleteImageFile(storePath, remotePath string) *ApiStatus
	AccessPath(remotePath string) string
}

type ImageServiceInterface interface {
	UploadImage(req *RequestUploadImage) *ApiResponse[ResponseUploadImage]
	GetImage(req *RequestImage) (*operation.Image, string, *ApiResponse[ResponseImage])
	DeleteImage(req *RequestImageDelete) *ApiResponse[ResponseImageDelete]
}

type RequestUploadImage struct {
	JwtHeader
	FlightID *uint
	File     *multipart.FileHeader
}

type ResponseUploadImage struct {
	ID         uint   `json:"id"`
	FileSize   int64  `json:"file_size"`
	AccessPath string `json:"access_path"`
}

type RequestImage struct {
	JwtHeader
	ImageID uint `param:"id"`
}

type ResponseImage operation.Image

type RequestImageDelete struct {
	JwtHeader
	ImageID uint `param:"id"`
}

type ResponseImageDelete bool
