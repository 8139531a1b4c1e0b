// Package store
package store

import (
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/global"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

type LocalStoreService struct {
	logger log.LoggerInterface
	config *config.HttpServerStore
}

func NewLocalStoreService(logger log.LoggerInterface, config *config.HttpServerStore) *LocalStoreService {
	return &LocalStoreService{
		logger: logger,
		config: config,
	}
}

func (store *LocalStoreService) SaveImageFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	storeInfo, res := IMAGES.GenerateStoreInfo(store.config.FileLimit.ImageLimit, file)
	if res != nil {
		return nil, res
	}
	if !storeInfo.StoreInServer {
		return storeInfo, nil
	}
	src, err := file.Open()
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile open file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)
	dst, err := os.OpenFile(storeInfo.FilePath, os.O_WRONLY|os.O_CREATE, global.DefaultFilePermissions)
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile create file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(dst *os.File) {
		_ = dst.Close()
	}(dst)
	_, err = io.Copy(dst, src)
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveImageFile copy file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	return storeInfo, nil
}

func (store *LocalStoreService) DeleteImageFile(storePath, _ string) *ApiStatus {
	if !store.config.FileLimit.ImageLimit.StoreInServer {
		return nil
	}
	if err := os.Remove(storePath); err != nil && !os.IsNotExist(err) {
		store.logger.ErrorF("LocalStoreService.DeleteImageFile remove file error: %v", err)
		return &ErrFileDeleteFail
	}
	return nil
}

func (store *LocalStoreService) AccessPath(remotePath string) string {
	return "/" + strings.TrimPrefix(remotePath, "/")
}
