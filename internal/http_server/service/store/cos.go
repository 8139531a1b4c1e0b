// Package store
package store

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/tencentyun/cos-go-sdk-v5"
)

type TencentCosStoreService struct {
	logger     log.LoggerInterface
	localStore StoreServiceInterface
	config     *config.HttpServerStore
	endpoint   *url.URL
	client     *cos.Client
}

func NewTencentCosStoreService(
	logger log.LoggerInterface,
	config *config.HttpServerStore,
	localStore StoreServiceInterface,
) *TencentCosStoreService {
	service := &TencentCosStoreService{logger: logger, localStore: localStore, config: config}
	bucketUrl, _ := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", config.Bucket, strings.ToLower(config.Region)))
	serviceUrl, _ := url.Parse(fmt.Sprintf("https://cos.%s.myqcloud.com", strings.ToLower(config.Region)))
	baseUrl := &cos.BaseURL{BucketURL: bucketUrl, ServiceURL: serviceUrl}
	service.client = cos.NewClient(baseUrl, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  config.AccessId,
			SecretKey: config.AccessKey,
		},
	})
	if config.CdnDomain != "" {
		service.endpoint, _ = url.Parse(config.CdnDomain)
	} else {
		service.endpoint = service.client.BaseURL.BucketURL
	}
	return service
}

func (store *TencentCosStoreService) SaveImageFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	storeInfo, res := store.localStore.SaveImageFile(file)
	if res != nil {
		return nil, res
	}

	storeInfo.RemotePath = strings.Replace(filepath.Join(store.config.RemoteStorePath, storeInfo.FileName), "\\", "/", -1)

	reader, err := file.Open()
	if err != nil {
		store.logger.ErrorF("TencentCosStoreService.SaveImageFile open form file error: %v", err)
		return nil, &ErrFileUploadFail
	}

	_, err = store.client.Object.Put(context.Background(), storeInfo.RemotePath, reader, nil)
	if err != nil {
		store.logger.ErrorF("TencentCosStoreService.SaveImageFile upload image to remote storage error: %v", err)
		return nil, &ErrFileUploadFail
	}
	return storeInfo, nil
}

func (store *TencentCosStoreService) DeleteImageFile(storePath, remotePath string) *ApiStatus {
	if res := store.localStore.DeleteImageFile(storePath, remotePath); res != nil {
		return res
	}
	if _, err := store.client.Object.Delete(context.Background(), remotePath); err != nil {
		store.logger.ErrorF("TencentCosStoreService.DeleteImageFile delete image from remote storage error: %v", err)
		return &ErrFileDeleteFail
	}
	return nil
}

func (store *TencentCosStoreService) AccessPath(remotePath string) string {
	accessUrl, err := url.JoinPath(store.endpoint.String(), remotePath)
	if err != nil {
		return remotePath
	}
	return accessUrl
}
