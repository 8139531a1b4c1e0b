// Package store
package store

import (
	"context"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	. "github.com/flightline-dev/flightline/internal/interfaces/service"
)

type ALiYunOssStoreService struct {
	logger     log.LoggerInterface
	localStore StoreServiceInterface
	config     *config.HttpServerStore
	endpoint   *url.URL
	client     *oss.Client
}

func NewALiYunOssStoreService(
	logger log.LoggerInterface,
	config *config.HttpServerStore,
	localStore StoreServiceInterface,
) *ALiYunOssStoreService {
	service := &ALiYunOssStoreService{logger: logger, localStore: localStore, config: config}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessId, config.AccessKey)).
		WithRegion(config.Region).
		WithUseInternalEndpoint(config.UseInternalUrl)
	service.client = oss.NewClient(cfg)
	if config.CdnDomain != "" {
		service.endpoint, _ = url.Parse(config.CdnDomain)
	} else {
		service.endpoint, _ = url.Parse(strings.Replace(*cfg.Endpoint, "-internal", "", 1))
	}
	return service
}

func (store *ALiYunOssStoreService) SaveImageFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	storeInfo, res := store.localStore.SaveImageFile(file)
	if res != nil {
		return nil, res
	}

	storeInfo.RemotePath = strings.Replace(filepath.Join(store.config.RemoteStorePath, storeInfo.FileName), "\\", "/", -1)

	reader, err := file.Open()
	if err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.SaveImageFile open form file error: %v", err)
		return nil, &ErrFileUploadFail
	}

	putRequest := &oss.PutObjectRequest{
		Bucket:       oss.Ptr(store.config.Bucket),
		Key:          oss.Ptr(storeInfo.RemotePath),
		StorageClass: oss.StorageClassStandard,
		Body:         reader,
	}

	_, err = store.client.PutObject(context.TODO(), putRequest)

	if err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.SaveImageFile upload image to remote storage error: %v", err)
		return nil, &ErrFileUploadFail
	}
	return storeInfo, nil
}

func (store *ALiYunOssStoreService) DeleteImageFile(storePath, remotePath string) *ApiStatus {
	if res := store.localStore.DeleteImageFile(storePath, remotePath); res != nil {
		return res
	}
	delRequest := &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(store.config.Bucket),
		Key:    oss.Ptr(remotePath),
	}
	if _, err := store.client.DeleteObject(context.TODO(), delRequest); err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.DeleteImageFile delete image from remote storage error: %v", err)
		return &ErrFileDeleteFail
	}
	return nil
}

func (store *ALiYunOssStoreService) AccessPath(remotePath string) string {
	accessUrl, err := url.JoinPath(store.endpoint.String(), remotePath)
	if err != nil {
		return remotePath
	}
	return accessUrl
}
