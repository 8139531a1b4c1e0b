package database

import (
	"context"
	"errors"
	"time"

	. "github.com/flightline-dev/flightline/internal/interfaces/operation"
	"gorm.io/gorm"
)

type ImageOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewImageOperation(db *gorm.DB, queryTimeout time.Duration) *ImageOperation {
	return &ImageOperation{db: db, queryTimeout: queryTimeout}
}

func (imageOperation *ImageOperation) GetImageById(id uint) (image *Image, err error) {
	image = &Image{}
	ctx, cancel := context.WithTimeout(context.Background(), imageOperation.queryTimeout)
	defer cancel()
	err = imageOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrImageNotFound
	}
	return
}

func (imageOperation *ImageOperation) GetImagesByUser(userID uint) (images []*Image, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), imageOperation.queryTimeout)
	defer cancel()
	err = imageOperation.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&images).Error
	return
}

func (imageOperation *ImageOperation) AddImage(image *Image) error {
	ctx, cancel := context.WithTimeout(context.Background(), imageOperation.queryTimeout)
	defer cancel()
	return imageOperation.db.WithContext(ctx).Create(image).Error
}

func (imageOperation *ImageOperation) DeleteImage(image *Image) error {
	ctx, cancel := context.WithTimeout(context.Background(), imageOperation.queryTimeout)
	defer cancel()
	return imageOperation.db.WithContext(ctx).Delete(image).Error
}

func (imageOperation *ImageOperation) DeleteImagesByUser(userID uint) error {
	ctx, cancel := context.WithTimeout(context.Background(), imageOperation.queryTimeout)
	defer cancel()
	return imageOperation.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&Image{}).Error
}
