// Package operation
package operation

import "errors"

var (
	// ErrImageNotFound no image matches the lookup
	ErrImageNotFound = errors.New("image does not exist")
)

// ImageOperationInterface is the image metadata collection access contract.
// The image bytes themselves live on the configured store backend.
type ImageOperationInterface interface {
	// GetImageById fetches image metadata by primary key, valid when err is nil
	GetImageById(id uint) (image *Image, err error)
	// GetImagesByUser returns every image row the user owns
	GetImagesByUser(userID uint) (images []*Image, err error)
	// AddImage persists new image metadata
	AddImage(image *Image) (err error)
	// DeleteImage removes the image metadata row
	DeleteImage(image *Image) (err error)
	// DeleteImagesByUser removes every image row the user owns
	DeleteImagesByUser(userID uint) (err error)
}
