// File: services/storage/interface.go
package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// UploadResult carries the identifiers of a stored image.
type UploadResult struct {
	PublicID  string
	SecureURL string
}

// StorageService defines the interface for media storage operations.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, destFolder string) (*UploadResult, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a new CloudinaryStorageService instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorageService{cld: cld}
}
