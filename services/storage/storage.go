// File: services/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage uploads an image into the specified Cloudinary folder and
// returns its permanent identifier and serving URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file io.Reader, destFolder string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("storage: no public ID returned")
	}
	return &UploadResult{PublicID: result.PublicID, SecureURL: result.SecureURL}, nil
}

// DeleteImage removes an image from Cloudinary given its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete image %s: %w", publicID, err)
	}
	return nil
}
