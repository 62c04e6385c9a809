// File: services/content/content_test.go
package content

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentRepo "pitchside/database/repository/content"
	"pitchside/models"
	storageSvc "pitchside/services/storage"
	"pitchside/utils"
)

// mockGalleryRepo implements contentRepo.GalleryRepository with
// overridable function fields.
type mockGalleryRepo struct {
	create  func(ctx context.Context, g *models.GalleryImage) error
	getByID func(ctx context.Context, id string) (*models.GalleryImage, error)
	delete  func(ctx context.Context, id string) error
	list    func(ctx context.Context, category string) ([]models.GalleryImage, error)
}

func (m *mockGalleryRepo) Create(ctx context.Context, g *models.GalleryImage) error {
	return m.create(ctx, g)
}

func (m *mockGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	return m.getByID(ctx, id)
}

func (m *mockGalleryRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

func (m *mockGalleryRepo) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	return m.list(ctx, category)
}

// mockStorage implements storageSvc.StorageService.
type mockStorage struct {
	deleteImage func(ctx context.Context, publicID string) error
}

func (m *mockStorage) UploadImage(ctx context.Context, file io.Reader, destFolder string) (*storageSvc.UploadResult, error) {
	return nil, errors.New("not implemented")
}

func (m *mockStorage) DeleteImage(ctx context.Context, publicID string) error {
	return m.deleteImage(ctx, publicID)
}

func TestDeleteGalleryImageRemovesStoredAsset(t *testing.T) {
	var calls []string
	repo := &mockGalleryRepo{
		getByID: func(ctx context.Context, id string) (*models.GalleryImage, error) {
			return &models.GalleryImage{ID: id, PublicID: "pitchside/gallery/abc123"}, nil
		},
		delete: func(ctx context.Context, id string) error {
			calls = append(calls, "row:"+id)
			return nil
		},
	}
	storage := &mockStorage{
		deleteImage: func(ctx context.Context, publicID string) error {
			calls = append(calls, "asset:"+publicID)
			return nil
		},
	}
	svc := &DefaultContentService{Gallery: repo, Storage: storage}

	require.NoError(t, svc.DeleteGalleryImage(context.Background(), "g1"))
	assert.Equal(t, []string{"asset:pitchside/gallery/abc123", "row:g1"}, calls,
		"the asset goes first so a failed row delete can be retried")
}

func TestDeleteGalleryImageMissingImage(t *testing.T) {
	deleted := 0
	repo := &mockGalleryRepo{
		getByID: func(ctx context.Context, id string) (*models.GalleryImage, error) {
			return nil, contentRepo.ErrNotFound
		},
	}
	storage := &mockStorage{
		deleteImage: func(ctx context.Context, publicID string) error {
			deleted++
			return nil
		},
	}
	svc := &DefaultContentService{Gallery: repo, Storage: storage}

	err := svc.DeleteGalleryImage(context.Background(), "missing")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.KindNotFound, appErr.Kind)
	assert.Zero(t, deleted, "no asset delete for an unknown image")
}

func TestDeleteGalleryImageWithoutPublicID(t *testing.T) {
	deleted := 0
	repo := &mockGalleryRepo{
		getByID: func(ctx context.Context, id string) (*models.GalleryImage, error) {
			return &models.GalleryImage{ID: id, ImageURL: "https://elsewhere.example/x.jpg"}, nil
		},
		delete: func(ctx context.Context, id string) error { return nil },
	}
	storage := &mockStorage{
		deleteImage: func(ctx context.Context, publicID string) error {
			deleted++
			return nil
		},
	}
	svc := &DefaultContentService{Gallery: repo, Storage: storage}

	require.NoError(t, svc.DeleteGalleryImage(context.Background(), "g1"))
	assert.Zero(t, deleted, "externally hosted images have no stored asset")
}

func TestDeleteGalleryImageStorageFailureStillDeletesRow(t *testing.T) {
	rowDeleted := false
	repo := &mockGalleryRepo{
		getByID: func(ctx context.Context, id string) (*models.GalleryImage, error) {
			return &models.GalleryImage{ID: id, PublicID: "pitchside/gallery/abc123"}, nil
		},
		delete: func(ctx context.Context, id string) error {
			rowDeleted = true
			return nil
		},
	}
	storage := &mockStorage{
		deleteImage: func(ctx context.Context, publicID string) error {
			return errors.New("cloudinary unreachable")
		},
	}
	svc := &DefaultContentService{Gallery: repo, Storage: storage}

	require.NoError(t, svc.DeleteGalleryImage(context.Background(), "g1"))
	assert.True(t, rowDeleted)
}
