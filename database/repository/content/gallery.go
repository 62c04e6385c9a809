// File: database/repository/content/gallery.go
package contentRepo

import (
	"context"
	"time"

	"pitchside/database"
	"pitchside/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GalleryRepository is the data access contract for gallery images.
type GalleryRepository interface {
	Create(ctx context.Context, g *models.GalleryImage) error
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string) ([]models.GalleryImage, error)
}

type mongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo constructs a new MongoDB GalleryRepository.
func NewMongoGalleryRepo() GalleryRepository {
	return &mongoGalleryRepo{coll: database.DB().Collection("gallery")}
}

func (r *mongoGalleryRepo) Create(ctx context.Context, g *models.GalleryImage) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, g)
	return err
}

func (r *mongoGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var g models.GalleryImage
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *mongoGalleryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoGalleryRepo) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	images := []models.GalleryImage{}
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}
