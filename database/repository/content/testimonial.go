// File: database/repository/content/testimonial.go
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

// TestimonialRepository is the data access contract for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	Update(ctx context.Context, t *models.Testimonial) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error)
}

type mongoTestimonialRepo struct {
	coll *mongo.Collection
}

// NewMongoTestimonialRepo constructs a new MongoDB TestimonialRepository.
func NewMongoTestimonialRepo() TestimonialRepository {
	return &mongoTestimonialRepo{coll: database.DB().Collection("testimonials")}
}

func (r *mongoTestimonialRepo) Create(ctx context.Context, t *models.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTestimonialRepo) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var t models.Testimonial
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoTestimonialRepo) Update(ctx context.Context, t *models.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	t.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTestimonialRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoTestimonialRepo) List(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}
