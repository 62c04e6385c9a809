// File: database/repository/coach/coach.go
package coachRepo

import (
	"context"
	"errors"
	"time"

	"pitchside/database"
	"pitchside/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no coach matches the given id.
var ErrNotFound = errors.New("coach not found")

// CoachRepository is the data access contract for coaches.
type CoachRepository interface {
	Create(ctx context.Context, c *models.Coach) error
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	Update(ctx context.Context, c *models.Coach) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]models.Coach, error)
}

type mongoCoachRepo struct {
	coll *mongo.Collection
}

// NewMongoCoachRepo constructs a new MongoDB CoachRepository.
func NewMongoCoachRepo() CoachRepository {
	return &mongoCoachRepo{coll: database.DB().Collection("coaches")}
}

func (r *mongoCoachRepo) Create(ctx context.Context, c *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *mongoCoachRepo) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Coach
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoCoachRepo) Update(ctx context.Context, c *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCoachRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
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

func (r *mongoCoachRepo) List(ctx context.Context, activeOnly bool) ([]models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coaches := []models.Coach{}
	if err := cursor.All(ctx, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}
